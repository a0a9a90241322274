package gen

import (
	"go/token"
	"go/types"
	"strings"
	"unicode"
)

// primitive describes a built-in schema type.
type primitive struct {
	goType  string
	method  string // suffix of the Loader methods, AppendUint32 and friends
	size    int
	integer bool
}

var primitives = map[string]primitive{}

func init() {
	add := func(p primitive, names ...string) {
		for _, n := range names {
			primitives[n] = p
		}
	}
	add(primitive{"uint8", "Uint8", 1, true}, "uint8", "uint8_t", "byte")
	add(primitive{"uint16", "Uint16", 2, true}, "uint16", "uint16_t")
	add(primitive{"uint32", "Uint32", 4, true}, "uint32", "uint32_t")
	add(primitive{"uint64", "Uint64", 8, true}, "uint64", "uint64_t")
	add(primitive{"int8", "Int8", 1, true}, "int8", "int8_t")
	add(primitive{"int16", "Int16", 2, true}, "int16", "int16_t")
	add(primitive{"int32", "Int32", 4, true}, "int32", "int32_t")
	add(primitive{"int64", "Int64", 8, true}, "int64", "int64_t")
	add(primitive{"float32", "Float32", 4, false}, "float32", "float")
	add(primitive{"float64", "Float64", 8, false}, "float64", "double")
	add(primitive{"bool", "Bool", 1, false}, "bool")
	add(primitive{"string", "String", 0, false}, "string")
}

// typeRef is a field type as far as emission is concerned. prim is nil for
// records and for enums declared outside the schema.
type typeRef struct {
	name   string
	goType string
	prim   *primitive
	enum   bool
}

func resolve(name string, enum bool) typeRef {
	t := typeRef{name: name, goType: name, enum: enum}
	if p, ok := primitives[name]; ok {
		t.prim = &p
		t.goType = p.goType
	}
	return t
}

func (t typeRef) record() bool {
	return t.prim == nil && !t.enum
}

// exported upper-cases the first letter of name.
func exported(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// toGoFieldName converts a schema field name to an exported Go field name.
// Underscores separate words: dummy_count becomes DummyCount.
func toGoFieldName(fieldName string) string {
	var b strings.Builder
	for _, part := range strings.Split(fieldName, "_") {
		b.WriteString(exported(part))
	}
	return b.String()
}

// validGoName reports whether name can be used as a Go identifier.
func validGoName(name string) bool {
	return name != "" && !unicode.IsDigit(rune(name[0])) && token.IsIdentifier(name)
}

// reserved reports names a record cannot take: Go keywords, predeclared
// identifiers and the runtime package name.
func reserved(name string) bool {
	return token.IsKeyword(name) || types.Universe.Lookup(name) != nil || name == "ferry"
}
