package gen

import (
	"fmt"
	"strings"

	"github.com/kungfusheep/ferry/schema"
)

// structInfo represents a generated struct
type structInfo struct {
	name   string
	fields []fieldInfo
}

// fieldInfo represents a field in a generated struct
type fieldInfo struct {
	name    string
	goType  string
	comment string
}

// goFieldType is the Go type a field is stored as.
func goFieldType(f *field) string {
	switch f.Kind {
	case schema.Array:
		return "[]" + f.typ.goType
	case schema.Buffer:
		return "[]byte"
	case schema.Optional:
		return "*" + f.typ.goType
	}
	return f.typ.goType
}

func newStructInfo(rec string, fields []*field) *structInfo {
	s := &structInfo{name: rec, fields: make([]fieldInfo, 0, len(fields))}
	for _, f := range fields {
		fi := fieldInfo{name: f.goName, goType: goFieldType(f)}
		if f.Sized() {
			fi.comment = fmt.Sprintf("length in %s", f.size)
		}
		s.fields = append(s.fields, fi)
	}
	return s
}

// writeStruct writes a single struct definition
func writeStruct(b *strings.Builder, structDef *structInfo) {
	fmt.Fprintf(b, "type %s struct {\n", structDef.name)

	// Find the maximum field name length for alignment
	maxNameLen := 0
	maxTypeLen := 0
	for _, field := range structDef.fields {
		maxNameLen = max(maxNameLen, len(field.name))
		maxTypeLen = max(maxTypeLen, len(field.goType))
	}

	for _, field := range structDef.fields {
		if field.comment == "" {
			fmt.Fprintf(b, "\t%-*s %s\n", maxNameLen, field.name, field.goType)
			continue
		}
		fmt.Fprintf(b, "\t%-*s %-*s // %s\n", maxNameLen, field.name, maxTypeLen, field.goType, field.comment)
	}

	b.WriteString("}\n\n")
}
