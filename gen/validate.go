package gen

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/kungfusheep/ferry/schema"
)

// ErrSemantic marks schemas that parse but cannot be compiled: unknown
// types, bad size fields, name clashes and inline cycles.
var ErrSemantic = errors.New("gen: invalid schema")

func semanticf(file string, line int, format string, args ...any) error {
	return errors.Mark(errors.Newf("%s:%d: %s", file, line, fmt.Sprintf(format, args...)), ErrSemantic)
}

func (c *Compiler) validate() error {
	if !validGoName(c.opts.Package) || reserved(c.opts.Package) {
		return errors.Mark(errors.Newf("gen: invalid package name %q", c.opts.Package), ErrSemantic)
	}

	byName := make(map[string]*schema.Record, len(c.records))
	for _, r := range c.records {
		if prev, ok := byName[r.Name]; ok {
			return semanticf(r.File, r.Line, "record %s already declared at %s:%d", r.Name, prev.File, prev.Line)
		}
		byName[r.Name] = r
	}

	owners := make(map[string]string)
	for _, r := range c.records {
		if err := c.validateName(r, owners); err != nil {
			return err
		}
	}
	for _, r := range c.records {
		if err := c.validateFields(r, byName); err != nil {
			return err
		}
	}
	return c.checkInlineCycles(byName)
}

// generatedNames lists the package level identifiers emitted for a record.
func (c *Compiler) generatedNames(name string) []string {
	x := exported(name)
	names := []string{
		x + "Codec",
		"Encode" + x, "Decode" + x, "Encode" + x + "Text", "Decode" + x + "Text",
		"encode" + x, "decode" + x, "print" + x, "read" + x,
	}
	if !c.opts.SkipTypes {
		names = append(names, name)
	}
	return names
}

func (c *Compiler) validateName(r *schema.Record, owners map[string]string) error {
	if _, ok := primitives[r.Name]; ok || reserved(r.Name) {
		return semanticf(r.File, r.Line, "record name %s is reserved", r.Name)
	}
	for _, id := range c.generatedNames(r.Name) {
		if owner, ok := owners[id]; ok {
			return semanticf(r.File, r.Line, "record %s generates %s, which record %s also generates", r.Name, id, owner)
		}
		owners[id] = r.Name
	}
	return nil
}

func (c *Compiler) validateFields(r *schema.Record, byName map[string]*schema.Record) error {
	fields := c.resolved[r.Name]

	if dups := lo.FindDuplicatesBy(fields, func(f *field) string { return f.Name }); len(dups) > 0 {
		return semanticf(r.File, dups[0].Line, "field %s declared twice in %s", dups[0].Name, r.Name)
	}
	if dups := lo.FindDuplicatesBy(fields, func(f *field) string { return f.goName }); len(dups) > 0 {
		clash := lo.Filter(fields, func(f *field, _ int) bool { return f.goName == dups[0].goName })
		names := lo.Map(clash, func(f *field, _ int) string { return f.Name })
		return semanticf(r.File, dups[0].Line, "fields %s of %s all map to Go field %s",
			strings.Join(names, ", "), r.Name, dups[0].goName)
	}

	for i, f := range fields {
		if !validGoName(f.goName) {
			return semanticf(r.File, f.Line, "field %s has no usable Go name", f.Name)
		}
		if err := checkFieldType(r, f, byName); err != nil {
			return err
		}
		if f.Sized() {
			if err := checkSizeField(r, i, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkFieldType(r *schema.Record, f *field, byName map[string]*schema.Record) error {
	_, isRecord := byName[f.Type]
	p := f.typ.prim

	switch f.Kind {
	case schema.Enum:
		if isRecord {
			return semanticf(r.File, f.Line, "enum field %s uses record type %s", f.Name, f.Type)
		}
		if p != nil && !p.integer {
			return semanticf(r.File, f.Line, "enum field %s needs an integer type, not %s", f.Name, f.Type)
		}
	case schema.Buffer:
		if p == nil || !p.integer || p.size != 1 {
			return semanticf(r.File, f.Line, "buffer field %s needs a byte sized integer type, not %s", f.Name, f.Type)
		}
	default:
		if p == nil && !isRecord {
			return semanticf(r.File, f.Line, "field %s has unknown type %s", f.Name, f.Type)
		}
	}
	return nil
}

// checkSizeField enforces that the count of an array or buffer comes from
// an integer field declared earlier in the same record, so every routine has
// it in hand before reaching the field it sizes.
func checkSizeField(r *schema.Record, i int, f *field) error {
	sf, j, ok := r.Field(f.SizeField)
	switch {
	case !ok:
		return semanticf(r.File, f.Line, "size field %s of %s is not a field of %s", f.SizeField, f.Name, r.Name)
	case j >= i:
		return semanticf(r.File, f.Line, "size field %s must be declared before %s", f.SizeField, f.Name)
	case sf.Kind != schema.Scalar:
		return semanticf(r.File, f.Line, "size field %s of %s is a %s field", f.SizeField, f.Name, sf.Kind)
	}
	if p, ok := primitives[sf.Type]; !ok || !p.integer {
		return semanticf(r.File, f.Line, "size field %s of %s must have an integer type, not %s", f.SizeField, f.Name, sf.Type)
	}
	return nil
}

// checkInlineCycles rejects records that contain themselves through inline
// record fields. Arrays and optionals are references and may recurse.
func (c *Compiler) checkInlineCycles(byName map[string]*schema.Record) error {
	const (
		unvisited = iota
		active
		done
	)
	state := make(map[string]int, len(byName))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case active:
			cycle := append(path[lo.IndexOf(path, name):], name)
			r := byName[name]
			return semanticf(r.File, r.Line, "record %s contains itself inline: %s",
				name, strings.Join(cycle, " -> "))
		case done:
			return nil
		}
		state[name] = active
		for _, f := range c.resolved[name] {
			if f.Kind != schema.Scalar || !f.typ.record() {
				continue
			}
			if _, ok := byName[f.Type]; !ok {
				continue
			}
			if err := visit(f.Type, append(path, name)); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for _, r := range c.records {
		if err := visit(r.Name, nil); err != nil {
			return err
		}
	}
	return nil
}
