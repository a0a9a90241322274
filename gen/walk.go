package gen

import (
	"fmt"

	"github.com/kungfusheep/ferry/schema"
)

// Every record gets four routines: binary encode and decode, text encode and
// decode. They are produced by one walk over the fields, emitField, driven
// through a direction that knows how to spell each step. Keeping a single
// walk is what keeps the four routines visiting fields in the same order.

// field is a schema field resolved for emission.
type field struct {
	schema.Field
	goName string
	typ    typeRef
	size   string // Go name of the size field
}

// place is where a value lives in generated code.
type place struct {
	expr string
	ptr  bool
}

func (p place) val() string {
	if p.ptr {
		return "*" + p.expr
	}
	return p.expr
}

func (p place) addr() string {
	if p.ptr {
		return p.expr
	}
	return "&" + p.expr
}

type direction interface {
	buffer() *Buffer
	begin(rec string)
	end()

	label(name string)
	value(t typeRef, p place)
	openList()
	closeList()
	// sized prepares the slice behind an Array or Buffer field and returns
	// the expression to range over.
	sized(f *field, p place) string
	bytes(f *field, p place)
	optional(f *field, p place)
}

// emitField writes the code for one field in direction d.
func emitField(d direction, f *field) {
	b := d.buffer()
	p := place{expr: "v." + f.goName}

	switch f.Kind {
	case schema.Scalar, schema.Enum:
		d.label(f.Name)
		d.value(f.typ, p)

	case schema.Array:
		d.label(f.Name)
		d.openList()
		b.emit("for i := range %s {", d.sized(f, p))
		d.value(f.typ, place{expr: p.expr + "[i]"})
		b.emit("}")
		d.closeList()

	case schema.Buffer:
		d.label(f.Name)
		d.sized(f, p)
		d.bytes(f, p)

	case schema.Optional:
		d.optional(f, p)
		b.emit("if %s != nil {", p.expr)
		d.label(f.Name)
		d.value(f.typ, place{expr: p.expr, ptr: true})
		b.emit("}")

	default:
		panic(fmt.Sprintf("gen: unexpected field kind %v", f.Kind))
	}
}

// commonCodeGen is the part shared by every direction.
type commonCodeGen struct {
	buf Buffer
}

func (c *commonCodeGen) buffer() *Buffer {
	return &c.buf
}

func (c *commonCodeGen) emit(format string, a ...any) {
	c.buf.emit(format, a...)
}

// check emits a call whose error ends the routine.
func (c *commonCodeGen) check(format string, a ...any) {
	c.emit("if err = "+format+"; err != nil {\nreturn err\n}", a...)
}

// assign emits lhs, err = rhs with the same error handling as check.
func (c *commonCodeGen) assign(lhs, format string, a ...any) {
	c.emit("if "+lhs+", err = "+format+"; err != nil {\nreturn err\n}", a...)
}

func (c *commonCodeGen) signature(prefix, rec string) {
	c.emit("func %s%s(l *ferry.Loader, v *%s) (err error) {", prefix, exported(rec), rec)
}

func (c *commonCodeGen) label(string) {}
func (c *commonCodeGen) openList()    {}
func (c *commonCodeGen) closeList()   {}

func (c *commonCodeGen) end() {
	c.emit("return nil\n}\n")
}

// binEncoder writes the binary form and accumulates the heap budget.
type binEncoder struct {
	commonCodeGen
}

func (e *binEncoder) begin(rec string) {
	e.signature("encode", rec)
}

func (e *binEncoder) value(t typeRef, p place) {
	switch {
	case t.enum:
		e.check("ferry.AppendEnum(l, %s)", p.val())
	case t.prim != nil:
		e.check("l.Append%s(%s)", t.prim.method, p.val())
	default:
		e.check("encode%s(l, %s)", exported(t.name), p.addr())
	}
}

func (e *binEncoder) sized(f *field, p place) string {
	return chargeSized(&e.commonCodeGen, f, p)
}

func (e *binEncoder) bytes(f *field, p place) {
	e.check("l.AppendBytes(%s[:v.%s])", p.expr, f.size)
}

func (e *binEncoder) optional(f *field, p place) {
	e.check("ferry.AppendOptional(l, %s)", p.expr)
}

// binDecoder reads the binary form, allocating from the arena.
type binDecoder struct {
	commonCodeGen
}

func (d *binDecoder) begin(rec string) {
	d.signature("decode", rec)
}

func (d *binDecoder) value(t typeRef, p place) {
	switch {
	case t.enum:
		d.assign(p.val(), "ferry.ReadEnum[%s](l)", t.goType)
	case t.prim != nil:
		d.assign(p.val(), "l.Read%s()", t.prim.method)
	default:
		d.check("decode%s(l, %s)", exported(t.name), p.addr())
	}
}

func (d *binDecoder) sized(f *field, p place) string {
	return allocSized(&d.commonCodeGen, f, p)
}

func (d *binDecoder) bytes(f *field, p place) {
	d.check("l.ReadBytes(%s)", p.expr)
}

func (d *binDecoder) optional(f *field, p place) {
	d.check("ferry.ReadOptional(l, &%s)", p.expr)
}

// textEncoder pretty-prints the text form and accumulates the heap budget.
type textEncoder struct {
	commonCodeGen
}

func (e *textEncoder) begin(rec string) {
	e.signature("print", rec)
	e.check(`l.PrintToken("{")`)
}

func (e *textEncoder) end() {
	e.emit("return l.PrintToken(\"}\")\n}\n")
}

func (e *textEncoder) label(name string) {
	e.check("l.PrintLabel(%q)", name)
}

func (e *textEncoder) value(t typeRef, p place) {
	switch {
	case t.enum:
		e.check("ferry.PrintEnum(l, %s)", p.val())
	case t.prim != nil:
		e.check("l.Print%s(%s)", t.prim.method, p.val())
	default:
		e.check("print%s(l, %s)", exported(t.name), p.addr())
		e.check(`l.PrintToken(",")`)
	}
}

func (e *textEncoder) openList() {
	e.check(`l.PrintToken("[")`)
}

func (e *textEncoder) closeList() {
	e.check(`l.PrintToken("],")`)
}

func (e *textEncoder) sized(f *field, p place) string {
	return chargeSized(&e.commonCodeGen, f, p)
}

func (e *textEncoder) bytes(f *field, p place) {
	e.check("l.PrintBytes(%s[:v.%s])", p.expr, f.size)
}

func (e *textEncoder) optional(f *field, p place) {
	e.check("ferry.PrintOptional(l, %q, %s)", f.Name, p.expr)
}

// textDecoder parses the text form, allocating from the arena.
type textDecoder struct {
	commonCodeGen
}

func (d *textDecoder) begin(rec string) {
	d.signature("read", rec)
}

func (d *textDecoder) label(string) {
	d.check("l.SkipLabel()")
}

func (d *textDecoder) value(t typeRef, p place) {
	switch {
	case t.enum:
		d.assign(p.val(), "ferry.ScanEnum[%s](l)", t.goType)
	case t.prim != nil:
		d.assign(p.val(), "l.Scan%s()", t.prim.method)
	default:
		d.check("read%s(l, %s)", exported(t.name), p.addr())
	}
}

func (d *textDecoder) openList() {
	d.check("l.SkipPast('[')")
}

func (d *textDecoder) sized(f *field, p place) string {
	return allocSized(&d.commonCodeGen, f, p)
}

func (d *textDecoder) bytes(f *field, p place) {
	d.check("l.ScanBytes(%s)", p.expr)
}

func (d *textDecoder) optional(f *field, p place) {
	d.check("ferry.ScanOptional(l, &%s)", p.expr)
}

// chargeSized is the encoding side of sized: check the count against the
// slice and add the payload to the heap budget.
func chargeSized(c *commonCodeGen, f *field, p place) string {
	if f.Kind == schema.Buffer {
		c.check("ferry.ChargeBuffer(l, v.%s, %s)", f.size, p.expr)
	} else {
		c.check("ferry.ChargeArray(l, v.%s, %s)", f.size, p.expr)
	}
	return fmt.Sprintf("%s[:v.%s]", p.expr, f.size)
}

// allocSized is the decoding side of sized: take the slice from the arena.
func allocSized(c *commonCodeGen, f *field, p place) string {
	if f.Kind == schema.Buffer {
		c.check("ferry.AllocBuffer(l, v.%s, &%s)", f.size, p.expr)
	} else {
		c.check("ferry.MakeArray(l, v.%s, &%s)", f.size, p.expr)
	}
	return p.expr
}
