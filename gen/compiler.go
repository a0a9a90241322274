// Package gen turns parsed schema records into Go source that encodes and
// decodes them with the ferry runtime.
//
// A Compiler is a schema.Handler: hand it to schema.Parse for every schema
// file, then call Finish to validate the records as a whole and get the
// formatted source.
package gen

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"github.com/kungfusheep/ferry/schema"
)

// RuntimeImport is the import path generated code depends on.
const RuntimeImport = "github.com/kungfusheep/ferry"

const header = "// Code generated by ferryc. DO NOT EDIT.\n\n"

// Options control code generation.
type Options struct {
	// Package is the package clause of the generated file. Defaults to
	// "records".
	Package string
	// SkipTypes leaves the struct types out, for packages that declare them
	// by hand.
	SkipTypes bool
	// Logger receives one debug entry per compiled record. Defaults to a
	// no-op logger.
	Logger *zap.Logger
}

// Compiler collects records from parse events and emits their codecs.
type Compiler struct {
	opts Options
	log  *zap.Logger

	records  []*schema.Record
	resolved map[string][]*field

	cur   *recordGen
	types strings.Builder
	code  Buffer
}

// recordGen holds the four routines of the record being parsed.
type recordGen struct {
	fields []*field
	dirs   [4]direction
}

// New returns a Compiler ready to receive parse events.
func New(opts Options) *Compiler {
	if opts.Package == "" {
		opts.Package = "records"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Compiler{
		opts:     opts,
		log:      opts.Logger,
		resolved: make(map[string][]*field),
	}
}

// Generate compiles records that were collected earlier.
func Generate(opts Options, recs []*schema.Record) ([]byte, error) {
	c := New(opts)
	for _, r := range recs {
		if err := c.BeginRecord(r); err != nil {
			return nil, err
		}
		for _, f := range r.Fields {
			if err := c.Field(r, f); err != nil {
				return nil, err
			}
		}
		if err := c.EndRecord(r); err != nil {
			return nil, err
		}
	}
	return c.Finish()
}

func (c *Compiler) BeginRecord(r *schema.Record) error {
	c.cur = &recordGen{
		dirs: [4]direction{&binEncoder{}, &binDecoder{}, &textEncoder{}, &textDecoder{}},
	}
	for _, d := range c.cur.dirs {
		d.begin(r.Name)
	}
	return nil
}

func (c *Compiler) Field(r *schema.Record, sf schema.Field) error {
	f := &field{
		Field:  sf,
		goName: toGoFieldName(sf.Name),
		typ:    resolve(sf.Type, sf.Kind == schema.Enum),
	}
	if sf.Sized() {
		f.size = toGoFieldName(sf.SizeField)
	}

	c.cur.fields = append(c.cur.fields, f)
	for _, d := range c.cur.dirs {
		emitField(d, f)
	}
	return nil
}

func (c *Compiler) EndRecord(r *schema.Record) error {
	g := c.cur
	c.cur = nil

	c.emitEntryPoints(r.Name)
	for _, d := range g.dirs {
		d.end()
		c.code.Write(d.buffer().Bytes())
	}
	if !c.opts.SkipTypes {
		writeStruct(&c.types, newStructInfo(r.Name, g.fields))
	}

	c.records = append(c.records, r)
	c.resolved[r.Name] = g.fields

	c.log.Debug("record compiled",
		zap.String("record", r.Name),
		zap.String("file", r.File),
		zap.Int("fields", len(g.fields)))
	return nil
}

// Records returns the records compiled so far, in source order.
func (c *Compiler) Records() []*schema.Record {
	return c.records
}

func (c *Compiler) emitEntryPoints(name string) {
	x := exported(name)
	b := &c.code

	b.emit("// %sCodec bundles the generated routines for %s.", x, name)
	b.emit("var %sCodec = ferry.Codec[%s]{", x, name)
	b.emit("Encoder: encode%s,", x)
	b.emit("Decoder: decode%s,", x)
	b.emit("Printer: print%s,", x)
	b.emit("Reader: read%s,", x)
	b.emit("}\n")

	b.emit("// Encode%s writes v in binary form through push and returns the heap", x)
	b.emit("// budget needed to decode it.")
	b.emit("func Encode%s(cfg ferry.Config, push ferry.BlockFunc, v *%s) (int, error) {", x, name)
	b.emit("return %sCodec.Encode(cfg, push, v)\n}\n", x)

	b.emit("// Decode%s reads a binary %s from pull, allocating from heap.", x, name)
	b.emit("func Decode%s(cfg ferry.Config, pull ferry.BlockFunc, v *%s, heap []byte) error {", x, name)
	b.emit("return %sCodec.Decode(cfg, pull, v, heap)\n}\n", x)

	b.emit("// Encode%sText writes v in text form through push and returns the heap", x)
	b.emit("// budget needed to decode it.")
	b.emit("func Encode%sText(cfg ferry.Config, push ferry.BlockFunc, v *%s) (int, error) {", x, name)
	b.emit("return %sCodec.EncodeText(cfg, push, v)\n}\n", x)

	b.emit("// Decode%sText reads a text %s from pull, allocating from heap.", x, name)
	b.emit("func Decode%sText(cfg ferry.Config, pull ferry.BlockFunc, v *%s, heap []byte) error {", x, name)
	b.emit("return %sCodec.DecodeText(cfg, pull, v, heap)\n}\n", x)
}

// Finish validates everything compiled so far and returns the formatted Go
// source. Nothing is returned when validation fails.
func (c *Compiler) Finish() ([]byte, error) {
	if c.cur != nil {
		return nil, errors.New("gen: Finish called inside a record")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	var src strings.Builder
	src.WriteString(header)
	fmt.Fprintf(&src, "package %s\n\nimport %q\n\n", c.opts.Package, RuntimeImport)
	src.WriteString(c.types.String())
	src.Write(c.code.Bytes())

	out, err := imports.Process(c.opts.Package+"_ferry.go", []byte(src.String()), nil)
	if err != nil {
		return nil, errors.Wrap(err, "gen: format generated source")
	}

	c.log.Debug("source generated",
		zap.String("package", c.opts.Package),
		zap.Int("records", len(c.records)),
		zap.Int("bytes", len(out)))
	return out, nil
}
