package schema

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// Parse reads schema text from r and reports records to h. name is used in
// error messages. The first error ends the parse.
func Parse(name string, r io.Reader, h Handler) error {
	p := &parser{file: name, line: 1, h: h}
	br := bufio.NewReader(r)

	state := stateFn(structName)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", name)
		}
		if state, err = state(p, c); err != nil {
			return err
		}
		if c == '\n' {
			p.line++
		}
	}

	if p.rec != nil || len(p.ident) > 0 {
		return p.errorf("unexpected end of input")
	}
	return nil
}

// ParseFile parses the schema file at path.
func ParseFile(path string, h Handler) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open schema")
	}
	defer f.Close()
	return Parse(path, f, h)
}

// ParseBytes parses schema text held in memory.
func ParseBytes(name string, src []byte, h Handler) error {
	return Parse(name, bytes.NewReader(src), h)
}

// Collect parses r and returns its records.
func Collect(name string, r io.Reader) ([]*Record, error) {
	var c Collector
	if err := Parse(name, r, &c); err != nil {
		return nil, err
	}
	return c.Records, nil
}

// stateFn consumes one character and returns the state for the next one.
type stateFn func(p *parser, c byte) (stateFn, error)

type parser struct {
	file string
	line int
	h    Handler

	rec   *Record
	field Field

	ident []byte
	ended bool // whitespace followed the identifier being read
	close byte // bracket that ends the size list
	shut  bool // size list closed, only ';' may follow
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{File: p.file, Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isIdent(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func (p *parser) describe(c byte) string {
	if c < ' ' || c > '~' {
		return fmt.Sprintf("byte 0x%02x", c)
	}
	return fmt.Sprintf("%q", c)
}

// accept handles whitespace and identifier characters common to every
// state. It reports false for anything else.
func (p *parser) accept(c byte) (bool, error) {
	switch {
	case isSpace(c):
		if len(p.ident) > 0 {
			p.ended = true
		}
		return true, nil
	case isIdent(c):
		if p.ended {
			return true, p.errorf("unexpected identifier after %q", p.ident)
		}
		if len(p.ident) == 0 && '0' <= c && c <= '9' {
			return true, p.errorf("identifier cannot start with digit %q", c)
		}
		p.ident = append(p.ident, c)
		return true, nil
	}
	return false, nil
}

// take returns the identifier read so far and clears it.
func (p *parser) take(what string) (string, error) {
	if len(p.ident) == 0 {
		return "", p.errorf("missing %s", what)
	}
	s := string(p.ident)
	p.ident, p.ended = p.ident[:0], false
	return s, nil
}

func structName(p *parser, c byte) (stateFn, error) {
	if ok, err := p.accept(c); ok {
		return structName, err
	}
	if c != '{' {
		return nil, p.errorf("unexpected %s, expecting record name or '{'", p.describe(c))
	}

	name, err := p.take("record name")
	if err != nil {
		return nil, err
	}
	p.rec = &Record{Name: name, File: p.file, Line: p.line}
	if err := p.h.BeginRecord(p.rec); err != nil {
		return nil, err
	}
	return dataType, nil
}

func dataType(p *parser, c byte) (stateFn, error) {
	if isSpace(c) && len(p.ident) > 0 {
		return p.beginField(Scalar)
	}
	if ok, err := p.accept(c); ok {
		return dataType, err
	}

	switch c {
	case '}':
		if len(p.ident) > 0 {
			return nil, p.errorf("missing field name after type %q", p.ident)
		}
		rec := p.rec
		p.rec = nil
		if err := p.h.EndRecord(rec); err != nil {
			return nil, err
		}
		return structName, nil
	case '*':
		return p.beginField(Optional)
	case '%':
		return p.beginField(Enum)
	}
	return nil, p.errorf("unexpected %s, expecting field type or '}'", p.describe(c))
}

func (p *parser) beginField(kind Kind) (stateFn, error) {
	typ, err := p.take("field type")
	if err != nil {
		return nil, err
	}
	p.field = Field{Type: typ, Kind: kind, Line: p.line}
	return varName, nil
}

func varName(p *parser, c byte) (stateFn, error) {
	if ok, err := p.accept(c); ok {
		return varName, err
	}

	switch c {
	case '*', '%':
		if len(p.ident) > 0 || p.field.Kind != Scalar {
			return nil, p.errorf("misplaced %q", c)
		}
		if c == '*' {
			p.field.Kind = Optional
		} else {
			p.field.Kind = Enum
		}
		return varName, nil
	case ';':
		name, err := p.take("field name")
		if err != nil {
			return nil, err
		}
		p.field.Name = name
		return p.endField()
	case '[', '(':
		name, err := p.take("field name")
		if err != nil {
			return nil, err
		}
		if p.field.Kind != Scalar {
			return nil, p.errorf("%s field %q cannot also be sized", p.field.Kind, name)
		}
		p.field.Name = name
		if c == '[' {
			p.field.Kind, p.close = Array, ']'
		} else {
			p.field.Kind, p.close = Buffer, ')'
		}
		p.shut = false
		return listSize, nil
	}
	return nil, p.errorf("unexpected %s in name of %s field", p.describe(c), p.field.Type)
}

func listSize(p *parser, c byte) (stateFn, error) {
	if p.shut {
		switch {
		case isSpace(c):
			return listSize, nil
		case c == ';':
			return p.endField()
		}
		return nil, p.errorf("unexpected %s after size of %q, expecting ';'", p.describe(c), p.field.Name)
	}

	if ok, err := p.accept(c); ok {
		return listSize, err
	}

	switch c {
	case ']', ')':
		if c != p.close {
			return nil, p.errorf("size of %q opened with %q but closed with %q", p.field.Name, opening(p.close), c)
		}
		size, err := p.take("size field")
		if err != nil {
			return nil, err
		}
		p.field.SizeField = size
		p.shut = true
		return listSize, nil
	case ';':
		return nil, p.errorf("size of %q is missing %q", p.field.Name, p.close)
	}
	return nil, p.errorf("unexpected %s in size of %q", p.describe(c), p.field.Name)
}

func opening(close byte) byte {
	if close == ']' {
		return '['
	}
	return '('
}

func (p *parser) endField() (stateFn, error) {
	f := p.field
	p.field = Field{}
	p.rec.Fields = append(p.rec.Fields, f)
	if err := p.h.Field(p.rec, f); err != nil {
		return nil, err
	}
	return dataType, nil
}
