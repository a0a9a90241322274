// Package schema parses the record layout language.
//
// A schema file is a sequence of record declarations:
//
//	Inner {
//		uint64 dummy;
//	}
//
//	Outer {
//		uint32  n;
//		Inner   items[n];  // n elements
//		uint8   blob(n);   // n raw bytes
//		Inner*  next;      // optional
//		Color   %tint;     // enum, 4 bytes on the wire
//	}
//
// Comments are not part of the language; the ones above are annotation only.
// Parsing is done by a small state machine that feeds a Handler one event
// per record start, field and record end.
package schema

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind says how a field is laid out on the wire.
type Kind uint8

const (
	Scalar   Kind = iota // a primitive or an inline record
	Array                // Type name[size]
	Optional             // Type* name
	Buffer               // Type name(size)
	Enum                 // Type %name
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Array:
		return "array"
	case Optional:
		return "optional"
	case Buffer:
		return "buffer"
	case Enum:
		return "enum"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Field is one declared field of a record.
type Field struct {
	Name string
	Type string
	Kind Kind
	// SizeField names the sibling field holding the element or byte count of
	// an Array or Buffer.
	SizeField string
	Line      int
}

// Sized reports whether the field takes its length from SizeField.
func (f Field) Sized() bool {
	return f.Kind == Array || f.Kind == Buffer
}

// Record is a named, ordered list of fields.
type Record struct {
	Name   string
	File   string
	Line   int
	Fields []Field
}

// Field returns the field called name and its position.
func (r *Record) Field(name string) (Field, int, bool) {
	for i, f := range r.Fields {
		if f.Name == name {
			return f, i, true
		}
	}
	return Field{}, -1, false
}

// Handler receives parse events in source order. Returning an error stops
// the parse.
type Handler interface {
	BeginRecord(r *Record) error
	Field(r *Record, f Field) error
	EndRecord(r *Record) error
}

// ErrSyntax matches every *SyntaxError.
var ErrSyntax = errors.New("schema: syntax error")

// SyntaxError reports malformed schema text.
type SyntaxError struct {
	File string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Collector is a Handler that keeps every parsed record.
type Collector struct {
	Records []*Record
}

func (c *Collector) BeginRecord(*Record) error  { return nil }
func (c *Collector) Field(*Record, Field) error { return nil }
func (c *Collector) EndRecord(r *Record) error {
	c.Records = append(c.Records, r)
	return nil
}
