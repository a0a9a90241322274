package ferry

import (
	"encoding/base64"
	"strconv"
)

// The text routines write a JSON-like document through the same blocks as the
// binary ones. Structural tokens go through printByte, which only ever looks
// at the previous structural character to decide on line breaks and
// indentation; literal payloads bypass it.

// escapes maps a byte to the letter of its two character escape.
var escapes = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\b': 'b',
	'\f': 'f',
}

// PrintToken feeds structural characters and unquoted literals through the
// pretty-printer.
func (l *Loader) PrintToken(s string) error {
	for i := 0; i < len(s); i++ {
		if err := l.printByte(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// printByte emits c, preceded by whatever line break, indentation or held
// back separator the previous character calls for. A comma is held until
// the next character shows it is not followed by a closing bracket.
func (l *Loader) printByte(c byte) error {
	closing := c == '}' || c == ']'
	empty := (l.last == '{' && c == '}') || (l.last == '[' && c == ']')

	switch l.last {
	case '{', '[':
		if !empty {
			l.indent++
			if err := l.newline(); err != nil {
				return err
			}
		}
	case ',':
		if !closing {
			if err := l.writeByte(','); err != nil {
				return err
			}
			if err := l.newline(); err != nil {
				return err
			}
		}
	}
	l.last = c

	switch {
	case closing:
		if !empty {
			l.indent--
			if err := l.newline(); err != nil {
				return err
			}
		}
		return l.writeByte(c)
	case c == ':':
		if err := l.writeByte(':'); err != nil {
			return err
		}
		return l.writeByte(' ')
	case c == ',':
		return nil
	}
	return l.writeByte(c)
}

func (l *Loader) newline() error {
	if err := l.writeByte('\n'); err != nil {
		return err
	}
	for i := 0; i < l.indent; i++ {
		if err := l.writeByte('\t'); err != nil {
			return err
		}
	}
	return nil
}

// PrintLabel writes "name": ahead of a field value.
func (l *Loader) PrintLabel(name string) error {
	if err := l.printByte('"'); err != nil {
		return err
	}
	if err := l.PrintToken(name); err != nil {
		return err
	}
	if err := l.printByte('"'); err != nil {
		return err
	}
	return l.printByte(':')
}

func (l *Loader) printNumber(b []byte) error {
	for _, c := range b {
		if err := l.printByte(c); err != nil {
			return err
		}
	}
	return l.printByte(',')
}

func (l *Loader) printUint(v uint64) error {
	return l.printNumber(strconv.AppendUint(l.scratch[:0], v, 10))
}

func (l *Loader) printInt(v int64) error {
	return l.printNumber(strconv.AppendInt(l.scratch[:0], v, 10))
}

func (l *Loader) printFloat(v float64, bits int) error {
	return l.printNumber(strconv.AppendFloat(l.scratch[:0], v, 'g', -1, bits))
}

func (l *Loader) PrintUint8(value uint8) error   { return l.printUint(uint64(value)) }
func (l *Loader) PrintUint16(value uint16) error { return l.printUint(uint64(value)) }
func (l *Loader) PrintUint32(value uint32) error { return l.printUint(uint64(value)) }
func (l *Loader) PrintUint64(value uint64) error { return l.printUint(value) }
func (l *Loader) PrintInt8(value int8) error     { return l.printInt(int64(value)) }
func (l *Loader) PrintInt16(value int16) error   { return l.printInt(int64(value)) }
func (l *Loader) PrintInt32(value int32) error   { return l.printInt(int64(value)) }
func (l *Loader) PrintInt64(value int64) error   { return l.printInt(value) }

// PrintFloat32 writes the shortest decimal that reads back as value.
func (l *Loader) PrintFloat32(value float32) error { return l.printFloat(float64(value), 32) }

// PrintFloat64 writes the shortest decimal that reads back as value.
func (l *Loader) PrintFloat64(value float64) error { return l.printFloat(value, 64) }

// PrintBool writes true or false.
func (l *Loader) PrintBool(value bool) error {
	return l.printNumber(strconv.AppendBool(l.scratch[:0], value))
}

// PrintString writes value quoted and escaped and charges its decoded copy,
// terminator included, to the heap budget.
func (l *Loader) PrintString(value string) error {
	l.heap += l.cfg.Pad(len(value) + 1)

	if err := l.printByte('"'); err != nil {
		return err
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if e := escapes[c]; e != 0 {
			if err := l.writeByte('\\'); err != nil {
				return err
			}
			c = e
		}
		if err := l.writeByte(c); err != nil {
			return err
		}
	}
	return l.closeQuote()
}

// PrintBytes writes value as a quoted standard base64 string.
func (l *Loader) PrintBytes(value []byte) error {
	if err := l.printByte('"'); err != nil {
		return err
	}
	var quad [4]byte
	for len(value) > 0 {
		n := min(len(value), 3)
		base64.StdEncoding.Encode(quad[:], value[:n])
		if err := l.write(quad[:]); err != nil {
			return err
		}
		value = value[n:]
	}
	return l.closeQuote()
}

func (l *Loader) closeQuote() error {
	if err := l.writeByte('"'); err != nil {
		return err
	}
	l.last = '"'
	return l.printByte(',')
}
