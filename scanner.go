package ferry

import (
	"bytes"
	"encoding/base64"
	"strconv"
)

// The scanner is the reading half of the text form. It is forgiving about
// layout: labels are found by seeking past the next colon and numbers run up
// to the next delimiter, so whitespace and a trailing comma before a closing
// bracket are skipped over.

var unescapes = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'b':  '\b',
	'f':  '\f',
}

// SkipPast consumes input up to and including the next c.
func (l *Loader) SkipPast(c byte) error {
	for {
		b, err := l.readByte()
		if err != nil {
			return err
		}
		if b == c {
			return nil
		}
	}
}

// SkipLabel consumes a field label and its colon.
func (l *Loader) SkipLabel() error {
	return l.SkipPast(':')
}

// scanToken reads an unquoted value up to and including the next ',', '}'
// or ']' and returns it trimmed. The result aliases the scratch buffer.
func (l *Loader) scanToken(kind string) (string, error) {
	n := 0
	for {
		c, err := l.readByte()
		if err != nil {
			return "", err
		}
		if c == ',' || c == '}' || c == ']' {
			break
		}
		if n == len(l.scratch) {
			return "", textError("%s value longer than %d bytes", kind, len(l.scratch))
		}
		l.scratch[n] = c
		n++
	}
	return bytesToString(bytes.TrimSpace(l.scratch[:n])), nil
}

func (l *Loader) scanUint(bits int) (uint64, error) {
	s, err := l.scanToken("unsigned")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, textError("bad uint%d %q", bits, s)
	}
	return v, nil
}

func (l *Loader) scanInt(bits int) (int64, error) {
	s, err := l.scanToken("integer")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, textError("bad int%d %q", bits, s)
	}
	return v, nil
}

func (l *Loader) scanFloat(bits int) (float64, error) {
	s, err := l.scanToken("float")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, textError("bad float%d %q", bits, s)
	}
	return v, nil
}

func (l *Loader) ScanUint8() (uint8, error) {
	v, err := l.scanUint(8)
	return uint8(v), err
}

func (l *Loader) ScanUint16() (uint16, error) {
	v, err := l.scanUint(16)
	return uint16(v), err
}

func (l *Loader) ScanUint32() (uint32, error) {
	v, err := l.scanUint(32)
	return uint32(v), err
}

func (l *Loader) ScanUint64() (uint64, error) {
	return l.scanUint(64)
}

func (l *Loader) ScanInt8() (int8, error) {
	v, err := l.scanInt(8)
	return int8(v), err
}

func (l *Loader) ScanInt16() (int16, error) {
	v, err := l.scanInt(16)
	return int16(v), err
}

func (l *Loader) ScanInt32() (int32, error) {
	v, err := l.scanInt(32)
	return int32(v), err
}

func (l *Loader) ScanInt64() (int64, error) {
	return l.scanInt(64)
}

func (l *Loader) ScanFloat32() (float32, error) {
	v, err := l.scanFloat(32)
	return float32(v), err
}

func (l *Loader) ScanFloat64() (float64, error) {
	return l.scanFloat(64)
}

func (l *Loader) ScanBool() (bool, error) {
	s, err := l.scanToken("bool")
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, textError("bad bool %q", s)
	}
	return v, nil
}

// ScanString decodes the next quoted string into the arena.
//
// The length is unknown until the closing quote, so the bytes are collected
// one alignment unit at a time below the arena's high-water mark and put
// back in order once the string ends. The result is NUL-terminated in the
// arena and aliases it.
func (l *Loader) ScanString() (string, error) {
	if err := l.SkipPast('"'); err != nil {
		return "", err
	}

	col := l.arena.collect()
	for {
		c, err := l.readByte()
		if err != nil {
			return "", err
		}
		if c == '"' {
			break
		}
		if c == '\\' {
			e, err := l.readByte()
			if err != nil {
				return "", err
			}
			if c = unescapes[e]; c == 0 {
				return "", textError("unknown escape \\%c", e)
			}
		}
		if err := col.WriteByte(c); err != nil {
			return "", err
		}
	}

	b, err := col.finish()
	if err != nil {
		return "", err
	}
	return bytesToString(b), nil
}

// ScanBytes decodes the next quoted base64 string into dst. Decoding stops
// once dst is full or at the closing quote; a string that ends before dst is
// full is an error.
func (l *Loader) ScanBytes(dst []byte) error {
	if err := l.SkipPast('"'); err != nil {
		return err
	}

	var quad [4]byte
	var out [3]byte
	q := 0
	for filled := 0; filled < len(dst); {
		c, err := l.readByte()
		if err != nil {
			return err
		}
		if c == '"' {
			return textError("base64 data ends after %d of %d bytes", filled, len(dst))
		}
		quad[q] = c
		if q++; q < len(quad) {
			continue
		}
		q = 0

		n, err := base64.StdEncoding.Decode(out[:], quad[:])
		if err != nil {
			return textError("bad base64 %q", quad[:])
		}
		filled += copy(dst[filled:], out[:n])
	}

	c, err := l.peekByte()
	if err != nil {
		return err
	}
	if c == '"' {
		l.offset++
	}
	return nil
}
