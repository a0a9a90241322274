package ferry

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// AppendUint8 writes a single byte
func (l *Loader) AppendUint8(value uint8) error {
	return l.writeByte(value)
}

// AppendUint16 writes a big-endian uint16
func (l *Loader) AppendUint16(value uint16) error {
	if l.offset+2 <= len(l.block) {
		binary.BigEndian.PutUint16(l.block[l.offset:], value)
		l.offset += 2
		return nil
	}
	return l.appendSlow(uint64(value), 2)
}

// AppendUint32 writes a big-endian uint32
func (l *Loader) AppendUint32(value uint32) error {
	if l.offset+4 <= len(l.block) {
		binary.BigEndian.PutUint32(l.block[l.offset:], value)
		l.offset += 4
		return nil
	}
	return l.appendSlow(uint64(value), 4)
}

// AppendUint64 writes a big-endian uint64
func (l *Loader) AppendUint64(value uint64) error {
	if l.offset+8 <= len(l.block) {
		binary.BigEndian.PutUint64(l.block[l.offset:], value)
		l.offset += 8
		return nil
	}
	return l.appendSlow(value, 8)
}

// appendSlow writes the low size bytes of v one at a time across a block
// boundary.
func (l *Loader) appendSlow(v uint64, size int) error {
	for shift := 8 * (size - 1); shift >= 0; shift -= 8 {
		if err := l.writeByte(byte(v >> shift)); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) AppendInt8(value int8) error {
	return l.writeByte(uint8(value))
}

func (l *Loader) AppendInt16(value int16) error {
	return l.AppendUint16(uint16(value))
}

func (l *Loader) AppendInt32(value int32) error {
	return l.AppendUint32(uint32(value))
}

func (l *Loader) AppendInt64(value int64) error {
	return l.AppendUint64(uint64(value))
}

// AppendFloat32 writes the IEEE 754 bit pattern of value
func (l *Loader) AppendFloat32(value float32) error {
	return l.AppendUint32(math.Float32bits(value))
}

// AppendFloat64 writes the IEEE 754 bit pattern of value
func (l *Loader) AppendFloat64(value float64) error {
	return l.AppendUint64(math.Float64bits(value))
}

// AppendBool writes 1 for true, 0 for false
func (l *Loader) AppendBool(value bool) error {
	if value {
		return l.writeByte(1)
	}
	return l.writeByte(0)
}

// AppendBytes writes value raw, with no length prefix. The count travels in
// a sibling field.
func (l *Loader) AppendBytes(value []byte) error {
	return l.write(value)
}

// AppendString writes a 4 byte length followed by the raw bytes and charges
// the decoded copy, terminator included, to the heap budget.
func (l *Loader) AppendString(value string) error {
	if uint64(len(value)) > math.MaxUint32 {
		return errors.Wrapf(ErrSize, "string of %d bytes", len(value))
	}
	if err := l.AppendUint32(uint32(len(value))); err != nil {
		return err
	}
	l.heap += l.cfg.Pad(len(value) + 1)
	return l.writeString(value)
}
