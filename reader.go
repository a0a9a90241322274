package ferry

import (
	"encoding/binary"
	"math"
)

// ReadUint8 extracts a single byte
func (l *Loader) ReadUint8() (uint8, error) {
	return l.readByte()
}

// ReadUint16 decodes a big-endian uint16
func (l *Loader) ReadUint16() (uint16, error) {
	if l.offset+2 <= len(l.block) {
		v := binary.BigEndian.Uint16(l.block[l.offset:])
		l.offset += 2
		return v, nil
	}
	v, err := l.readSlow(2)
	return uint16(v), err
}

// ReadUint32 decodes a big-endian uint32
func (l *Loader) ReadUint32() (uint32, error) {
	if l.offset+4 <= len(l.block) {
		v := binary.BigEndian.Uint32(l.block[l.offset:])
		l.offset += 4
		return v, nil
	}
	v, err := l.readSlow(4)
	return uint32(v), err
}

// ReadUint64 decodes a big-endian uint64
func (l *Loader) ReadUint64() (uint64, error) {
	if l.offset+8 <= len(l.block) {
		v := binary.BigEndian.Uint64(l.block[l.offset:])
		l.offset += 8
		return v, nil
	}
	return l.readSlow(8)
}

func (l *Loader) readSlow(size int) (uint64, error) {
	var v uint64
	for i := 0; i < size; i++ {
		c, err := l.readByte()
		if err != nil {
			return 0, err
		}
		v = v<<8 | uint64(c)
	}
	return v, nil
}

func (l *Loader) ReadInt8() (int8, error) {
	v, err := l.readByte()
	return int8(v), err
}

func (l *Loader) ReadInt16() (int16, error) {
	v, err := l.ReadUint16()
	return int16(v), err
}

func (l *Loader) ReadInt32() (int32, error) {
	v, err := l.ReadUint32()
	return int32(v), err
}

func (l *Loader) ReadInt64() (int64, error) {
	v, err := l.ReadUint64()
	return int64(v), err
}

// ReadFloat32 decodes a float32 from its uint32 bit representation
func (l *Loader) ReadFloat32() (float32, error) {
	v, err := l.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 decodes a float64 from its uint64 bit representation
func (l *Loader) ReadFloat64() (float64, error) {
	v, err := l.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBool interprets a byte as boolean: anything but 0 is true.
func (l *Loader) ReadBool() (bool, error) {
	v, err := l.readByte()
	return v != 0, err
}

// ReadBytes fills dst from the stream.
func (l *Loader) ReadBytes(dst []byte) error {
	return l.read(dst)
}

// ReadString decodes a length-prefixed string into the arena. The result
// aliases arena memory and is followed there by a NUL byte.
func (l *Loader) ReadString() (string, error) {
	n, err := l.ReadUint32()
	if err != nil {
		return "", err
	}
	size, err := Count(n)
	if err != nil {
		return "", err
	}
	b, err := l.arena.Alloc(size + 1)
	if err != nil {
		return "", err
	}
	if err := l.read(b[:size]); err != nil {
		return "", err
	}
	b[size] = 0
	return bytesToString(b[:size]), nil
}
