// Package ferry is the runtime behind schema-generated codecs. Generated
// routines stream values through caller-supplied fixed-size blocks in a
// compact big-endian binary form or an indented JSON-like text form, and
// decode into a caller-owned arena sized exactly by the matching encode.
//
// A session is driven by a Loader. Encoding asks a push BlockFunc for blocks
// to fill and reports the heap budget the decoded value will need; decoding
// pulls blocks from a BlockFunc and carves variable-length payloads from the
// arena:
//
//	var wire []byte
//	budget, err := records.EncodeTestStruct(cfg, ferry.SliceSink(&wire, cfg.BlockSize), &v)
//	...
//	heap := make([]byte, budget)
//	err = records.DecodeTestStruct(cfg, ferry.BytesSource(wire), &out, heap)
//
// Strings and byte buffers in a decoded value point into the arena. Keep the
// arena alive, and unmodified, for as long as the value is in use.
package ferry

import (
	"sync"
	"unsafe"
)

// BlockFunc exchanges blocks with the caller.
//
// While decoding, the engine calls it with the configured block size and
// expects the next block of input; an error or an empty block ends the
// session with ErrCallback. While encoding, the engine calls it with the
// number of bytes written into the current block (0 for the very first call)
// and expects a fresh block to fill; the final call flushes the partial last
// block and its result is ignored.
type BlockFunc func(n int) ([]byte, error)

// Codec bundles the four routines generated for one record type.
type Codec[T any] struct {
	Encoder func(*Loader, *T) error
	Decoder func(*Loader, *T) error
	Printer func(*Loader, *T) error
	Reader  func(*Loader, *T) error
}

// Encode writes v in binary form through push and returns the heap budget
// needed to decode it.
func (c Codec[T]) Encode(cfg Config, push BlockFunc, v *T) (int, error) {
	return Encode(cfg, push, v, c.Encoder)
}

// Decode reads a binary value from pull into v, allocating from heap.
func (c Codec[T]) Decode(cfg Config, pull BlockFunc, v *T, heap []byte) error {
	return Decode(cfg, pull, v, heap, c.Decoder)
}

// EncodeText writes v in text form through push and returns the heap budget
// needed to decode it.
func (c Codec[T]) EncodeText(cfg Config, push BlockFunc, v *T) (int, error) {
	return Encode(cfg, push, v, c.Printer)
}

// DecodeText reads a text value from pull into v, allocating from heap.
func (c Codec[T]) DecodeText(cfg Config, pull BlockFunc, v *T, heap []byte) error {
	return Decode(cfg, pull, v, heap, c.Reader)
}

var loaderPool = sync.Pool{
	New: func() any { return &Loader{} },
}

// Encode runs fn in a fresh encode session and flushes the last block.
func Encode[T any](cfg Config, push BlockFunc, v *T, fn func(*Loader, *T) error) (int, error) {
	l := loaderPool.Get().(*Loader)
	defer l.release()

	if err := l.startEncode(cfg, push); err != nil {
		return 0, err
	}
	if err := fn(l, v); err != nil {
		return 0, err
	}
	return l.Finish()
}

// Decode runs fn in a fresh decode session over heap.
func Decode[T any](cfg Config, pull BlockFunc, v *T, heap []byte, fn func(*Loader, *T) error) error {
	l := loaderPool.Get().(*Loader)
	defer l.release()

	if err := l.startDecode(cfg, pull, heap); err != nil {
		return err
	}
	return fn(l, v)
}

// bytesToString aliases b without copying.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
