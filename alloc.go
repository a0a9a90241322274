package ferry

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Count converts a decoded size field into an element count.
func Count[N constraints.Integer](n N) (int, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrSize, "negative count %d", n)
	}
	if uint64(n) > math.MaxInt {
		return 0, errors.Wrapf(ErrSize, "count %d overflows int", n)
	}
	return int(n), nil
}

// CountFor converts a size field about to be encoded into an element count
// and checks that the slice it describes holds at least that many elements.
// Elements past the count are not written.
func CountFor[N constraints.Integer](n N, have int) (int, error) {
	c, err := Count(n)
	if err != nil {
		return 0, err
	}
	if c > have {
		return 0, errors.Wrapf(ErrSize, "size field is %d but only %d elements are present", c, have)
	}
	return c, nil
}

// SizeOf reports the in-memory size of a T.
func SizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// ChargeBytes adds the padded size of an n byte payload to the heap budget.
func (l *Loader) ChargeBytes(n int) {
	l.heap += l.cfg.Pad(n)
}

// Charge accounts for one T the decoder will allocate.
func Charge[T any](l *Loader) {
	l.ChargeBytes(SizeOf[T]())
}

// ChargeSlice accounts for n contiguous Ts the decoder will allocate.
func ChargeSlice[T any](l *Loader, n int) {
	l.ChargeBytes(n * SizeOf[T]())
}

// Alloc takes n bytes from the session arena. Alloc(0) returns nil.
func (l *Loader) Alloc(n int) ([]byte, error) {
	return l.arena.Alloc(n)
}

// New charges one T against the arena and returns a pointer to a zero T.
//
// Typed values are allocated by the Go runtime so the garbage collector can
// trace the pointers inside them; the arena still gives up the same number
// of bytes, keeping the decode side in step with the budget from Charge.
func New[T any](l *Loader) (*T, error) {
	if err := l.arena.reserve(SizeOf[T]()); err != nil {
		return nil, err
	}
	return new(T), nil
}

// MakeSlice charges n Ts against the arena and returns a slice of n zero Ts,
// or nil when n is zero.
func MakeSlice[T any](l *Loader, n int) ([]T, error) {
	if size := SizeOf[T](); size > 0 && n > math.MaxInt/size {
		return nil, errors.Wrapf(ErrArenaExhausted, "%d elements of %d bytes", n, size)
	}
	if err := l.arena.reserve(n * SizeOf[T]()); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// ChargeArray checks that s holds at least n elements and charges n of them.
func ChargeArray[N constraints.Integer, T any](l *Loader, n N, s []T) error {
	c, err := CountFor(n, len(s))
	if err != nil {
		return err
	}
	ChargeSlice[T](l, c)
	return nil
}

// MakeArray sets *s to n zero elements charged against the arena.
func MakeArray[N constraints.Integer, T any](l *Loader, n N, s *[]T) error {
	c, err := Count(n)
	if err != nil {
		return err
	}
	*s, err = MakeSlice[T](l, c)
	return err
}

// ChargeBuffer checks that b holds at least n bytes and charges n of them.
func ChargeBuffer[N constraints.Integer](l *Loader, n N, b []byte) error {
	c, err := CountFor(n, len(b))
	if err != nil {
		return err
	}
	l.ChargeBytes(c)
	return nil
}

// AllocBuffer sets *b to n bytes of arena memory.
func AllocBuffer[N constraints.Integer](l *Loader, n N, b *[]byte) error {
	c, err := Count(n)
	if err != nil {
		return err
	}
	*b, err = l.Alloc(c)
	return err
}
