package ferry

import "github.com/cockroachdb/errors"

var (
	// ErrCallback marks a session aborted because a BlockFunc returned an
	// error or an empty block.
	ErrCallback = errors.New("ferry: block callback failed")

	// ErrArenaExhausted marks a decode allocation larger than what is left of
	// the arena. It means the arena is smaller than the budget reported by the
	// matching encode, or that encoder and decoder disagree on field order.
	ErrArenaExhausted = errors.New("ferry: arena exhausted")

	// ErrTextFormat marks malformed text input.
	ErrTextFormat = errors.New("ferry: malformed text")

	// ErrSize marks a size field that is negative, too large, or larger than
	// the slice it describes.
	ErrSize = errors.New("ferry: invalid size")
)

func callbackError(err error, op string) error {
	if err == nil {
		return errors.Wrapf(ErrCallback, "%s returned an empty block", op)
	}
	return errors.Mark(errors.Wrapf(err, "ferry: %s", op), ErrCallback)
}

func textError(format string, args ...any) error {
	return errors.Wrapf(ErrTextFormat, format, args...)
}
