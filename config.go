package ferry

import "github.com/cockroachdb/errors"

const (
	// DefaultBlockSize is the block size used when Config.BlockSize is zero.
	DefaultBlockSize = 4096
	// DefaultAlign is the arena granularity used when Config.Align is zero.
	DefaultAlign = 2
)

// Config holds the engine settings for a session. Zero fields take the
// defaults, so the zero Config is ready to use. Encode and decode of the same
// value must agree on Align, since the heap budget is counted in padded bytes.
type Config struct {
	// BlockSize is the size requested from a pull BlockFunc. Any value from 1
	// up is legal; the engine never assumes blocks have this exact length.
	BlockSize int
	// Align is the granularity every arena allocation is rounded up to.
	Align int
}

// DefaultConfig returns a Config with a 4096 byte block size and 2 byte
// alignment.
func DefaultConfig() Config {
	return Config{BlockSize: DefaultBlockSize, Align: DefaultAlign}
}

func (c Config) withDefaults() Config {
	if c.BlockSize == 0 {
		c.BlockSize = DefaultBlockSize
	}
	if c.Align == 0 {
		c.Align = DefaultAlign
	}
	return c
}

// Validate reports settings the engine cannot run with.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.BlockSize < 1 {
		return errors.Newf("ferry: block size must be positive, got %d", c.BlockSize)
	}
	if c.Align < 1 {
		return errors.Newf("ferry: alignment must be positive, got %d", c.Align)
	}
	return nil
}

// Pad rounds n up to a multiple of the configured alignment.
func (c Config) Pad(n int) int {
	return pad(n, c.withDefaults().Align)
}

func pad(n, align int) int {
	return n + (align-n%align)%align
}
