package ferry

import "github.com/cockroachdb/errors"

// Arena is a bump allocator over a caller-owned region. Allocations are cut
// from the high end and move downward; nothing is freed individually, the
// caller releases the whole region once the decoded values are dropped.
type Arena struct {
	buf   []byte
	top   int
	align int
}

// NewArena returns an arena over buf using the alignment in cfg.
func NewArena(cfg Config, buf []byte) *Arena {
	a := newArena(cfg.withDefaults(), buf)
	return &a
}

func newArena(cfg Config, buf []byte) Arena {
	return Arena{buf: buf, top: len(buf), align: cfg.Align}
}

// Alloc returns n bytes backed by at least Pad(n) bytes of the arena. It
// fails with ErrArenaExhausted and leaves the arena untouched when the
// padded size does not fit. Alloc(0) returns nil.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if err := a.reserve(n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return a.buf[a.top : a.top+n : a.top+n], nil
}

// Remaining reports the bytes still available.
func (a *Arena) Remaining() int {
	return a.top
}

// Used reports the bytes handed out so far.
func (a *Arena) Used() int {
	return len(a.buf) - a.top
}

// reserve moves the high-water mark down by the padded size of n.
func (a *Arena) reserve(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrSize, "allocation of %d bytes", n)
	}
	p := pad(n, a.align)
	if p > a.top {
		return errors.Wrapf(ErrArenaExhausted, "need %d bytes, %d left", p, a.top)
	}
	a.top -= p
	return nil
}

// collect starts gathering a byte string whose length is not known up front.
func (a *Arena) collect() collector {
	return collector{a: a, first: a.top - a.align, pos: a.align}
}

// collector takes one alignment unit at a time from the arena as bytes
// arrive. Every new chunk sits below the previous one, so the chunks hold the
// bytes in reverse chunk order until finish swaps them end for end.
type collector struct {
	a     *Arena
	first int // offset of the first chunk
	cur   int // offset of the latest chunk
	pos   int // bytes used in the latest chunk
	n     int
}

func (c *collector) WriteByte(b byte) error {
	if c.pos >= c.a.align {
		if err := c.a.reserve(c.a.align); err != nil {
			return err
		}
		c.cur = c.a.top
		c.pos = 0
	}
	c.a.buf[c.cur+c.pos] = b
	c.pos++
	c.n++
	return nil
}

// finish NUL-terminates the collected bytes, restores arrival order and
// returns them without the terminator.
func (c *collector) finish() ([]byte, error) {
	if err := c.WriteByte(0); err != nil {
		return nil, err
	}

	buf, align := c.a.buf, c.a.align
	for lo, hi := c.cur, c.first; lo < hi; lo, hi = lo+align, hi-align {
		for i := 0; i < align; i++ {
			buf[lo+i], buf[hi+i] = buf[hi+i], buf[lo+i]
		}
	}

	n := c.n - 1
	return buf[c.cur : c.cur+n : c.cur+n], nil
}
