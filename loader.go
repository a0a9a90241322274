package ferry

// Loader is the state of one encode or decode session: the current block and
// cursor, the block callback, the arena (decode) or heap budget (encode) and
// the pretty-printer state used by the text routines. Generated code threads
// a single Loader through every nested call; it is not safe for concurrent
// use and must not be reused once the session returns.
type Loader struct {
	cfg    Config
	fn     BlockFunc
	block  []byte
	offset int

	arena Arena
	heap  int

	last   byte
	indent int

	scratch [64]byte
}

// NewEncodeLoader starts an encode session, asking push for the first block.
func NewEncodeLoader(cfg Config, push BlockFunc) (*Loader, error) {
	l := &Loader{}
	if err := l.startEncode(cfg, push); err != nil {
		return nil, err
	}
	return l, nil
}

// NewDecodeLoader starts a decode session over heap, pulling the first block.
func NewDecodeLoader(cfg Config, pull BlockFunc, heap []byte) (*Loader, error) {
	l := &Loader{}
	if err := l.startDecode(cfg, pull, heap); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loader) reset(cfg Config, fn BlockFunc) error {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	*l = Loader{cfg: cfg, fn: fn}
	return nil
}

func (l *Loader) startEncode(cfg Config, push BlockFunc) error {
	if err := l.reset(cfg, push); err != nil {
		return err
	}
	return l.push()
}

func (l *Loader) startDecode(cfg Config, pull BlockFunc, heap []byte) error {
	if err := l.reset(cfg, pull); err != nil {
		return err
	}
	l.arena = newArena(l.cfg, heap)
	return l.pull()
}

func (l *Loader) release() {
	*l = Loader{}
	loaderPool.Put(l)
}

// Config returns the settings the session runs with, defaults applied.
func (l *Loader) Config() Config {
	return l.cfg
}

// HeapBudget reports the arena bytes charged so far by an encode session.
func (l *Loader) HeapBudget() int {
	return l.heap
}

// Arena exposes the arena of a decode session.
func (l *Loader) Arena() *Arena {
	return &l.arena
}

// Finish flushes the partial last block of an encode session and returns the
// heap budget. The block push returns for the flush is ignored.
func (l *Loader) Finish() (int, error) {
	if _, err := l.fn(l.offset); err != nil {
		return 0, callbackError(err, "flush")
	}
	l.block, l.offset = nil, 0
	return l.heap, nil
}

// ResetText clears the pretty-printer state.
func (l *Loader) ResetText() {
	l.last, l.indent = 0, 0
}

// push hands the filled part of the current block over and takes the next.
func (l *Loader) push() error {
	b, err := l.fn(l.offset)
	if err != nil || len(b) == 0 {
		return callbackError(err, "push")
	}
	l.block, l.offset = b, 0
	return nil
}

func (l *Loader) pull() error {
	b, err := l.fn(l.cfg.BlockSize)
	if err != nil || len(b) == 0 {
		return callbackError(err, "pull")
	}
	l.block, l.offset = b, 0
	return nil
}

func (l *Loader) writeByte(c byte) error {
	if l.offset >= len(l.block) {
		if err := l.push(); err != nil {
			return err
		}
	}
	l.block[l.offset] = c
	l.offset++
	return nil
}

func (l *Loader) readByte() (byte, error) {
	if l.offset >= len(l.block) {
		if err := l.pull(); err != nil {
			return 0, err
		}
	}
	c := l.block[l.offset]
	l.offset++
	return c, nil
}

func (l *Loader) peekByte() (byte, error) {
	if l.offset >= len(l.block) {
		if err := l.pull(); err != nil {
			return 0, err
		}
	}
	return l.block[l.offset], nil
}

// write copies p into as many blocks as it takes.
func (l *Loader) write(p []byte) error {
	for len(p) > 0 {
		if l.offset >= len(l.block) {
			if err := l.push(); err != nil {
				return err
			}
		}
		n := copy(l.block[l.offset:], p)
		l.offset += n
		p = p[n:]
	}
	return nil
}

func (l *Loader) writeString(s string) error {
	for len(s) > 0 {
		if l.offset >= len(l.block) {
			if err := l.push(); err != nil {
				return err
			}
		}
		n := copy(l.block[l.offset:], s)
		l.offset += n
		s = s[n:]
	}
	return nil
}

// read fills p from as many blocks as it takes.
func (l *Loader) read(p []byte) error {
	for len(p) > 0 {
		if l.offset >= len(l.block) {
			if err := l.pull(); err != nil {
				return err
			}
		}
		n := copy(p, l.block[l.offset:])
		l.offset += n
		p = p[n:]
	}
	return nil
}
