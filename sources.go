package ferry

import "io"

// BytesSource serves b in blocks of at most the requested size and fails with
// io.EOF once b is used up.
func BytesSource(b []byte) BlockFunc {
	return func(n int) ([]byte, error) {
		if len(b) == 0 {
			return nil, io.EOF
		}
		if n < 1 || n > len(b) {
			n = len(b)
		}
		blk := b[:n:n]
		b = b[n:]
		return blk, nil
	}
}

// ReaderSource pulls blocks from r. A block may be shorter than requested.
func ReaderSource(r io.Reader) BlockFunc {
	var buf []byte
	return func(n int) ([]byte, error) {
		if n < 1 {
			n = DefaultBlockSize
		}
		if cap(buf) < n {
			buf = make([]byte, n)
		}
		m, err := io.ReadAtLeast(r, buf[:n], 1)
		if m == 0 {
			return nil, err
		}
		return buf[:m], nil
	}
}

// SliceSink appends everything pushed to *dst, handing out blocks of size
// bytes.
func SliceSink(dst *[]byte, size int) BlockFunc {
	if size < 1 {
		size = DefaultBlockSize
	}
	buf := make([]byte, size)
	return func(n int) ([]byte, error) {
		*dst = append(*dst, buf[:n]...)
		return buf, nil
	}
}

// WriterSink writes everything pushed to w, handing out blocks of size bytes.
func WriterSink(w io.Writer, size int) BlockFunc {
	if size < 1 {
		size = DefaultBlockSize
	}
	buf := make([]byte, size)
	return func(n int) ([]byte, error) {
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return nil, err
			}
		}
		return buf, nil
	}
}
