package gen

import (
	"bytes"
	"fmt"
)

// Buffer is a byte buffer with an emit helper for generated source.
type Buffer struct {
	bytes.Buffer
}

func (b *Buffer) emit(format string, a ...any) {
	fmt.Fprintf(b, format+"\n", a...)
}
