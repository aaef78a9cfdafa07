// Package binary provides low-level big-endian I/O over the 2880-byte
// FITS block structure.
package binary

import (
	"fmt"
	"io"
)

// BlockSize is the size of a FITS block in bytes. Every FITS structure
// (header or data) occupies a whole number of blocks.
const BlockSize = 2880

// Writer provides sequential big-endian writing with block-boundary
// tracking. FITS files are append-only sequences of blocks, so the writer
// keeps a single running position instead of addressed writes.
type Writer struct {
	w   io.Writer
	pos int64
}

// NewWriter creates a writer over w starting at position 0.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int64 {
	return w.pos
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.Write(data)
	w.pos += int64(n)
	if err != nil {
		return err
	}
	if n != len(data) {
		return io.ErrShortWrite
	}
	return nil
}

// WriteString writes the given string at the current position.
func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}

// BlockRemainder returns the number of bytes left until the next block
// boundary, or 0 when the position is already aligned.
func (w *Writer) BlockRemainder() int {
	rem := int(w.pos % BlockSize)
	if rem == 0 {
		return 0
	}
	return BlockSize - rem
}

// PadBlock writes fill bytes up to the next block boundary. Headers are
// padded with ASCII spaces, data with zero bytes.
func (w *Writer) PadBlock(fill byte) error {
	rem := w.BlockRemainder()
	if rem == 0 {
		return nil
	}
	buf := make([]byte, rem)
	if fill != 0 {
		for i := range buf {
			buf[i] = fill
		}
	}
	if err := w.WriteBytes(buf); err != nil {
		return fmt.Errorf("padding block: %w", err)
	}
	return nil
}
