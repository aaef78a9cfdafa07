package binary

import (
	"errors"
	"io"
)

// ErrShortBlock is returned when a full FITS block cannot be read.
var ErrShortBlock = errors.New("short read: incomplete FITS block")

// Reader provides positioned reads over a FITS file. The underlying
// io.ReaderAt is shared, so independent readers can be created with At
// without disturbing each other.
type Reader struct {
	r   io.ReaderAt
	pos int64
}

// NewReader creates a reader over r starting at position 0.
func NewReader(r io.ReaderAt) *Reader {
	return &Reader{r: r}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying io.ReaderAt but has independent position.
func (r *Reader) At(offset int64) *Reader {
	return &Reader{r: r.r, pos: offset}
}

// Pos returns the current read position.
func (r *Reader) Pos() int64 {
	return r.pos
}

// ReadBytes reads exactly n bytes from the current position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := r.r.ReadAt(buf, r.pos); err != nil {
		return nil, err
	}
	r.pos += int64(n)
	return buf, nil
}

// ReadBlock reads one full 2880-byte block from the current position.
func (r *Reader) ReadBlock() ([]byte, error) {
	buf, err := r.ReadBytes(BlockSize)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortBlock
		}
		return nil, err
	}
	return buf, nil
}
