package fits

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-fits/internal/binary"
)

// File represents an open FITS file. Files are opened either for reading
// (Open) or for writing a single primary-HDU image (Create); the two modes
// are not mixed.
type File struct {
	path   string
	file   *os.File
	closed bool

	// Read support fields
	reader *binary.Reader
	hdr    *Header
	shape  []int
	bitpix Bitpix

	// Write support fields
	writable bool
	writer   *binary.Writer
	gz       gzipCloser
	img      *ImageWriter
}

// gzipCloser is the part of the gzip writer the file needs at close time.
type gzipCloser interface {
	Close() error
}

// Open opens a FITS file and parses the primary HDU's header.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	reader := binary.NewReader(f)
	hdr, err := readHeader(reader)
	if err != nil {
		f.Close()
		return nil, err
	}

	bp, shape, err := imageGeometry(hdr)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading primary HDU geometry: %w", err)
	}

	return &File{
		path:   path,
		file:   f,
		reader: reader,
		hdr:    hdr,
		shape:  shape,
		bitpix: bp,
	}, nil
}

// Close closes the file, finalizing any image still being written.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if f.writable {
		if err := f.closeWritable(); err != nil {
			f.file.Close()
			return err
		}
	}

	return f.file.Close()
}

// closeWritable finalizes an open image writer, flushes the gzip stream if
// any, and syncs the file.
func (f *File) closeWritable() error {
	if f.img != nil && !f.img.closed {
		if err := f.img.Close(); err != nil {
			return err
		}
	}
	if f.gz != nil {
		if err := f.gz.Close(); err != nil {
			return fmt.Errorf("closing gzip stream: %w", err)
		}
	}
	return f.file.Sync()
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Header returns the primary HDU's header. Nil for files opened with
// Create before an image is created.
func (f *File) Header() *Header {
	if f.writable {
		if f.img == nil {
			return nil
		}
		return f.img.hdr
	}
	return f.hdr
}

// Shape returns the image shape, leading axis first (the reverse of the
// NAXISn ordering, matching row-major data layout).
func (f *File) Shape() []int {
	return append([]int(nil), f.shape...)
}

// Bitpix returns the image element type.
func (f *File) Bitpix() Bitpix {
	return f.bitpix
}

// DataSize returns the image payload size in bytes, excluding block padding.
func (f *File) DataSize() int64 {
	if len(f.shape) == 0 {
		return 0
	}
	n := int64(f.bitpix.Size())
	for _, d := range f.shape {
		n *= int64(d)
	}
	return n
}

// imageGeometry extracts BITPIX and the shape from a parsed header.
func imageGeometry(hdr *Header) (Bitpix, []int, error) {
	simple, ok := hdr.Get("SIMPLE")
	if !ok {
		return 0, nil, ErrNotFITS
	}
	if conforms, _ := simple.Value.(bool); !conforms {
		return 0, nil, fmt.Errorf("%w: SIMPLE is not T", ErrNotFITS)
	}

	bpVal, err := hdr.Int("BITPIX")
	if err != nil {
		return 0, nil, err
	}
	bp := Bitpix(bpVal)
	if !bp.Valid() {
		return 0, nil, fmt.Errorf("invalid BITPIX %d", bpVal)
	}

	naxis, err := hdr.Int("NAXIS")
	if err != nil {
		return 0, nil, err
	}
	if naxis < 0 || naxis > MaxAxes {
		return 0, nil, fmt.Errorf("invalid NAXIS %d", naxis)
	}

	// NAXIS1 is the fastest-varying axis, so it lands last in the shape.
	shape := make([]int, naxis)
	for j := int64(1); j <= naxis; j++ {
		dim, err := hdr.Int(fmt.Sprintf("NAXIS%d", j))
		if err != nil {
			return 0, nil, err
		}
		if dim < 0 {
			return 0, nil, fmt.Errorf("invalid NAXIS%d %d", j, dim)
		}
		shape[naxis-j] = int(dim)
	}
	return bp, shape, nil
}
