package fits

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/robert-malhotra/go-fits/internal/binary"
	"github.com/robert-malhotra/go-fits/internal/chunks"
)

// Create creates a new FITS file at the given path, truncating any
// existing file. The returned file accepts exactly one primary-HDU image
// via CreateImage.
func Create(path string, opts ...FileOption) (*File, error) {
	options := defaultFileOptions()
	for _, opt := range opts {
		opt(options)
	}

	osFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	f := &File{
		path:     path,
		file:     osFile,
		writable: true,
	}

	if options.gzip {
		gz := gzip.NewWriter(osFile)
		f.gz = gz
		f.writer = binary.NewWriter(gz)
	} else {
		f.writer = binary.NewWriter(osFile)
	}

	return f, nil
}

// CreateImage starts the primary-HDU image: it writes the header blocks
// immediately and returns a writer that streams the data in chunks. The
// caller's header supplies everything beyond the mandatory cards, which
// are derived from the shape and element type here.
//
// The shape is given leading axis first; NAXIS1 is the trailing (fastest
// varying) axis, per the FITS axis-ordering convention.
func (f *File) CreateImage(shape []int, bp Bitpix, hdr *Header, opts ...ImageOption) (*ImageWriter, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if !f.writable {
		return nil, fmt.Errorf("file is not writable")
	}
	if f.img != nil {
		return nil, fmt.Errorf("image already created")
	}
	if !bp.Valid() {
		return nil, fmt.Errorf("invalid bitpix %d", int(bp))
	}
	if len(shape) == 0 || len(shape) > MaxAxes {
		return nil, fmt.Errorf("%w: rank %d", ErrBadShape, len(shape))
	}
	for i, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("%w: axis %d has length %d", ErrBadShape, i, dim)
		}
	}

	options := defaultImageOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.checksum && f.gz != nil {
		return nil, ErrChecksumStream
	}

	var plan *chunks.Plan
	if options.chunks != nil {
		var err error
		plan, err = chunks.New(shape, options.chunks)
		if err != nil {
			return nil, fmt.Errorf("chunk plan: %w", err)
		}
	}

	full, err := buildImageHeader(shape, bp, hdr, options.checksum)
	if err != nil {
		return nil, err
	}

	encoded, err := full.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}
	if err := f.writer.WriteBytes(encoded); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	payload := int64(bp.Size())
	for _, dim := range shape {
		payload *= int64(dim)
	}

	f.img = &ImageWriter{
		file:      f,
		hdr:       full,
		headerLen: int64(len(encoded)),
		plan:      plan,
		elemSize:  bp.Size(),
		payload:   payload,
		checksum:  options.checksum,
	}
	f.shape = append([]int(nil), shape...)
	f.bitpix = bp
	return f.img, nil
}

// buildImageHeader assembles the full primary header: mandatory cards
// first, then the caller's cards, then checksum placeholders.
func buildImageHeader(shape []int, bp Bitpix, hdr *Header, checksum bool) (*Header, error) {
	full := NewHeader()
	full.Set("SIMPLE", true, "conforms to FITS standard")
	full.Set("BITPIX", int64(bp), "array data type")
	full.Set("NAXIS", int64(len(shape)), "number of array dimensions")
	for j := 1; j <= len(shape); j++ {
		full.Set(fmt.Sprintf("NAXIS%d", j), int64(shape[len(shape)-j]), "")
	}

	if hdr != nil {
		for _, card := range hdr.Cards() {
			if card.Value == nil {
				full.cards = append(full.cards, card)
				continue
			}
			if reservedKeyword(card.Keyword) {
				return nil, fmt.Errorf("%w: %s", ErrReservedCard, card.Keyword)
			}
			full.Set(card.Keyword, card.Value, card.Comment)
		}
	}

	if checksum {
		full.Set("DATASUM", "0", "data unit checksum")
		full.Set("CHECKSUM", checksumPlaceholder, "HDU checksum")
	}
	return full, nil
}

// reservedKeyword reports whether the keyword is owned by the writer
// rather than the caller.
func reservedKeyword(kw string) bool {
	switch kw {
	case "SIMPLE", "BITPIX", "NAXIS", "END", "CHECKSUM", "DATASUM":
		return true
	}
	if len(kw) > 5 && kw[:5] == "NAXIS" {
		for i := 5; i < len(kw); i++ {
			if kw[i] < '0' || kw[i] > '9' {
				return false
			}
		}
		return true
	}
	return false
}
