// Package fits provides a pure Go implementation for writing and reading
// FITS primary-HDU images. Image data is streamed in chunks so that large
// cubes never have to be materialized in memory at once.
package fits

import "errors"

// Common errors
var (
	ErrNotFITS        = errors.New("not a FITS file")
	ErrClosed         = errors.New("file is closed")
	ErrBadKeyword     = errors.New("invalid header keyword")
	ErrReservedCard   = errors.New("reserved header keyword")
	ErrBadShape       = errors.New("invalid image shape")
	ErrChunkSize      = errors.New("chunk size mismatch")
	ErrOverflow       = errors.New("write past declared image size")
	ErrShortImage     = errors.New("image closed before all data written")
	ErrChecksumStream = errors.New("checksums require a seekable output")
)

// MaxAxes is the maximum number of image axes permitted by the FITS
// standard (NAXIS <= 999).
const MaxAxes = 999
