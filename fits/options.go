package fits

// FileOption configures file creation options.
type FileOption func(*fileOptions)

type fileOptions struct {
	gzip bool
}

func defaultFileOptions() *fileOptions {
	return &fileOptions{}
}

// WithGzip compresses the output through a gzip stream. The caller chooses
// the file name (conventionally a .fits.gz suffix). Gzip output is not
// seekable, so it cannot be combined with WithChecksum.
func WithGzip() FileOption {
	return func(o *fileOptions) {
		o.gzip = true
	}
}

// ImageOption configures image creation options.
type ImageOption func(*imageOptions)

type imageOptions struct {
	chunks   []int
	checksum bool
}

func defaultImageOptions() *imageOptions {
	return &imageOptions{}
}

// WithChunks sets the chunk dimensions for streamed writing. Chunk
// dimensions must match the image rank and divide each axis evenly; every
// WriteChunk call must then supply exactly one chunk of data.
func WithChunks(dims ...int) ImageOption {
	return func(o *imageOptions) {
		o.chunks = dims
	}
}

// WithChecksum adds CHECKSUM and DATASUM cards per the FITS checksum
// convention. The cards are patched into the header when the image is
// closed, so the output must be seekable.
func WithChecksum() ImageOption {
	return func(o *imageOptions) {
		o.checksum = true
	}
}
