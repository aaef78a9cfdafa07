// Package cube generates synthetic zero-filled FITS image cubes with a
// valid spectral/polarization/spatial world coordinate system, for use as
// test fixtures in astronomy data-processing pipelines.
package cube

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-fits/fits"
	"github.com/robert-malhotra/go-fits/internal/chunks"
)

// ErrInvalidDimensions is returned for a dimensionality outside {2, 3, 4}.
var ErrInvalidDimensions = errors.New("num dimensions must be 2, 3, or 4")

// Option configures cube generation.
type Option func(*options)

type options struct {
	dir      string
	profile  Profile
	gzip     bool
	checksum bool
	log      *zap.Logger
}

func defaultOptions() *options {
	return &options{
		dir:     ".",
		profile: DefaultProfile(),
		log:     zap.NewNop(),
	}
}

// WithDir sets the output directory (default: current directory).
func WithDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.dir = dir
		}
	}
}

// WithProfile overrides the default cube profile.
func WithProfile(p Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// WithGzip compresses the output, appending a .gz suffix to the file name.
func WithGzip() Option {
	return func(o *options) {
		o.gzip = true
	}
}

// WithChecksum adds CHECKSUM/DATASUM cards to the header. Incompatible
// with WithGzip.
func WithChecksum() Option {
	return func(o *options) {
		o.checksum = true
	}
}

// WithLogger sets the logger for progress messages (default: no-op).
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Generate writes a zero-filled float32 cube of the requested
// dimensionality to large_<N>_array.fits (plus .gz when gzip is enabled)
// and returns the written path. Any existing file at that path is
// overwritten. The data is streamed one channel slice at a time, so peak
// memory stays proportional to a single slice rather than the whole cube.
//
// The only validated input is numDims, which must be 2, 3, or 4; the
// check happens before any file is created or touched.
func Generate(numDims int, opts ...Option) (string, error) {
	if numDims < 2 || numDims > 4 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidDimensions, numDims)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.profile.validate(); err != nil {
		return "", fmt.Errorf("profile: %w", err)
	}

	axes := selectAxes(o.profile, numDims)
	dims := shape(axes)
	chunkDims := chunkShape(axes)

	plan, err := chunks.New(dims, chunkDims)
	if err != nil {
		return "", fmt.Errorf("chunk plan: %w", err)
	}

	name := fmt.Sprintf("large_%d_array.fits", numDims)
	if o.gzip {
		name += ".gz"
	}
	path := filepath.Join(o.dir, name)

	o.log.Info("making cube",
		zap.Int("num_dimensions", numDims),
		zap.Ints("shape", dims),
		zap.Ints("chunk_shape", chunkDims),
		zap.Int("chunks", plan.Count()),
		zap.String("path", path),
	)

	var fileOpts []fits.FileOption
	if o.gzip {
		fileOpts = append(fileOpts, fits.WithGzip())
	}
	f, err := fits.Create(path, fileOpts...)
	if err != nil {
		return "", err
	}

	imageOpts := []fits.ImageOption{fits.WithChunks(chunkDims...)}
	if o.checksum {
		imageOpts = append(imageOpts, fits.WithChecksum())
	}
	img, err := f.CreateImage(dims, fits.Float32, buildHeader(axes, o.profile), imageOpts...)
	if err != nil {
		f.Close()
		return "", fmt.Errorf("creating image: %w", err)
	}

	for i := 0; i < plan.Count(); i++ {
		if err := img.WriteZeroChunk(); err != nil {
			f.Close()
			return "", fmt.Errorf("writing chunk %d: %w", i, err)
		}
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}

	o.log.Info("wrote cube", zap.String("path", path))
	return path, nil
}

// buildHeader synthesizes the WCS header: six cards per axis from the
// highest FITS axis index down to 1, then the fixed instrument and
// coordinate-frame cards. The mandatory SIMPLE/BITPIX/NAXIS cards are
// owned by the image writer, not built here.
func buildHeader(axes []Axis, p Profile) *fits.Header {
	hdr := fits.NewHeader()

	// FITS axis n corresponds to array axis len(axes)-n: NAXIS1 is the
	// fastest-varying (trailing) array axis.
	for n := len(axes); n >= 1; n-- {
		ax := axes[len(axes)-n]
		hdr.Set(fmt.Sprintf("CTYPE%d", n), ax.Type, "")
		hdr.Set(fmt.Sprintf("CRVAL%d", n), ax.RefVal, "")
		hdr.Set(fmt.Sprintf("CDELT%d", n), ax.Step, "")
		hdr.Set(fmt.Sprintf("CRPIX%d", n), ax.RefPix, "")
		hdr.Set(fmt.Sprintf("CUNIT%d", n), ax.Unit, "")
	}

	beamDeg := p.BeamArcsec / 3600
	hdr.Set("BUNIT", "Jy/beam", "brightness unit")
	hdr.Set("BMAJ", beamDeg, "beam major axis [deg]")
	hdr.Set("BMIN", beamDeg, "beam minor axis [deg]")
	hdr.Set("BPA", 0.0, "beam position angle [deg]")
	hdr.Set("EQUINOX", 2000.0, "")
	hdr.Set("RADESYS", "FK5", "")
	hdr.Set("LONPOLE", 180.0, "")
	hdr.Set("LATPOLE", 0.0, "")
	hdr.Set("RESTFRQ", p.RestFreqHz, "rest frequency [Hz]")
	hdr.Set("SPECSYS", "LSRK", "spectral reference frame")
	return hdr
}
