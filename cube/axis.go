package cube

// Axis carries the per-axis world-coordinate metadata written to the
// header: length, WCS type tag, reference value, step, reference pixel,
// and unit. The reference pixel is 1-based per the FITS convention.
type Axis struct {
	Len    int
	Type   string
	RefVal float64
	Step   float64
	RefPix float64
	Unit   string
}

// catalog returns the full axis catalog for a profile, leading axis first:
// frequency, stokes, declination, right ascension. Spatial axes use the
// SIN projection and put the reference pixel exactly at the center of the
// axis (pixel npix/2+1).
func catalog(p Profile) [4]Axis {
	return [4]Axis{
		{
			Len:    p.Channels,
			Type:   "FREQ",
			RefVal: p.RestFreqHz,
			Step:   p.FreqStepHz,
			RefPix: 1,
			Unit:   "Hz",
		},
		{
			Len:    p.Stokes,
			Type:   "STOKES",
			RefVal: 1,
			Step:   1,
			RefPix: 1,
			Unit:   "",
		},
		{
			Len:    p.Pixels,
			Type:   "DEC--SIN",
			RefVal: 0,
			Step:   -1.0 / 3600,
			RefPix: float64(p.Pixels/2 + 1),
			Unit:   "deg",
		},
		{
			Len:    p.Pixels,
			Type:   "RA---SIN",
			RefVal: 0,
			Step:   1.0 / 3600,
			RefPix: float64(p.Pixels/2 + 1),
			Unit:   "deg",
		},
	}
}

// selectAxes picks the axes for the requested dimensionality, leading axis
// first. The stokes entry is skipped below 4 dimensions so that 2D and 3D
// cubes keep their spatial axes instead of picking up the polarization
// axis by position: 2D is (freq, dec), 3D is (freq, dec, ra), 4D is
// (freq, stokes, dec, ra).
func selectAxes(p Profile, numDims int) []Axis {
	all := catalog(p)
	axes := make([]Axis, 0, numDims)
	for i := 0; i < numDims; i++ {
		j := i
		if numDims < len(all) && i >= 1 {
			j++
		}
		axes = append(axes, all[j])
	}
	return axes
}

// shape returns the array shape for a set of axes, leading axis first.
func shape(axes []Axis) []int {
	dims := make([]int, len(axes))
	for i, ax := range axes {
		dims[i] = ax.Len
	}
	return dims
}

// chunkShape returns the streaming chunk shape: the trailing spatial axes
// kept whole, one element along every axis before them. For the 3D cube
// this is (1, npix, npix): one frequency channel per chunk.
func chunkShape(axes []Axis) []int {
	whole := 2
	if len(axes) == 2 {
		whole = 1
	}
	dims := make([]int, len(axes))
	for i, ax := range axes {
		if i < len(axes)-whole {
			dims[i] = 1
		} else {
			dims[i] = ax.Len
		}
	}
	return dims
}
