package cube

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds the magnitudes behind the axis catalog. The default
// profile reproduces the reference fixture exactly; a YAML profile can
// scale the cube up or down for other fixtures.
type Profile struct {
	Channels   int     `yaml:"channels"`
	Stokes     int     `yaml:"stokes"`
	Pixels     int     `yaml:"pixels"`
	BeamArcsec float64 `yaml:"beam_arcsec"`
	RestFreqHz float64 `yaml:"rest_freq_hz"`
	FreqStepHz float64 `yaml:"freq_step_hz"`
}

// DefaultProfile returns the reference cube: 288 channels of 1 MHz around
// 1.4 GHz, 3 stokes planes, 1024x1024 pixel images with a 10 arcsecond
// beam.
func DefaultProfile() Profile {
	return Profile{
		Channels:   288,
		Stokes:     3,
		Pixels:     1024,
		BeamArcsec: 10,
		RestFreqHz: 1.4e9,
		FreqStepHz: 1e6,
	}
}

// LoadProfile reads a YAML profile. Omitted fields keep their defaults,
// so a profile file only needs the values it changes.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

func (p Profile) validate() error {
	if p.Channels <= 0 {
		return fmt.Errorf("channels must be positive, got %d", p.Channels)
	}
	if p.Stokes <= 0 {
		return fmt.Errorf("stokes must be positive, got %d", p.Stokes)
	}
	if p.Pixels <= 0 {
		return fmt.Errorf("pixels must be positive, got %d", p.Pixels)
	}
	if p.BeamArcsec <= 0 {
		return fmt.Errorf("beam_arcsec must be positive, got %v", p.BeamArcsec)
	}
	if p.RestFreqHz <= 0 {
		return fmt.Errorf("rest_freq_hz must be positive, got %v", p.RestFreqHz)
	}
	if p.FreqStepHz == 0 {
		return fmt.Errorf("freq_step_hz must be non-zero")
	}
	return nil
}
