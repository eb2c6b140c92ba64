package driver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumennet/ofoptical/optical"
)

// Profile describes the spectral capabilities of one hardware model: the
// usable frequency range, the grid reference center and the channel spacing.
// The driver derives the advertised channel grid from it.
type Profile struct {
	Name       string
	LowerBound optical.Frequency
	UpperBound optical.Frequency
	Center     optical.Frequency
	Spacing    optical.ChannelSpacing
}

// S160Profile returns the default profile for the Calient S160.
// The S160 data sheet gives a wavelength range of 1260-1630 nm, covered here
// as U band minimum up to O band maximum at 12.5 GHz spacing.
func S160Profile() Profile {
	return Profile{
		Name:       "calient-s160",
		LowerBound: optical.UBandMin,
		UpperBound: optical.OBandMax,
		Center:     optical.CenterFrequency,
		Spacing:    optical.Spacing12p5GHz,
	}
}

// Grid enumerates the channel descriptors of the profile, ordered by
// ascending spacing multiplier. An inverted range yields an empty grid.
func (p Profile) Grid() []optical.OchSignal {
	return optical.Grid(p.LowerBound, p.UpperBound, p.Center, p.Spacing)
}

// profileYAML is the on-disk representation of a Profile. Frequencies are
// given in THz, the spacing in GHz; a zero center defaults to the ITU grid
// center.
type profileYAML struct {
	Name          string  `yaml:"name"`
	LowerBoundTHz float64 `yaml:"lower_bound_thz"`
	UpperBoundTHz float64 `yaml:"upper_bound_thz"`
	CenterTHz     float64 `yaml:"center_thz"`
	SpacingGHz    float64 `yaml:"spacing_ghz"`
}

// ParseProfile decodes a YAML hardware profile.
//
// The spacing must be one of the grid spacings the driver understands
// (100, 50, 25, 12.5 or 6.25 GHz). A lower bound above the upper bound is
// accepted and simply yields an empty grid.
func ParseProfile(data []byte) (Profile, error) {
	var raw profileYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	if raw.Name == "" {
		return Profile{}, fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}

	spacing, err := spacingFromGHz(raw.SpacingGHz)
	if err != nil {
		return Profile{}, err
	}

	center := optical.THz(raw.CenterTHz)
	if raw.CenterTHz == 0 {
		center = optical.CenterFrequency
	}

	return Profile{
		Name:       raw.Name,
		LowerBound: optical.THz(raw.LowerBoundTHz),
		UpperBound: optical.THz(raw.UpperBoundTHz),
		Center:     center,
		Spacing:    spacing,
	}, nil
}

// LoadProfile reads and decodes a YAML hardware profile file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	return ParseProfile(data)
}

func spacingFromGHz(ghz float64) (optical.ChannelSpacing, error) {
	switch ghz {
	case 100:
		return optical.Spacing100GHz, nil
	case 50:
		return optical.Spacing50GHz, nil
	case 25:
		return optical.Spacing25GHz, nil
	case 12.5:
		return optical.Spacing12p5GHz, nil
	case 6.25:
		return optical.Spacing6p25GHz, nil
	default:
		return 0, fmt.Errorf("%w: unsupported channel spacing %gGHz", ErrInvalidProfile, ghz)
	}
}
