package optical

import (
	"fmt"
	"math"
)

// Frequency is an optical frequency in Hz.
type Frequency int64

// Hz returns a frequency of hz Hz.
func Hz(hz int64) Frequency {
	return Frequency(hz)
}

// MHz returns a frequency of mhz MHz, rounded to the nearest Hz.
func MHz(mhz float64) Frequency {
	return Frequency(math.Round(mhz * 1e6))
}

// GHz returns a frequency of ghz GHz, rounded to the nearest Hz.
func GHz(ghz float64) Frequency {
	return Frequency(math.Round(ghz * 1e9))
}

// THz returns a frequency of thz THz, rounded to the nearest Hz.
func THz(thz float64) Frequency {
	return Frequency(math.Round(thz * 1e12))
}

// Hz returns the frequency in Hz.
func (f Frequency) Hz() int64 {
	return int64(f)
}

// Add returns the sum of f and other.
func (f Frequency) Add(other Frequency) Frequency {
	return f + other
}

// Subtract returns the difference of f and other.
func (f Frequency) Subtract(other Frequency) Frequency {
	return f - other
}

// String renders the frequency with the largest unit that keeps the value
// above one.
func (f Frequency) String() string {
	abs := f
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%gTHz", float64(f)/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%gGHz", float64(f)/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%gMHz", float64(f)/1e6)
	default:
		return fmt.Sprintf("%dHz", int64(f))
	}
}
