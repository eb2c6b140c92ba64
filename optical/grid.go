package optical

import "github.com/lumennet/ofoptical/internal/util"

// Grid enumerates the flex-grid channel descriptors of the frequency range
// [lower, upper] around the given center, one per integer spacing multiplier
// in [floor((lower-center)/spacing), floor((upper-center)/spacing)].
//
// The result is ordered by ascending multiplier, has no duplicates, and uses
// a slot granularity of one spacing unit per channel. An inverted range
// (lower > upper) yields an empty result rather than an error.
//
// Grid is pure and deterministic; callers with fixed bounds may cache the
// result, but recomputation is cheap enough that none of the drivers do.
func Grid(lower, upper, center Frequency, spacing ChannelSpacing) []OchSignal {
	if lower > upper {
		return nil
	}

	step := spacing.Frequency().Hz()
	start := util.FloorDiv(lower.Subtract(center).Hz(), step)
	stop := util.FloorDiv(upper.Subtract(center).Hz(), step)

	signals := make([]OchSignal, 0, stop-start+1)
	for m := start; m <= stop; m++ {
		signals = append(signals, OchSignal{
			GridType:          GridFlex,
			ChannelSpacing:    spacing,
			SpacingMultiplier: int(m),
			SlotGranularity:   1,
		})
	}

	return signals
}
