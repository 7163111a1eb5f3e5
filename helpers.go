package ttex

import "math"

// Rounding rule used throughout the pipeline: half away from zero,
// like C's roundf. Applied after each scale multiplication, never to
// accumulated pen positions (per-step rounding changes the results
// for long strings, so the rule has to stay consistent everywhere).
func roundAwayFromZero(value float64) int {
	return int(math.Round(value))
}
