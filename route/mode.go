package route

import (
	"fmt"
	"strings"
)

// Mode selects the cost function applied to the length of each traversed
// link before the costs are summed.
type Mode int8

const (
	// Distance uses the link's length in kilometers as is.
	Distance Mode = iota

	// Time converts the link's length into a travel time in seconds: a fixed
	// dwell time at each station plus a per-kilometer running time.
	Time
)

const (
	// TimeBase is the dwell and transfer time, in seconds, paid on every
	// link in Time mode.
	TimeBase = 120

	// TimePerKm is the running time, in seconds, per kilometer in Time mode.
	TimePerKm = 40
)

// EdgeCost returns the cost of traversing a link of the given length.
func (m Mode) EdgeCost(km int) int {
	switch m {
	case Time:
		return TimeBase + TimePerKm*km
	default:
		return km
	}
}

// String returns "distance" or "time".
func (m Mode) String() string {
	switch m {
	case Distance:
		return "distance"
	case Time:
		return "time"
	default:
		return fmt.Sprintf("Mode(%d)", int8(m))
	}
}

// ParseMode returns the mode named s (case insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance", "dist", "km":
		return Distance, nil
	case "time", "min":
		return Time, nil
	default:
		return Distance, fmt.Errorf("unknown mode %q", s)
	}
}

// Minutes converts a Time mode cost in seconds into whole minutes, rounding
// up.
func Minutes(seconds int) int {
	return (seconds + 59) / 60
}
