package gesture

import (
	"math"
)

// SwipePlan is the decomposition of a travel distance into full-region
// swipes plus one partial residual. A plan is consumed once and discarded;
// element bounds are stale after the first swipe executes.
type SwipePlan struct {
	FullSwipes int
	Partial    float64
	Axis       Axis
}

// Decompose converts the distance from boundNear to target into a swipe
// plan, using unitExtent (the scrollable-region extent on the axis) as the
// unit of travel.
//
// Example: distance 1400 over a unit of 800 is 1.75 units, so one full swipe
// and a 600px partial. A target at or before boundNear yields zero full
// swipes, and the partial check still applies to the residual.
func Decompose(target, boundNear, unitExtent int, axis Axis) SwipePlan {
	if unitExtent <= 0 {
		return SwipePlan{Axis: axis}
	}
	distance := float64(target - boundNear)
	units := distance / float64(unitExtent)

	full := int(math.Floor(units))
	if full < 0 {
		full = 0
	}

	partial := float64(unitExtent) * (units - float64(full))
	if partial < 0 {
		partial = 0
	}

	return SwipePlan{FullSwipes: full, Partial: partial, Axis: axis}
}

// NeedsPartial reports whether the residual exceeds the tap-suppression
// threshold. At or below the threshold the partial swipe is skipped: the
// platform would read the short drag as a tap, which is worse than being a
// few pixels off center.
func (p SwipePlan) NeedsPartial(thresholdPx float64) bool {
	return p.Partial > thresholdPx
}
