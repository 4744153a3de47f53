package gesture

import (
	"math"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
	"github.com/devicelab-dev/appium-gestures/pkg/viewport"
)

// swipeTravelMs is how long the pointer spends moving between the swipe
// endpoints. Near-instant moves register as flicks on both platforms.
const swipeTravelMs = 250

// Sequencer emits the ordered pointer-down/move/up primitives for swipes.
// It has no retry logic: a driver failure propagates immediately, since the
// finger position may be inconsistent after a partial failure.
type Sequencer struct {
	perf    Performer
	vp      viewport.Viewport
	pauseMs int
}

// NewSequencer creates a sequencer dispatching to perf. The viewport is used
// only to center swipes on the perpendicular axis.
func NewSequencer(perf Performer, vp viewport.Viewport, pauseMs int) *Sequencer {
	if pauseMs <= 0 {
		pauseMs = DefaultSwipePauseMs
	}
	return &Sequencer{perf: perf, vp: vp, pauseMs: pauseMs}
}

// FullSwipe performs times full swipes between the from and to bounds on the
// given axis. Each swipe is its own atomic primitive sequence; pauses between
// them keep the OS from chaining inertia across swipes.
func (s *Sequencer) FullSwipe(axis Axis, from, to int, times int) error {
	for i := 0; i < times; i++ {
		if err := s.swipe(s.axisPoint(axis, from), s.axisPoint(axis, to)); err != nil {
			return err
		}
	}
	return nil
}

// PartialSwipe performs one swipe of exactly distance pixels from the from
// bound toward the to bound on the given axis. Callers enforce the
// tap-suppression threshold before invoking it.
func (s *Sequencer) PartialSwipe(axis Axis, from, to int, distance float64) error {
	step := int(math.Round(distance))
	if to < from {
		step = -step
	}
	return s.swipe(s.axisPoint(axis, from), s.axisPoint(axis, from+step))
}

// SwipeBetween performs one swipe between two arbitrary points, used for
// on-element swipes where the endpoints come from element anchors.
func (s *Sequencer) SwipeBetween(start, end core.Point) error {
	return s.swipe(start, end)
}

// axisPoint places coordinate v on the axis, centered on the other axis.
func (s *Sequencer) axisPoint(axis Axis, v int) core.Point {
	if axis == AxisHorizontal {
		return core.Point{X: v, Y: s.vp.MidY()}
	}
	return core.Point{X: s.vp.MidX(), Y: v}
}

// swipe dispatches one atomic down-move-up sequence.
func (s *Sequencer) swipe(start, end core.Point) error {
	actions := []PointerAction{
		Move(start),
		Down(),
		MoveOver(end, swipeTravelMs),
		Pause(s.pauseMs),
		Up(),
	}
	if err := s.perf.PerformPointer(actions); err != nil {
		return core.ErrGestureFailed.WithCause(err)
	}
	return nil
}
