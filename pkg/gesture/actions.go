package gesture

import (
	"fmt"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
	"github.com/devicelab-dev/appium-gestures/pkg/geometry"
	"github.com/devicelab-dev/appium-gestures/pkg/logger"
	"github.com/devicelab-dev/appium-gestures/pkg/viewport"
)

const (
	// multiTapPauseMs separates taps of a double or triple tap. Longer gaps
	// register as distinct single taps.
	multiTapPauseMs = 100
	// DefaultLongPressMs is the hold used when no duration is given.
	DefaultLongPressMs = 500
)

// Actions is the gesture surface bound to one driver session. The viewport
// and scrollable region are captured at construction; call Reinitialize after
// a rotation or window resize.
type Actions struct {
	driver Driver
	cfg    Config
	vp     viewport.Viewport
	region viewport.Region
	seq    *Sequencer
}

// New binds the gesture surface to a driver session. It queries the window
// size once and derives the scrollable region from the configured crop
// factors.
func New(driver Driver, cfg Config) (*Actions, error) {
	a := &Actions{driver: driver, cfg: cfg.withDefaults()}
	if err := a.Reinitialize(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reinitialize re-reads the window size and re-derives the scrollable region.
func (a *Actions) Reinitialize() error {
	w, h, err := a.driver.WindowSize()
	if err != nil {
		return core.ErrViewportUnavailable.WithCause(err)
	}
	vp := viewport.Viewport{Width: w, Height: h}
	if !vp.Valid() {
		return core.ErrViewportUnavailable.
			WithMessage(fmt.Sprintf("driver reported window size %dx%d", w, h))
	}
	region, err := viewport.DeriveRegion(vp, a.cfg.CropFactors)
	if err != nil {
		return err
	}
	a.vp = vp
	a.region = region
	a.seq = NewSequencer(a.driver, vp, a.cfg.SwipePauseMs)
	logger.Debug("viewport %dx%d, scrollable region y=[%d,%d] x=[%d,%d]",
		vp.Width, vp.Height, region.Upper, region.Lower, region.Left, region.Right)
	return nil
}

// Region returns the derived scrollable region.
func (a *Actions) Region() viewport.Region { return a.region }

// Viewport returns the window size captured at the last initialization.
func (a *Actions) Viewport() viewport.Viewport { return a.vp }

// Platform returns the driver session's platform name.
func (a *Actions) Platform() string { return a.driver.Platform() }

// SwipeUp drags content upward one full region extent, revealing what lies
// below the viewport.
func (a *Actions) SwipeUp() error {
	return a.seq.FullSwipe(AxisVertical, a.region.Lower, a.region.Upper, 1)
}

// SwipeDown drags content downward one full region extent.
func (a *Actions) SwipeDown() error {
	return a.seq.FullSwipe(AxisVertical, a.region.Upper, a.region.Lower, 1)
}

// SwipeLeft drags content leftward one full region extent.
func (a *Actions) SwipeLeft() error {
	return a.seq.FullSwipe(AxisHorizontal, a.region.Right, a.region.Left, 1)
}

// SwipeRight drags content rightward one full region extent.
func (a *Actions) SwipeRight() error {
	return a.seq.FullSwipe(AxisHorizontal, a.region.Left, a.region.Right, 1)
}

// SwipeNext advances a horizontal pager one page. Pagers consume the whole
// screen, so this swipes edge to edge across the full viewport rather than
// within the scrollable region.
func (a *Actions) SwipeNext() error {
	return a.seq.FullSwipe(AxisHorizontal, a.vp.Width, 0, 1)
}

// SwipePrevious goes back one page in a horizontal pager, edge to edge.
func (a *Actions) SwipePrevious() error {
	return a.seq.FullSwipe(AxisHorizontal, 0, a.vp.Width, 1)
}

// SwipeOnElement swipes across an element in the given direction, between the
// midpoints of its opposing edges. Used for sliders, carousels and list rows
// with their own scroll container.
func (a *Actions) SwipeOnElement(sel Selector, dir Direction) error {
	bounds, err := a.driver.Locate(sel)
	if err != nil {
		return err
	}
	pts := geometry.Points(bounds)
	var start, end core.Point
	switch dir {
	case DirectionUp:
		start, end = pts.BottomMid, pts.TopMid
	case DirectionDown:
		start, end = pts.TopMid, pts.BottomMid
	case DirectionLeft:
		start, end = pts.RightMid, pts.LeftMid
	case DirectionRight:
		start, end = pts.LeftMid, pts.RightMid
	default:
		return core.ErrInvalidArgument.WithMessage(fmt.Sprintf("invalid swipe direction %q", string(dir)))
	}
	return a.seq.SwipeBetween(start, end)
}

// SwipeIntoView scrolls until the element identified by sel rests inside the
// scrollable region, probing in the given direction. It returns the element's
// final bounds.
func (a *Actions) SwipeIntoView(sel Selector, dir SeekDirection) (core.Bounds, error) {
	engine, err := NewEngine(a.driver, a.seq, a.region, a.cfg, sel, dir)
	if err != nil {
		return core.Bounds{}, err
	}
	return engine.Run()
}

// Tap taps the center of the element identified by sel.
func (a *Actions) Tap(sel Selector) error {
	return a.tapElement(sel, 1)
}

// DoubleTap taps the element center twice in quick succession.
func (a *Actions) DoubleTap(sel Selector) error {
	return a.tapElement(sel, 2)
}

// TripleTap taps the element center three times in quick succession.
func (a *Actions) TripleTap(sel Selector) error {
	return a.tapElement(sel, 3)
}

// TapAt taps an absolute viewport coordinate.
func (a *Actions) TapAt(p core.Point) error {
	return a.performTaps(p, 1)
}

// LongPress presses and holds the element center. A non-positive duration
// falls back to DefaultLongPressMs.
func (a *Actions) LongPress(sel Selector, durationMs int) error {
	if durationMs <= 0 {
		durationMs = DefaultLongPressMs
	}
	bounds, err := a.driver.Locate(sel)
	if err != nil {
		return err
	}
	actions := []PointerAction{
		Move(bounds.Center()),
		Down(),
		Pause(durationMs),
		Up(),
	}
	if err := a.driver.PerformPointer(actions); err != nil {
		return core.ErrGestureFailed.WithCause(err)
	}
	return nil
}

func (a *Actions) tapElement(sel Selector, count int) error {
	bounds, err := a.driver.Locate(sel)
	if err != nil {
		return err
	}
	return a.performTaps(bounds.Center(), count)
}

// performTaps emits count taps as one atomic pointer sequence so the OS sees
// them as a multi-tap rather than separate single taps.
func (a *Actions) performTaps(p core.Point, count int) error {
	actions := make([]PointerAction, 0, count*4)
	for i := 0; i < count; i++ {
		if i > 0 {
			actions = append(actions, Pause(multiTapPauseMs))
		}
		actions = append(actions, Move(p), Down(), Up())
	}
	if err := a.driver.PerformPointer(actions); err != nil {
		return core.ErrGestureFailed.WithCause(err)
	}
	return nil
}
