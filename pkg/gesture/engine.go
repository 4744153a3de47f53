package gesture

import (
	"fmt"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
	"github.com/devicelab-dev/appium-gestures/pkg/logger"
	"github.com/devicelab-dev/appium-gestures/pkg/viewport"
)

// EngineState is the scroll-into-view state machine position.
type EngineState int

const (
	// StateSeeking probes for the element with full-region swipes.
	StateSeeking EngineState = iota
	// StateLocated has fresh bounds and computes the centering plan.
	StateLocated
	// StateCentering executes the planned swipes.
	StateCentering
	// StateDone means the element rests inside the scrollable region.
	StateDone
	// StateFailed means probing was exhausted without a hit.
	StateFailed
)

func (s EngineState) String() string {
	switch s {
	case StateSeeking:
		return "seeking"
	case StateLocated:
		return "located"
	case StateCentering:
		return "centering"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the engine stops in this state.
func (s EngineState) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// Engine drives an element into the scrollable region. It probes with
// full-region swipes until the locator finds the element, then decomposes the
// remaining distance into full and partial swipes.
type Engine struct {
	locator  Locator
	seq      *Sequencer
	region   viewport.Region
	cfg      Config
	selector Selector
	dir      SeekDirection

	state  EngineState
	probes int
	bounds core.Bounds
	plan   SwipePlan
	err    error
}

// NewEngine prepares a scroll-into-view run. The seek direction tells the
// engine which way to probe; it is not inferred.
func NewEngine(locator Locator, seq *Sequencer, region viewport.Region, cfg Config, selector Selector, dir SeekDirection) (*Engine, error) {
	if !dir.Valid() {
		return nil, core.ErrInvalidArgument.WithMessage(fmt.Sprintf("invalid seek direction %q", string(dir)))
	}
	if selector.Empty() {
		return nil, core.ErrInvalidArgument.WithMessage("selector has no query for any platform")
	}
	return &Engine{
		locator:  locator,
		seq:      seq,
		region:   region,
		cfg:      cfg.withDefaults(),
		selector: selector,
		dir:      dir,
		state:    StateSeeking,
	}, nil
}

// State returns the current machine position.
func (e *Engine) State() EngineState { return e.state }

// Probes returns how many probe swipes have been issued so far.
func (e *Engine) Probes() int { return e.probes }

// Bounds returns the last bounds reported by the locator. Only meaningful
// once the engine has left the seeking state.
func (e *Engine) Bounds() core.Bounds { return e.bounds }

// Run steps the machine until it reaches a terminal state and returns the
// final element bounds, or the failure that stopped it.
func (e *Engine) Run() (core.Bounds, error) {
	for !e.state.Terminal() {
		if err := e.Step(); err != nil {
			return core.Bounds{}, err
		}
	}
	if e.state == StateFailed {
		return core.Bounds{}, e.err
	}
	return e.bounds, nil
}

// Step advances the machine by exactly one transition. Gesture failures abort
// the run immediately; only probe exhaustion moves the machine to failed.
func (e *Engine) Step() error {
	switch e.state {
	case StateSeeking:
		return e.seek()
	case StateLocated:
		return e.computePlan()
	case StateCentering:
		return e.center()
	default:
		return nil
	}
}

func (e *Engine) seek() error {
	bounds, err := e.locator.Locate(e.selector)
	if err == nil {
		logger.Debug("located %s at %d,%d after %d probes", e.selector.Describe(), bounds.X, bounds.Y, e.probes)
		e.bounds = bounds
		e.state = StateLocated
		return nil
	}
	if e.probes >= e.cfg.ProbeAttempts {
		logger.Error("probing exhausted for %s after %d attempts", e.selector.Describe(), e.probes)
		e.state = StateFailed
		e.err = core.ErrElementNotFound.
			WithMessage(fmt.Sprintf("element %s not found after %d probe attempts", e.selector.Describe(), e.probes)).
			WithDetails(map[string]interface{}{"probeAttempts": e.probes})
		return nil
	}
	from, to := e.seekEndpoints()
	if err := e.seq.FullSwipe(e.dir.Axis(), from, to, 1); err != nil {
		return err
	}
	e.probes++
	return nil
}

func (e *Engine) computePlan() error {
	anchor := e.bounds.Center()
	var target, near int
	switch e.dir {
	case SeekDown:
		target, near = anchor.Y, e.region.Upper
	case SeekUp:
		target, near = e.region.Lower, anchor.Y
	case SeekRight:
		target, near = anchor.X, e.region.Left
	case SeekLeft:
		target, near = e.region.Right, anchor.X
	}
	e.plan = Decompose(target, near, e.unitExtent(), e.dir.Axis())
	logger.Debug("centering plan: %d full swipes, %.1fpx partial", e.plan.FullSwipes, e.plan.Partial)
	if e.plan.FullSwipes == 0 && !e.plan.NeedsPartial(e.cfg.ActionThresholdPx) {
		e.state = StateDone
		return nil
	}
	e.state = StateCentering
	return nil
}

func (e *Engine) center() error {
	from, to := e.seekEndpoints()
	if e.plan.FullSwipes > 0 {
		if err := e.seq.FullSwipe(e.plan.Axis, from, to, e.plan.FullSwipes); err != nil {
			return err
		}
	}
	if e.plan.NeedsPartial(e.cfg.ActionThresholdPx) {
		if err := e.seq.PartialSwipe(e.plan.Axis, from, to, e.plan.Partial); err != nil {
			return err
		}
	}
	// Refresh bounds so the caller gets post-scroll coordinates. The element
	// settled inside the region, so a relocate miss here is not fatal.
	if bounds, err := e.locator.Locate(e.selector); err == nil {
		e.bounds = bounds
	}
	e.state = StateDone
	return nil
}

// seekEndpoints returns the axis coordinates a probe swipe travels between.
// Seeking down drags content upward, from the lower bound to the upper one.
func (e *Engine) seekEndpoints() (from, to int) {
	switch e.dir {
	case SeekDown:
		return e.region.Lower, e.region.Upper
	case SeekUp:
		return e.region.Upper, e.region.Lower
	case SeekRight:
		return e.region.Right, e.region.Left
	default: // SeekLeft
		return e.region.Left, e.region.Right
	}
}

func (e *Engine) unitExtent() int {
	if e.dir.Axis() == AxisHorizontal {
		return e.region.ScrollableX
	}
	return e.region.ScrollableY
}
