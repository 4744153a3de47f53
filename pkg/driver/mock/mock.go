// Package mock provides a mock driver for testing gestures without a real
// device or Appium server.
package mock

import (
	"fmt"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
)

// Driver is an in-memory implementation of gesture.Driver. It records every
// pointer sequence and script call so tests can assert on the exact wire
// traffic a gesture produced.
type Driver struct {
	// Configuration
	Config Config

	// Recorded traffic
	PointerSequences [][]gesture.PointerAction
	ScriptCalls      []ScriptCall

	locateCalls int
}

// Config configures mock driver behavior.
type Config struct {
	// Platform to report. Defaults to android.
	Platform string
	// Window dimensions. Default 1080x2400.
	Width, Height int
	// Display density in dpi. Default 440.
	Density int
	// Element simulated on screen. Nil means every locate misses.
	Element *Element
	// PointerErr makes every PerformPointer call fail with this error.
	PointerErr error
	// ScriptErr makes every ExecuteScript call fail with this error.
	ScriptErr error
}

// Element is a simulated on-screen element. It becomes locatable once
// VisibleAfterSwipes pointer sequences have been performed, and shifts by
// ShiftX/ShiftY for each swipe after that, imitating list scroll movement.
type Element struct {
	Bounds             core.Bounds
	VisibleAfterSwipes int
	ShiftX, ShiftY     int
}

// ScriptCall records one ExecuteScript invocation.
type ScriptCall struct {
	Script string
	Args   map[string]interface{}
}

// New creates a new mock driver.
func New(cfg Config) *Driver {
	if cfg.Platform == "" {
		cfg.Platform = gesture.PlatformAndroid
	}
	if cfg.Width == 0 {
		cfg.Width = 1080
	}
	if cfg.Height == 0 {
		cfg.Height = 2400
	}
	if cfg.Density == 0 {
		cfg.Density = 440
	}
	return &Driver{Config: cfg}
}

// Platform returns the configured platform.
func (d *Driver) Platform() string {
	return d.Config.Platform
}

// WindowSize returns the configured window dimensions.
func (d *Driver) WindowSize() (int, int, error) {
	return d.Config.Width, d.Config.Height, nil
}

// DisplayDensity returns the configured density.
func (d *Driver) DisplayDensity() (int, error) {
	return d.Config.Density, nil
}

// PerformPointer records the sequence and counts it as one swipe for element
// visibility purposes.
func (d *Driver) PerformPointer(actions []gesture.PointerAction) error {
	if d.Config.PointerErr != nil {
		return d.Config.PointerErr
	}
	seq := make([]gesture.PointerAction, len(actions))
	copy(seq, actions)
	d.PointerSequences = append(d.PointerSequences, seq)
	return nil
}

// ExecuteScript records the call and returns true, mirroring the scripted
// gesture endpoints.
func (d *Driver) ExecuteScript(script string, args map[string]interface{}) (interface{}, error) {
	if d.Config.ScriptErr != nil {
		return nil, d.Config.ScriptErr
	}
	d.ScriptCalls = append(d.ScriptCalls, ScriptCall{Script: script, Args: args})
	return true, nil
}

// Locate returns the simulated element's current bounds, or an element
// not-found error while it is still out of view.
func (d *Driver) Locate(sel gesture.Selector) (core.Bounds, error) {
	d.locateCalls++
	elem := d.Config.Element
	if elem == nil {
		return core.Bounds{}, core.ErrElementNotFound.
			WithMessage(fmt.Sprintf("no element matching %s", sel.Describe()))
	}
	swipes := len(d.PointerSequences)
	if swipes < elem.VisibleAfterSwipes {
		return core.Bounds{}, core.ErrElementNotFound.
			WithMessage(fmt.Sprintf("no element matching %s", sel.Describe()))
	}
	shift := swipes - elem.VisibleAfterSwipes
	b := elem.Bounds
	b.X += shift * elem.ShiftX
	b.Y += shift * elem.ShiftY
	return b, nil
}

// LocateCalls returns how many times Locate has been invoked.
func (d *Driver) LocateCalls() int {
	return d.locateCalls
}

// Swipes returns how many pointer sequences have been performed.
func (d *Driver) Swipes() int {
	return len(d.PointerSequences)
}

var _ gesture.Driver = (*Driver)(nil)
