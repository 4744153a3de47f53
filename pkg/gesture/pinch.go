package gesture

import (
	"fmt"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
)

const (
	// DefaultPinchPercent is how far the pinch travels across the element.
	DefaultPinchPercent = 0.75
	// DefaultPinchSpeed is the velocity factor applied to the platform base.
	DefaultPinchSpeed = 1.0
	// androidVelocityBase is multiplied by the display density and the
	// speed factor to get the uiautomator2 gesture velocity in px/s.
	androidVelocityBase = 2500
)

// PinchOpen spreads two fingers apart on the element, zooming in. Percent is
// the travel across the element in (0, 1]; speed scales the platform's base
// velocity.
func (a *Actions) PinchOpen(sel Selector, percent, speed float64) error {
	return a.pinch(sel, percent, speed, true)
}

// PinchClose pulls two fingers together on the element, zooming out.
func (a *Actions) PinchClose(sel Selector, percent, speed float64) error {
	return a.pinch(sel, percent, speed, false)
}

func (a *Actions) pinch(sel Selector, percent, speed float64, open bool) error {
	if percent == 0 {
		percent = DefaultPinchPercent
	}
	if speed == 0 {
		speed = DefaultPinchSpeed
	}
	if percent < 0 || percent > 1 {
		return core.ErrInvalidArgument.
			WithMessage(fmt.Sprintf("pinch percent must be between 0.0 and 1.0, got %v", percent))
	}
	bounds, err := a.driver.Locate(sel)
	if err != nil {
		return err
	}
	if a.driver.Platform() == PlatformAndroid {
		return a.pinchAndroid(bounds, percent, speed, open)
	}
	return a.pinchIOS(percent, speed, open)
}

func (a *Actions) pinchAndroid(bounds core.Bounds, percent, speed float64, open bool) error {
	dpi, err := a.driver.DisplayDensity()
	if err != nil {
		return core.ErrGestureFailed.WithCause(err)
	}
	script := "mobile: pinchCloseGesture"
	if open {
		script = "mobile: pinchOpenGesture"
	}
	args := map[string]interface{}{
		"left":    bounds.X,
		"top":     bounds.Y,
		"width":   bounds.Width,
		"height":  bounds.Height,
		"percent": percent,
		"speed":   float64(androidVelocityBase*dpi) * speed,
	}
	if _, err := a.driver.ExecuteScript(script, args); err != nil {
		return core.ErrGestureFailed.WithCause(err)
	}
	return nil
}

func (a *Actions) pinchIOS(percent, speed float64, open bool) error {
	// XCUITest inverts the pinch when scale exceeds 1, so the closing
	// variant doubles the factor to cross that boundary.
	scale := percent
	if !open {
		scale = percent * 2
	}
	args := map[string]interface{}{
		"scale":    scale,
		"velocity": speed,
	}
	if _, err := a.driver.ExecuteScript("mobile: pinch", args); err != nil {
		return core.ErrGestureFailed.WithCause(err)
	}
	return nil
}
