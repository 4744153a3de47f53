package gesture

import (
	"fmt"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
)

const (
	// iosDragVelocityBase is multiplied by the speed factor to get the
	// XCUITest drag velocity in px/s.
	iosDragVelocityBase = 400
	// iosDragPressSeconds is the initial hold before the drag starts moving.
	iosDragPressSeconds = 0.5
	// iosDragHoldSeconds is the hold at the drop point before release.
	iosDragHoldSeconds = 0.1
)

// DragAndDrop drags the center of the source element onto the center of the
// target element. Both elements must already be visible; speed is a velocity
// factor between 0 and 10.
func (a *Actions) DragAndDrop(source, target Selector, speed float64) error {
	if speed == 0 {
		speed = 1.0
	}
	if speed < 0 || speed > 10 {
		return core.ErrInvalidArgument.
			WithMessage(fmt.Sprintf("drag speed must be between 0.0 and 10.0, got %v", speed))
	}
	srcBounds, err := a.driver.Locate(source)
	if err != nil {
		return err
	}
	dstBounds, err := a.driver.Locate(target)
	if err != nil {
		return err
	}
	from := srcBounds.Center()
	to := dstBounds.Center()
	if a.driver.Platform() == PlatformAndroid {
		return a.dragAndroid(from, to, speed)
	}
	return a.dragIOS(from, to, speed)
}

func (a *Actions) dragAndroid(from, to core.Point, speed float64) error {
	dpi, err := a.driver.DisplayDensity()
	if err != nil {
		return core.ErrGestureFailed.WithCause(err)
	}
	args := map[string]interface{}{
		"startX": from.X,
		"startY": from.Y,
		"endX":   to.X,
		"endY":   to.Y,
		"speed":  float64(androidVelocityBase*dpi) * speed,
	}
	if _, err := a.driver.ExecuteScript("mobile: dragGesture", args); err != nil {
		return core.ErrGestureFailed.WithCause(err)
	}
	return nil
}

func (a *Actions) dragIOS(from, to core.Point, speed float64) error {
	args := map[string]interface{}{
		"pressDuration": iosDragPressSeconds,
		"holdDuration":  iosDragHoldSeconds,
		"fromX":         from.X,
		"fromY":         from.Y,
		"toX":           to.X,
		"toY":           to.Y,
		"velocity":      iosDragVelocityBase * speed,
	}
	if _, err := a.driver.ExecuteScript("mobile: dragFromToWithVelocity", args); err != nil {
		return core.ErrGestureFailed.WithCause(err)
	}
	return nil
}
