package gesture

import (
	"fmt"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
)

// Platform identifiers, lower-cased as drivers report them.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// ActionType is a W3C pointer primitive type.
type ActionType string

// Pointer primitive types.
const (
	ActionPointerMove ActionType = "pointerMove"
	ActionPointerDown ActionType = "pointerDown"
	ActionPointerUp   ActionType = "pointerUp"
	ActionPause       ActionType = "pause"
)

// PointerAction is one low-level pointer-input primitive. A swipe, tap or
// drag is an ordered sequence of these, dispatched atomically.
type PointerAction struct {
	Type       ActionType
	X          int
	Y          int
	DurationMs int
}

// Move returns an instantaneous pointer move to p.
func Move(p core.Point) PointerAction {
	return PointerAction{Type: ActionPointerMove, X: p.X, Y: p.Y}
}

// MoveOver returns a pointer move to p taking durationMs.
func MoveOver(p core.Point, durationMs int) PointerAction {
	return PointerAction{Type: ActionPointerMove, X: p.X, Y: p.Y, DurationMs: durationMs}
}

// Down returns a pointer-down primitive.
func Down() PointerAction {
	return PointerAction{Type: ActionPointerDown}
}

// Up returns a pointer-up primitive.
func Up() PointerAction {
	return PointerAction{Type: ActionPointerUp}
}

// Pause returns a pause primitive of durationMs.
func Pause(durationMs int) PointerAction {
	return PointerAction{Type: ActionPause, DurationMs: durationMs}
}

// Performer dispatches a pointer primitive sequence to the device and blocks
// until the driver acknowledges completion. Sequences are serial per session;
// there is no overlapping dispatch.
type Performer interface {
	PerformPointer(actions []PointerAction) error
}

// Scripter runs platform gesture scripts through the driver's scripted
// execution channel (mobile: pinchOpenGesture and friends).
type Scripter interface {
	ExecuteScript(script string, args map[string]interface{}) (interface{}, error)
	DisplayDensity() (int, error)
}

// Session exposes the session-level device state the gesture layer needs.
type Session interface {
	// WindowSize returns the current viewport dimensions in pixels.
	WindowSize() (width, height int, err error)
	// Platform returns the lower-cased platform name (android, ios).
	Platform() string
}

// Query is a platform-specific element query, opaque to this layer.
type Query struct {
	Strategy string `yaml:"strategy" json:"strategy"`
	Value    string `yaml:"value" json:"value"`
}

// Selector carries one query per platform for a single cross-platform call.
// The Locator implementation resolves which query applies; this layer never
// inspects query contents.
type Selector struct {
	Android *Query `yaml:"android,omitempty" json:"android,omitempty"`
	IOS     *Query `yaml:"ios,omitempty" json:"ios,omitempty"`
}

// Describe returns a short human-readable form for logs and errors.
func (s Selector) Describe() string {
	switch {
	case s.Android != nil && s.IOS != nil:
		return fmt.Sprintf("android(%s=%s) ios(%s=%s)",
			s.Android.Strategy, s.Android.Value, s.IOS.Strategy, s.IOS.Value)
	case s.Android != nil:
		return fmt.Sprintf("android(%s=%s)", s.Android.Strategy, s.Android.Value)
	case s.IOS != nil:
		return fmt.Sprintf("ios(%s=%s)", s.IOS.Strategy, s.IOS.Value)
	default:
		return "(empty selector)"
	}
}

// Empty reports whether no query is set for any platform.
func (s Selector) Empty() bool {
	return s.Android == nil && s.IOS == nil
}

// Locator finds an element and returns its current bounds, or an error
// wrapping core.ErrElementNotFound when it cannot be located. Bounds are
// queried fresh every call.
type Locator interface {
	Locate(sel Selector) (core.Bounds, error)
}

// Driver is the full collaborator surface a device driver provides.
type Driver interface {
	Session
	Performer
	Scripter
	Locator
}
