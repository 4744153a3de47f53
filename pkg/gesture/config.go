package gesture

import (
	"github.com/devicelab-dev/appium-gestures/pkg/viewport"
)

// DefaultActionThresholdPx is the minimum partial-swipe distance in pixels.
// Below this the platform gesture recognizer interprets a short drag as a
// tap or double-tap, so the partial swipe is suppressed rather than misfired.
const DefaultActionThresholdPx = 50.0

// DefaultProbeAttempts is the probe budget for elements that cannot be
// located directly.
const DefaultProbeAttempts = 5

// DefaultSwipePauseMs is the hold before pointer release. Without it the OS
// gives the swipe inertia and treats it as a flick.
const DefaultSwipePauseMs = 500

// Config holds the gesture-layer settings. All fields are fixed at
// construction; there are no per-call overrides.
type Config struct {
	// CropFactors bound the scrollable region within the viewport.
	CropFactors viewport.CropFactors

	// ProbeAttempts is the retry budget while seeking an absent element.
	ProbeAttempts int

	// ActionThresholdPx suppresses partial swipes at or below this distance.
	// It doubles as the "close enough" centering tolerance: a residual within
	// it counts as centered.
	ActionThresholdPx float64

	// SwipePauseMs is the hold duration before pointer release.
	SwipePauseMs int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		CropFactors:       viewport.DefaultCropFactors(),
		ProbeAttempts:     DefaultProbeAttempts,
		ActionThresholdPx: DefaultActionThresholdPx,
		SwipePauseMs:      DefaultSwipePauseMs,
	}
}

// withDefaults fills zero-valued fields so a partially populated Config
// behaves like DefaultConfig for the fields left unset.
func (c Config) withDefaults() Config {
	zero := viewport.CropFactors{}
	if c.CropFactors == zero {
		c.CropFactors = viewport.DefaultCropFactors()
	}
	if c.ProbeAttempts <= 0 {
		c.ProbeAttempts = DefaultProbeAttempts
	}
	if c.ActionThresholdPx <= 0 {
		c.ActionThresholdPx = DefaultActionThresholdPx
	}
	if c.SwipePauseMs <= 0 {
		c.SwipePauseMs = DefaultSwipePauseMs
	}
	return c
}
