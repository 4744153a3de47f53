// Package viewport models device viewport dimensions and the scrollable
// region derived from crop factors.
package viewport

import (
	"github.com/devicelab-dev/appium-gestures/pkg/core"
)

// Default crop factors. These insets keep gestures clear of system chrome:
// the notification shade at the top and the multitasking bar at the bottom.
const (
	DefaultUpperCropFactor = 0.05
	DefaultLowerCropFactor = 0.80
	DefaultLeftCropFactor  = 0.05
	DefaultRightCropFactor = 0.95
)

// Viewport holds device viewport dimensions. It is immutable once captured
// for a session; orientation changes require the caller to re-derive the
// region explicitly.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MidX returns the horizontal midpoint of the viewport.
func (v Viewport) MidX() int { return v.Width / 2 }

// MidY returns the vertical midpoint of the viewport.
func (v Viewport) MidY() int { return v.Height / 2 }

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool { return v.Width > 0 && v.Height > 0 }

// CropFactors are the fractions of the viewport excluded from the scrollable
// region on each edge. All four must lie in (0,1), with Upper < Lower and
// Left < Right.
type CropFactors struct {
	Upper float64 `yaml:"upper" json:"upper"`
	Lower float64 `yaml:"lower" json:"lower"`
	Left  float64 `yaml:"left" json:"left"`
	Right float64 `yaml:"right" json:"right"`
}

// DefaultCropFactors returns the documented default crop factors.
func DefaultCropFactors() CropFactors {
	return CropFactors{
		Upper: DefaultUpperCropFactor,
		Lower: DefaultLowerCropFactor,
		Left:  DefaultLeftCropFactor,
		Right: DefaultRightCropFactor,
	}
}

// Validate checks that every factor is a fraction in (0,1) and that the
// factor pairs are ordered. A degenerate region is a configuration error,
// never silently tolerated.
func (cf CropFactors) Validate() error {
	for _, f := range []float64{cf.Upper, cf.Lower, cf.Left, cf.Right} {
		if f <= 0 || f >= 1 {
			return core.ErrInvalidCropFactors.WithDetails(map[string]interface{}{
				"upper": cf.Upper, "lower": cf.Lower, "left": cf.Left, "right": cf.Right,
			})
		}
	}
	if cf.Upper >= cf.Lower || cf.Left >= cf.Right {
		return core.ErrInvalidCropFactors.WithDetails(map[string]interface{}{
			"upper": cf.Upper, "lower": cf.Lower, "left": cf.Left, "right": cf.Right,
		})
	}
	return nil
}

// Region is the scrollable sub-rectangle of the viewport in pixel
// coordinates. It is derived once at initialization and never mutated
// mid-session.
type Region struct {
	Upper int `json:"upper"`
	Lower int `json:"lower"`
	Left  int `json:"left"`
	Right int `json:"right"`

	// ScrollableX and ScrollableY are the horizontal and vertical extents of
	// the region, the unit of travel for one full swipe on each axis.
	ScrollableX int `json:"scrollableX"`
	ScrollableY int `json:"scrollableY"`
}

// Contains reports whether the point lies inside the region, bounds
// inclusive.
func (r Region) Contains(p core.Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Upper && p.Y <= r.Lower
}

// DeriveRegion computes the scrollable region for a viewport from crop
// factors. Each bound is the viewport extent scaled by the matching factor,
// truncated to whole pixels.
func DeriveRegion(v Viewport, cf CropFactors) (Region, error) {
	if !v.Valid() {
		return Region{}, core.ErrViewportUnavailable.WithDetails(map[string]interface{}{
			"width": v.Width, "height": v.Height,
		})
	}
	if err := cf.Validate(); err != nil {
		return Region{}, err
	}

	r := Region{
		Upper: int(float64(v.Height) * cf.Upper),
		Lower: int(float64(v.Height) * cf.Lower),
		Left:  int(float64(v.Width) * cf.Left),
		Right: int(float64(v.Width) * cf.Right),
	}
	r.ScrollableX = r.Right - r.Left
	r.ScrollableY = r.Lower - r.Upper

	// Small viewports can truncate ordered factors into an empty region.
	if r.ScrollableX <= 0 || r.ScrollableY <= 0 {
		return Region{}, core.ErrDegenerateRegion.WithDetails(map[string]interface{}{
			"scrollableX": r.ScrollableX, "scrollableY": r.ScrollableY,
		})
	}

	return r, nil
}
