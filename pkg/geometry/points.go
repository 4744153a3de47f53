// Package geometry derives gesture anchor points from element bounds.
package geometry

import (
	"github.com/devicelab-dev/appium-gestures/pkg/core"
)

// Anchor names one of the nine reference points of an element.
type Anchor string

// Anchor values.
const (
	TopLeft     Anchor = "top_left"
	TopMid      Anchor = "top_mid"
	TopRight    Anchor = "top_right"
	LeftMid     Anchor = "left_mid"
	Mid         Anchor = "mid"
	RightMid    Anchor = "right_mid"
	BottomLeft  Anchor = "bottom_left"
	BottomMid   Anchor = "bottom_mid"
	BottomRight Anchor = "bottom_right"
)

// ElementPoints holds the nine reference points of an element: the four
// corners, the four edge midpoints, and the center.
type ElementPoints struct {
	TopLeft     core.Point `json:"topLeft"`
	TopMid      core.Point `json:"topMid"`
	TopRight    core.Point `json:"topRight"`
	LeftMid     core.Point `json:"leftMid"`
	Mid         core.Point `json:"mid"`
	RightMid    core.Point `json:"rightMid"`
	BottomLeft  core.Point `json:"bottomLeft"`
	BottomMid   core.Point `json:"bottomMid"`
	BottomRight core.Point `json:"bottomRight"`
}

// Point returns the named anchor. Unknown names fall back to the center.
func (p ElementPoints) Point(a Anchor) core.Point {
	switch a {
	case TopLeft:
		return p.TopLeft
	case TopMid:
		return p.TopMid
	case TopRight:
		return p.TopRight
	case LeftMid:
		return p.LeftMid
	case RightMid:
		return p.RightMid
	case BottomLeft:
		return p.BottomLeft
	case BottomMid:
		return p.BottomMid
	case BottomRight:
		return p.BottomRight
	default:
		return p.Mid
	}
}

// Points computes the nine anchor points for the given bounds. It is a pure
// function of the bounds passed in: same bounds, same points. Midpoints use
// floor division, matching Go integer division on non-negative coordinates.
func Points(b core.Bounds) ElementPoints {
	midX := b.X + b.Width/2
	midY := b.Y + b.Height/2
	rightX := b.X + b.Width
	bottomY := b.Y + b.Height

	return ElementPoints{
		TopLeft:     core.Point{X: b.X, Y: b.Y},
		TopMid:      core.Point{X: midX, Y: b.Y},
		TopRight:    core.Point{X: rightX, Y: b.Y},
		LeftMid:     core.Point{X: b.X, Y: midY},
		Mid:         core.Point{X: midX, Y: midY},
		RightMid:    core.Point{X: rightX, Y: midY},
		BottomLeft:  core.Point{X: b.X, Y: bottomY},
		BottomMid:   core.Point{X: midX, Y: bottomY},
		BottomRight: core.Point{X: rightX, Y: bottomY},
	}
}
