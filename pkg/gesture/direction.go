// Package gesture turns high-level intents (swipe up, scroll element into
// view, pinch open) into pointer-input action sequences against a device
// viewport.
package gesture

// Axis selects which bound pair and coordinate a swipe varies.
type Axis int

// Axis values.
const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns the string representation of Axis.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Direction is the direction of a swipe action: the axis and sign of travel.
type Direction string

// Direction values.
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// SeekDirection is the direction in which to probe for an element that
// cannot yet be located. It is distinct from Direction because the probing
// direction may differ from the eventual fine-scroll direction.
type SeekDirection string

// SeekDirection values.
const (
	SeekUp    SeekDirection = "up"
	SeekDown  SeekDirection = "down"
	SeekLeft  SeekDirection = "left"
	SeekRight SeekDirection = "right"
)

// Axis returns the scroll axis the seek direction moves along.
func (d SeekDirection) Axis() Axis {
	if d == SeekLeft || d == SeekRight {
		return AxisHorizontal
	}
	return AxisVertical
}

// Valid reports whether the seek direction is one of the four known values.
func (d SeekDirection) Valid() bool {
	switch d {
	case SeekUp, SeekDown, SeekLeft, SeekRight:
		return true
	default:
		return false
	}
}
