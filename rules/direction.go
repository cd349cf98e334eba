package rules

// Direction is one of the four cardinal headings a snake can take.
type Direction string

const (
	// DirectionUp moves the head one cell towards y=0.
	DirectionUp Direction = "up"
	// DirectionDown moves the head one cell towards y=height-1.
	DirectionDown Direction = "down"
	// DirectionLeft moves the head one cell towards x=0.
	DirectionLeft Direction = "left"
	// DirectionRight moves the head one cell towards x=width-1.
	DirectionRight Direction = "right"
)

// Directions lists the canonical members in tie-break order. Strategy
// evaluation iterates this slice so that equal scores always resolve the
// same way.
var Directions = []Direction{
	DirectionUp,
	DirectionDown,
	DirectionLeft,
	DirectionRight,
}

// Vector returns the unit offset for the direction.
func (d Direction) Vector() (int32, int32) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reversing direction. Opposite is an involution:
// d.Opposite().Opposite() == d for every canonical member.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Valid reports whether d is one of the four canonical members. Anything
// else coming out of a strategy is treated as a configuration fault and
// never applied to an agent.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}
