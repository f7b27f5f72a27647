package types

import "fmt"

// Direction is the traversal direction over the catalog.
type Direction int

const (
	// Forward advances toward the end of the catalog
	Forward Direction = iota
	// Backward advances toward the start of the catalog
	Backward
)

// Valid reports whether the direction is a known value
func (d Direction) Valid() bool {
	return d == Forward || d == Backward
}

// Step returns the index increment applied per traversal step
func (d Direction) Step() int {
	if d == Backward {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a configuration string into a Direction
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("unknown direction: %q", s)
	}
}
