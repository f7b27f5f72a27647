package types

import "fmt"

// Order selects how the catalog sequences its images.
type Order int

const (
	// Alpha plays images in ascending lexicographic order
	Alpha Order = iota
	// Random plays images in a one-time shuffled order
	Random
)

// Valid reports whether the order is a known value
func (o Order) Valid() bool {
	return o == Alpha || o == Random
}

func (o Order) String() string {
	switch o {
	case Alpha:
		return "alpha"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder converts a configuration string into an Order
func ParseOrder(s string) (Order, error) {
	switch s {
	case "alpha":
		return Alpha, nil
	case "random":
		return Random, nil
	default:
		return Alpha, fmt.Errorf("unknown order: %q", s)
	}
}
