package popper

// Direction is which way a burst travels across the viewport.
type Direction int

const (
	// Descending stages items above the top edge and drops them out the
	// bottom.
	Descending Direction = iota
	// Ascending stages items below the bottom edge and floats them out the
	// top.
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "ascending"
	}
	return "descending"
}

// ParseDirection maps a config token to a Direction. Unknown tokens fall
// back to Descending.
func ParseDirection(s string) Direction {
	if s == "ascending" {
		return Ascending
	}
	return Descending
}
