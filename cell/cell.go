// Package cell defines the states a single cell of a 7x7 zone board can be in
package cell

// State is the content of a cell
type State int8

// A cell inside the zone is Empty unless its black or white bit is set.
// Both bits set is the Unknown sentinel
const (
	Empty State = iota
	Black
	White
	Unknown

	Irrelevant State = -1
)

func (s State) String() string {
	strings := map[State]string{
		Empty:      "Empty",
		Black:      "Black",
		White:      "White",
		Unknown:    "Unknown",
		Irrelevant: "Irrelevant",
	}

	return strings[s]
}

// IsValid reports whether s is one of the defined states
func (s State) IsValid() bool {
	return s >= Irrelevant && s <= Unknown
}

// InZone reports whether s describes a cell that is part of the zone
func (s State) InZone() bool {
	return s >= Empty && s <= Unknown
}
