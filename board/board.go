/*
Package board implements a 7x7 two-colour position packed into three
49-bit planes, together with the symmetry, crop and normalization
operations used to compute a canonical key for a position.

Cell (c, r) is bit r*7+c of each plane. Row 0 is the bottom row and
column 0 is the leftmost column.
*/
package board

import "github.com/bodgit/zone7/cell"

const (
	// Size is the width and height of the grid
	Size = 7
	// Cells is the number of cells on the grid
	Cells = Size * Size
	// Mask has every significant bit of a plane set. It is also the zone
	// of a full board
	Mask uint64 = 1<<Cells - 1
)

// Position is a zone plane marking which cells are in play and two
// piece planes. Bits of Black and White outside of Zone carry no
// meaning
type Position struct {
	Zone  uint64
	Black uint64
	White uint64
}

// New returns a Position with each plane masked to 49 bits
func New(zone, black, white uint64) Position {
	return Position{
		Zone:  zone & Mask,
		Black: black & Mask,
		White: white & Mask,
	}
}

func bit(c, r int) uint64 {
	return 1 << uint(r*Size+c)
}

// Get returns the state of cell (c, r). Both coordinates must be in
// the range [0, 6]
func (p Position) Get(c, r int) cell.State {
	b := bit(c, r)
	if p.Zone&b == 0 {
		return cell.Irrelevant
	}

	s := cell.Empty
	if p.Black&b != 0 {
		s |= cell.Black
	}
	if p.White&b != 0 {
		s |= cell.White
	}

	return s
}

// Set writes the state of cell (c, r) into all three planes. Any
// state other than the ones defined in package cell removes the cell
// from the zone
func (p *Position) Set(c, r int, s cell.State) {
	b := bit(c, r)
	switch s {
	case cell.Empty:
		p.Zone |= b
		p.Black &^= b
		p.White &^= b
	case cell.Black:
		p.Zone |= b
		p.Black |= b
		p.White &^= b
	case cell.White:
		p.Zone |= b
		p.Black &^= b
		p.White |= b
	case cell.Unknown:
		p.Zone |= b
		p.Black |= b
		p.White |= b
	default:
		p.Zone &^= b
		p.Black &^= b
		p.White &^= b
	}
}

// Clean clears any piece bits that fall outside of the zone
func (p Position) Clean() Position {
	return Position{
		Zone:  p.Zone,
		Black: p.Black & p.Zone,
		White: p.White & p.Zone,
	}
}

// And returns the plane-wise intersection of p and o
func (p Position) And(o Position) Position {
	return Position{p.Zone & o.Zone, p.Black & o.Black, p.White & o.White}
}

// Or returns the plane-wise union of p and o
func (p Position) Or(o Position) Position {
	return Position{p.Zone | o.Zone, p.Black | o.Black, p.White | o.White}
}

// Xor returns the plane-wise symmetric difference of p and o
func (p Position) Xor(o Position) Position {
	return Position{p.Zone ^ o.Zone, p.Black ^ o.Black, p.White ^ o.White}
}

// Not returns the plane-wise complement of p. Bits above the grid stay
// clear
func (p Position) Not() Position {
	return Position{^p.Zone & Mask, ^p.Black & Mask, ^p.White & Mask}
}

// IsZero reports whether every plane is empty
func (p Position) IsZero() bool {
	return p.Zone|p.Black|p.White == 0
}

// Equal reports whether p and o hold identical planes, including any
// bits outside of the zone
func (p Position) Equal(o Position) bool {
	return p == o
}

// Compare orders positions by Zone, then Black, then White, comparing
// each plane as an unsigned integer. It returns -1, 0 or +1
func (p Position) Compare(o Position) int {
	switch {
	case p.Zone != o.Zone:
		return compare(p.Zone, o.Zone)
	case p.Black != o.Black:
		return compare(p.Black, o.Black)
	default:
		return compare(p.White, o.White)
	}
}

// Less reports whether p sorts before o
func (p Position) Less(o Position) bool {
	return p.Compare(o) < 0
}

func compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
