package board

// Normalize returns the canonical representative of p: the smallest,
// by Compare, of the cropped symmetric images of p with every piece
// bit outside of the zone cleared. Positions that differ only by a
// symmetry, or by a translation that keeps the zone clear of every edge
// of the board, normalize to the same value. A zone touching an edge
// never normalizes like one that does not
func (p Position) Normalize() Position {
	n, _ := p.NormalizeIndex()
	return n
}

// NormalizeIndex is like Normalize but also returns the symmetry index
// that produced the result, the lowest one if several images tie
func (p Position) NormalizeIndex() (Position, int) {
	iso := p.Clean().Images()

	best, index := iso[0].Crop(), 0
	for i := 1; i < Symmetries; i++ {
		if c := iso[i].Crop(); c.Less(best) {
			best, index = c, i
		}
	}

	return best, index
}
