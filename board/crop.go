package board

// offset returns how far the planes must be shifted right so that the
// zone keeps a one cell margin to row 0 and column 0. Along each axis a
// zone already touching the near edge (row 0, column 0) or the far edge
// (row 6, column 6) is not moved, so contact with every edge of the
// board survives. An empty zone is not moved
func offset(zone uint64) uint {
	if zone == 0 {
		return 0
	}

	var n int
	if zone&row6 == 0 {
		if r := lowestRow(zone); r > 1 {
			n += (r - 1) * Size
		}
	}
	if zone&column6 == 0 {
		if c := lowestColumn(zone); c > 1 {
			n += c - 1
		}
	}

	return uint(n)
}

// Offset returns the number of bit positions Crop would shift p by
func (p Position) Offset() int {
	return int(offset(p.Zone))
}

// Crop translates p towards the origin until the zone is one cell clear
// of row 0 and column 0. A zone touching an edge of the board stays
// against it, and an empty zone is not moved. Piece bits left of the
// first zone column would wrap into the previous row, so p should be
// clean. Cropping a cropped position returns it unchanged
func (p Position) Crop() Position {
	n := offset(p.Zone)
	return Position{p.Zone >> n, p.Black >> n, p.White >> n}
}
