package board

// Symmetries is the number of symmetries of the square
const Symmetries = 8

// transform applies symmetry i, reduced modulo 8, to m:
//
//	0 identity
//	1 flip
//	2 transpose . flip
//	3 transpose . flip . mirror
//	4 mirror . flip
//	5 mirror
//	6 flip . transpose
//	7 transpose
func transform(m uint64, i int) uint64 {
	switch (i%Symmetries + Symmetries) % Symmetries {
	case 1:
		return flip(m)
	case 2:
		return transpose(flip(m))
	case 3:
		return transpose(flip(mirror(m)))
	case 4:
		return mirror(flip(m))
	case 5:
		return mirror(m)
	case 6:
		return flip(transpose(m))
	case 7:
		return transpose(m)
	default:
		return m
	}
}

// images returns all eight symmetric images of m by alternately
// flipping and transposing the previous one. Image i equals
// transform(m, i)
func images(m uint64) (iso [Symmetries]uint64) {
	iso[0] = m
	for i := 1; i < Symmetries; i++ {
		if i&1 == 1 {
			iso[i] = flip(iso[i-1])
		} else {
			iso[i] = transpose(iso[i-1])
		}
	}
	return
}

// Transform returns symmetry i of p. Indices outside [0, 7] are reduced
// modulo 8
func (p Position) Transform(i int) Position {
	return Position{
		Zone:  transform(p.Zone, i),
		Black: transform(p.Black, i),
		White: transform(p.White, i),
	}
}

// Transpose reflects p across the main diagonal
func (p Position) Transpose() Position {
	return Position{transpose(p.Zone), transpose(p.Black), transpose(p.White)}
}

// Flip reverses the row order of p
func (p Position) Flip() Position {
	return Position{flip(p.Zone), flip(p.Black), flip(p.White)}
}

// Mirror reverses the column order of p
func (p Position) Mirror() Position {
	return Position{mirror(p.Zone), mirror(p.Black), mirror(p.White)}
}

// Images returns the eight symmetric images of p, index i being
// p.Transform(i)
func (p Position) Images() (iso [Symmetries]Position) {
	z, b, w := images(p.Zone), images(p.Black), images(p.White)
	for i := range iso {
		iso[i] = Position{z[i], b[i], w[i]}
	}
	return
}
