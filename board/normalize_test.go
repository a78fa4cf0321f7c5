package board

import (
	"math/rand"
	"testing"

	"github.com/bodgit/zone7/cell"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCorners(t *testing.T) {
	a := Position{Zone: Mask, Black: 1}
	b := Position{Zone: Mask, Black: 1 << 48}

	assert.Equal(t, Position{Mask, 1, 0}, a.Normalize())
	assert.Equal(t, a.Normalize(), b.Normalize())

	for _, c := range [][2]int{{6, 0}, {0, 6}} {
		var p Position
		p.Zone = Mask
		p.Set(c[0], c[1], cell.Black)
		assert.Equal(t, a.Normalize(), p.Normalize())
	}
}

func TestNormalizeEmptyBoard(t *testing.T) {
	p := Position{Zone: Mask}
	assert.Equal(t, p, p.Normalize())
	assert.Equal(t, Position{}, Position{}.Normalize())
}

func TestNormalizeAdjacentStones(t *testing.T) {
	p := Position{Zone: Mask}
	p.Set(0, 0, cell.Black)
	p.Set(1, 0, cell.White)
	assert.Equal(t, Position{Mask, 1, 2}, p.Normalize())

	p = Position{Zone: Mask}
	p.Set(6, 6, cell.Black)
	p.Set(6, 5, cell.White)
	assert.Equal(t, Position{Mask, 1, 2}, p.Normalize())
}

func TestNormalizeSymmetryInvariant(t *testing.T) {
	for _, p := range randomPositions(500) {
		want := p.Normalize()
		for i := 0; i < Symmetries; i++ {
			assert.Equal(t, want, p.Transform(i).Normalize(), "%v symmetry %d", p, i)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, p := range randomPositions(1000) {
		n := p.Normalize()
		assert.Equal(t, n, n.Normalize())
		assert.Equal(t, 0, n.Offset())
		assert.False(t, p.Crop().Less(n))
	}
}

func TestNormalizeTranslationInvariant(t *testing.T) {
	p := Position{rect(2, 2, 3, 2), bit(2, 2), bit(4, 3)}
	q := Position{rect(3, 3, 3, 2), bit(3, 3), bit(5, 4)}

	want := Position{0x38700, 0x100, 0x20000}
	assert.Equal(t, want, p.Normalize())
	assert.Equal(t, want, q.Normalize())
	assert.Equal(t, want, p.Crop())

	quadrant := Position{rect(0, 0, 4, 4), bit(1, 1), bit(2, 1)}
	assert.Equal(t, Position{0x1e3c78f, 0x100, 0x200}, quadrant.Normalize())
}

func TestNormalizeEdgeContact(t *testing.T) {
	edge := Position{Zone: rect(0, 0, 2, 2)}
	interior := Position{Zone: rect(2, 2, 2, 2)}
	assert.Equal(t, uint64(0x183), edge.Normalize().Zone)
	assert.Equal(t, uint64(0x18300), interior.Normalize().Zone)
	assert.NotEqual(t, edge.Normalize(), interior.Normalize())

	top := Position{Zone: rect(2, 5, 2, 2)}
	assert.Equal(t, 1, top.Offset())
	assert.Equal(t, uint64(0x306), top.Normalize().Zone)

	touches := func(zone uint64) bool {
		for _, e := range edges(zone) {
			if e {
				return true
			}
		}
		return false
	}
	for _, p := range randomPositions(1000) {
		assert.Equal(t, touches(p.Zone), touches(p.Normalize().Zone), "%v", p)
	}
}

func TestNormalizeTranslationRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 300; i++ {
		w, h := 1+rng.Intn(Size-2), 1+rng.Intn(Size-2)

		// A pattern anchored at the origin, then every placement of it
		// that leaves the zone clear of the edges
		var pattern Position
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if rng.Intn(10) < 3 {
					continue
				}
				pattern.Set(x, y, cell.State(rng.Intn(3)))
			}
		}
		if pattern.Zone == 0 {
			pattern.Set(0, 0, cell.Black)
		}

		var want Position
		for r := 1; r+h < Size; r++ {
			for c := 1; c+w < Size; c++ {
				n := uint(r*Size + c)
				placed := Position{pattern.Zone << n, pattern.Black << n, pattern.White << n}
				if r == 1 && c == 1 {
					want = placed.Normalize()
				}
				assert.Equal(t, want, placed.Normalize(), "%v at (%d, %d)", pattern, c, r)
			}
		}
	}
}

func TestNormalizeIgnoresPiecesOutsideZone(t *testing.T) {
	for _, p := range randomPositions(200) {
		dirty := Position{p.Zone, p.Black | ^p.Zone&Mask, p.White | 0x5555&^p.Zone}
		assert.Equal(t, p.Normalize(), dirty.Normalize())
	}
}

func TestNormalizeIndex(t *testing.T) {
	for _, p := range randomPositions(500) {
		n, i := p.NormalizeIndex()
		assert.Equal(t, p.Normalize(), n)
		assert.Equal(t, n, p.Transform(i).Crop())
		for j := 0; j < i; j++ {
			assert.True(t, n.Less(p.Transform(j).Crop()), "symmetry %d", j)
		}
	}

	_, i := Position{Zone: Mask}.NormalizeIndex()
	assert.Equal(t, 0, i)
}

func BenchmarkNormalize(b *testing.B) {
	positions := randomPositions(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = positions[i&1023].Normalize()
	}
}
