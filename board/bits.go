package board

import "math/bits"

// Row and column masks used by the permutations below. Bit r*7+c is
// cell (c, r).
const (
	column0 uint64 = 0b0000001000000100000010000001000000100000010000001
	column3 uint64 = column0 << 3
	column6 uint64 = column0 << 6
	row6    uint64 = 0x7f << 42
)

// transpose reflects m across the main diagonal, (c, r) -> (r, c).
//
// Four delta swaps exchange blocks of 1, 2, 3 and finally the lower
// right 3x3 block with the upper left one:
//
//	(1)             (2)             (3)             (4)             (5)
//	q r s t u v w   q<l>s t u<p>w  <e>l s t<i>p w   e l s<b>i p w  <G N U>b i p w
//	j k l m n o p  <d>k<r>m<h>o<v>  d k r<a>h o v   d k r a h o v  <F M T>a h o v
//	c d e f g h i   c<j>e<Z>g<n>i   c j<q>Z g n<u>  c j q Z g n u  <E L S>Z g n u
//	V W X Y Z a b   V W<R>Y<f>a b   V<K>R Y f<m>b  <D>K R Y f m<t>  D K R Y f m t
//	O P Q R S T U   O<J>Q<X>S<N>U  <C>J Q X<G>N U   C J Q X G N U   C J Q X<e l s>
//	H I J K L M N  <B>I<P>K<F>M<T>  B I P<W>F M T   B I P W F M T   B I P W<d k r>
//	A B C D E F G   A<H>C D E<L>G   A H<O>D E L<S>  A H O<V>E L S   A H O V<c j q>
func transpose(m uint64) uint64 {
	z := (m ^ (m << 6)) & 0b0100010001000100010000000100010001000100010000000
	m ^= z | (z >> 6)
	z = (m ^ (m << 12)) & 0b0010001000100000000000000010001000100000000000000
	m ^= z | (z >> 12)
	z = (m ^ (m << 18)) & 0b0001000000000000000000000001000000000000000000000
	m ^= z | (z >> 18)
	z = (m ^ (m << 24)) & 0b0000111000011100001110000000000000000000000000000
	m ^= z | (z >> 24)
	return m
}

// flip reverses the row order, (c, r) -> (c, 6-r).
//
// Rows 0, 1 and 4 are gathered into the positions of rows 6, 5 and 2
// with one multiplication, XORed with the rows they replace, and the
// difference is carried back down with a second multiplication. The
// final XOR swaps both halves; row 3 is never touched.
func flip(m uint64) uint64 {
	p := m & 0x00000007f0003fff
	p = (p * 0x0200080000000002) >> 15
	p &= 0x0001fff8001fc000

	q := (m & 0x0001fff8001fc000) ^ p

	p = q >> 14
	p = (p * 0x0200000000008002) >> 29
	p &= 0x00000007f0003fff

	return m ^ (p | q)
}

// mirror reverses the column order, (c, r) -> (6-c, r).
func mirror(m uint64) uint64 {
	z := m & column3
	for i := uint(0); i < 3; i++ {
		z |= (m & (column0 << i)) << (6 - i*2)
		z |= (m & (column6 >> i)) >> (6 - i*2)
	}
	return z
}

// lowestRow returns the first row holding a bit of m, or Size if m
// is zero.
func lowestRow(m uint64) int {
	return bits.TrailingZeros64(m|1<<Cells) / Size
}

// lowestColumn returns the first column holding a bit of m, or Size
// if m is zero.
func lowestColumn(m uint64) int {
	return lowestRow(transpose(m))
}
