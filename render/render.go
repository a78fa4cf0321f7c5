/*
Package render draws zone boards as text, in the same layout the console
driver uses: a bordered grid with the top row first.
*/
package render

import (
	"strings"

	"github.com/bodgit/zone7/board"
	"github.com/bodgit/zone7/cell"
)

// Glyphs holds the strings drawn for each kind of cell
type Glyphs struct {
	Empty      string
	Black      string
	White      string
	Irrelevant string
}

var (
	// DefaultGlyphs draws stones as filled and hollow circles and leaves
	// cells outside of the zone blank
	DefaultGlyphs = Glyphs{
		Empty:      "·",
		Black:      "●",
		White:      "○",
		Irrelevant: "\u00a0",
	}
	// ASCIIGlyphs is for terminals without Unicode support
	ASCIIGlyphs = Glyphs{
		Empty:      ".",
		Black:      "x",
		White:      "o",
		Irrelevant: " ",
	}
)

func (g Glyphs) glyph(s cell.State) string {
	switch s {
	case cell.Empty:
		return g.Empty
	case cell.Black:
		return g.Black
	case cell.White:
		return g.White
	default:
		return g.Irrelevant
	}
}

// Options controls how a board is drawn. The zero value draws with
// DefaultGlyphs, without labels and with a space between cells
type Options struct {
	Glyphs  *Glyphs
	Labels  bool
	Compact bool
}

const columns = "ABCDEFG"

// Board draws p, one line per row with row 6 first. Unknown cells are
// drawn like cells outside of the zone
func Board(p board.Position, opts Options) string {
	g := DefaultGlyphs
	if opts.Glyphs != nil {
		g = *opts.Glyphs
	}

	border := "+-------------+"
	if opts.Compact {
		border = "+-------+"
	}

	var b strings.Builder
	if opts.Labels {
		b.WriteByte(' ')
	}
	b.WriteString(border)
	b.WriteByte('\n')

	for r := board.Size - 1; r >= 0; r-- {
		if opts.Labels {
			b.WriteByte(byte('1' + r))
		}
		b.WriteByte('|')
		for c := 0; c < board.Size; c++ {
			b.WriteString(g.glyph(p.Get(c, r)))
			if c != board.Size-1 && !opts.Compact {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}

	if opts.Labels {
		b.WriteByte(' ')
	}
	b.WriteString(border)
	b.WriteByte('\n')

	if opts.Labels {
		b.WriteString("  ")
		for c := 0; c < board.Size; c++ {
			b.WriteByte(columns[c])
			if !opts.Compact {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Bits writes m least significant bit first with a space after every
// row of seven, stopping at the highest set bit
func Bits(m uint64) string {
	var b strings.Builder
	n := 0
	for {
		if m&1 != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		if n++; n%board.Size == 0 {
			b.WriteByte(' ')
		}
		if m >>= 1; m == 0 {
			break
		}
	}
	return b.String()
}

// SideBySide joins two drawings line by line, separated by five spaces
// or by marker on line markerLine. Output stops at the end of the
// shorter drawing
func SideBySide(left, right, marker string, markerLine int) string {
	l := strings.Split(strings.TrimSuffix(left, "\n"), "\n")
	r := strings.Split(strings.TrimSuffix(right, "\n"), "\n")

	var b strings.Builder
	for i := 0; i < len(l) && i < len(r); i++ {
		padding := "     "
		if i == markerLine {
			padding = marker
		}
		b.WriteString(l[i])
		b.WriteString(padding)
		b.WriteString(r[i])
		b.WriteByte('\n')
	}
	return b.String()
}
