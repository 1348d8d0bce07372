package sim

import (
	"github.com/tinygo-org/cellterm/font"
)

// Cell classifications returned by Panel.Cell.
const (
	CellCursor  = -1
	CellUnknown = -2
)

// Cell identifies what is drawn in character cell (row, col): a glyph index
// from f, CellCursor for a solid red block, or CellUnknown.
func (p *Panel) Cell(f *font.Table, row, col int) int {
	x0, y0 := col*font.Width, row*font.Height
	cursor := true
	var g font.Glyph
	for r := 0; r < font.Height; r++ {
		for c := 0; c < font.Width; c++ {
			px := p.Pixel(x0+c, y0+r)
			if px != (Pixel{R: 0xFF}) {
				cursor = false
			}
			switch px {
			case Pixel{G: 0xFF}:
				g[c] |= 1 << uint(r)
			case Pixel{}, Pixel{R: 0xFF}:
			default:
				return CellUnknown
			}
		}
	}
	if cursor {
		return CellCursor
	}
	for i := range f {
		if f[i] == g {
			return i
		}
	}
	return CellUnknown
}

// Rune returns the character a cell classification is shown as: glyphs are
// ASCII 64 plus their index, glyph 0 is a space.
func Rune(cell int) rune {
	switch {
	case cell == CellCursor:
		return '█'
	case cell == 0:
		return ' '
	case cell > 0 && cell < font.Glyphs:
		return rune('@' + cell)
	}
	return '?'
}

// Text decodes a rows by cols character grid into one string per row.
func (p *Panel) Text(f *font.Table, rows, cols int) []string {
	lines := make([]string, rows)
	buf := make([]rune, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			buf[col] = Rune(p.Cell(f, row, col))
		}
		lines[row] = string(buf)
	}
	return lines
}
