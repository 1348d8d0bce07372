package lcd

import (
	"github.com/tinygo-org/cellterm/font"
)

// Character grid dimensions.
const (
	Rows    = Height / font.Height // 30
	Columns = Width / font.Width   // 53
)

const badCell = "lcd: cell outside the character grid"

// CellWindow returns the inclusive pixel rectangle covered by a character
// cell. row must be in [0, Rows) and col in [0, Columns), it panics
// otherwise. The Screen methods share this range.
func CellWindow(row, col int) (colStart, colEnd, rowStart, rowEnd uint16) {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		panic(badCell)
	}
	colStart = uint16(col * font.Width)
	rowStart = uint16(row * font.Height)
	return colStart, colStart + font.Width - 1, rowStart, rowStart + font.Height - 1
}

// Screen draws character cells on a Device: glyph strokes in green on black,
// the cursor as a solid red block.
type Screen struct {
	dev  *Device
	font *font.Table
}

// NewScreen returns a Screen drawing glyphs from f. A nil f selects
// font.Default.
func NewScreen(dev *Device, f *font.Table) *Screen {
	if f == nil {
		f = font.Default
	}
	return &Screen{dev: dev, font: f}
}

func (s *Screen) beginCell(row, col int) error {
	c0, c1, r0, r1 := CellWindow(row, col)
	if err := s.dev.SetWindow(c0, c1, r0, r1); err != nil {
		return err
	}
	return s.dev.BeginWrite()
}

// DrawGlyph draws glyph index, taken modulo font.Glyphs, at (row, col).
func (s *Screen) DrawGlyph(row, col int, index byte) error {
	if err := s.beginCell(row, col); err != nil {
		return err
	}
	g := s.font.Glyph(index)
	for r := 0; r < font.Height; r++ {
		for c := 0; c < font.Width; c++ {
			var green byte
			if g.Pixel(r, c) {
				green = 0xFF
			}
			s.dev.WritePixel(0, green, 0)
		}
	}
	return nil
}

// DrawCursor fills (row, col) with solid red.
func (s *Screen) DrawCursor(row, col int) error {
	if err := s.beginCell(row, col); err != nil {
		return err
	}
	for i := 0; i < font.Width*font.Height; i++ {
		s.dev.WritePixel(0, 0, 0xFF)
	}
	return nil
}

// EraseCell draws the blank glyph at (row, col).
func (s *Screen) EraseCell(row, col int) error {
	return s.DrawGlyph(row, col, 0)
}
