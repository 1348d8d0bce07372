// Package font builds the fixed 32 glyph bitmap font drawn by the terminal.
//
// Glyphs are 6 pixels wide and 8 pixels tall and are stored column-major:
// one byte per column, bit r of a column byte is pixel row r (row 0 on top).
// Definitions are written as 8 strings of 6 characters where any character
// other than a space marks a lit pixel.
package font

import (
	"errors"
	"strconv"
)

// Glyph and font dimensions.
const (
	Width  = 6
	Height = 8
	// Glyphs is the number of glyphs in a Table. Input bytes select a glyph
	// modulo Glyphs.
	Glyphs = 32
)

// Glyph is a single column-major glyph bitmap.
type Glyph [Width]byte

// Pixel reports whether pixel (row, col) of the glyph is lit.
func (g Glyph) Pixel(row, col int) bool {
	return g[col]&(1<<uint(row)) != 0
}

// Table is an immutable glyph lookup table.
type Table [Glyphs]Glyph

// Glyph returns the glyph selected by b, taken modulo Glyphs.
func (t *Table) Glyph(b byte) Glyph {
	return t[b%Glyphs]
}

var (
	errTooManyGlyphs = errors.New("font: more than 32 glyph definitions")
	errGlyphRows     = errors.New("font: glyph definition must have 8 rows")
	errGlyphCols     = errors.New("font: glyph row must be 6 columns wide")
)

// DefinitionError reports which glyph definition could not be encoded.
type DefinitionError struct {
	Index int
	Err   error
}

func (e *DefinitionError) Error() string {
	return "glyph " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *DefinitionError) Unwrap() error { return e.Err }

// Encode turns one glyph definition into its column-major bitmap.
func Encode(rows []string) (Glyph, error) {
	var g Glyph
	if len(rows) != Height {
		return g, errGlyphRows
	}
	for _, row := range rows {
		if len(row) != Width {
			return g, errGlyphCols
		}
	}
	for col := 0; col < Width; col++ {
		var b byte
		for row := 0; row < Height; row++ {
			if rows[row][col] != ' ' {
				b |= 1 << uint(row)
			}
		}
		g[col] = b
	}
	return g, nil
}

// Build encodes defs into a Table. Definition i becomes glyph i; glyphs
// without a definition are blank.
func Build(defs [][]string) (*Table, error) {
	if len(defs) > Glyphs {
		return nil, errTooManyGlyphs
	}
	t := new(Table)
	for i, def := range defs {
		g, err := Encode(def)
		if err != nil {
			return nil, &DefinitionError{Index: i, Err: err}
		}
		t[i] = g
	}
	return t, nil
}

// MustBuild is like Build but panics on a malformed definition. It is meant
// for package level tables so a bad definition fails at program start.
func MustBuild(defs [][]string) *Table {
	t, err := Build(defs)
	if err != nil {
		panic(err.Error())
	}
	return t
}
