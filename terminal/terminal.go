// Package terminal turns a raw input byte stream into glyph draws and cursor
// motion on a fixed, wrap-around character grid.
//
// Recognised input:
//
//	13 (CR)        erase the current cell, move to column 0 of the next row
//	27 (ESC) x y   erase the current cell, then move by y: 'A' up, 'B' down,
//	               'C' right, 'D' left, anything else stays put. x is read
//	               and ignored.
//	127 (DEL)      erase the current cell, move one column left
//	anything else  draw glyph b%32 at the current cell, move one column right
//
// The cursor wraps in both directions. Running off either end of a row
// carries into the adjacent row.
package terminal

import (
	"io"
	"log/slog"

	"github.com/tinygo-org/cellterm/font"
)

// Grid dimensions.
const (
	Rows    = 30
	Columns = 53
)

// Control bytes.
const (
	keyCR  = 13
	keyESC = 27
	keyDEL = 127

	arrowUp    = 'A'
	arrowDown  = 'B'
	arrowRight = 'C'
	arrowLeft  = 'D'
)

// Screen is what the terminal draws on. Implemented by *lcd.Screen.
type Screen interface {
	// DrawGlyph draws glyph index at (row, col).
	DrawGlyph(row, col int, index byte) error
	// DrawCursor marks (row, col) as the next input position.
	DrawCursor(row, col int) error
	// EraseCell blanks (row, col).
	EraseCell(row, col int) error
}

// State of the input decoder.
type State uint8

const (
	// Normal waits for the next byte with the cursor shown.
	Normal State = iota
	// EscapeSeen has consumed ESC and is collecting the two trailing bytes.
	EscapeSeen
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case EscapeSeen:
		return "escape"
	}
	return "unknown"
}

// Terminal echoes an input stream onto a Screen.
type Terminal struct {
	screen Screen
	in     io.ByteReader
	logger *slog.Logger

	row, col int
	state    State
	seq      [2]byte
	nseq     int
}

// New returns a Terminal with the cursor at (0, 0).
func New(screen Screen, in io.ByteReader) *Terminal {
	return &Terminal{
		screen: screen,
		in:     in,
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127), // Make temporary logger that does no logging.
		})),
	}
}

// SetLogger sets the logger used for debug output. Nil is ignored.
func (t *Terminal) SetLogger(logger *slog.Logger) {
	if logger != nil {
		t.logger = logger
	}
}

// Cursor returns the current cursor position.
func (t *Terminal) Cursor() (row, col int) { return t.row, t.col }

// State returns the decoder state.
func (t *Terminal) State() State { return t.state }

// Run processes input until the reader fails. It never returns while input
// keeps arriving. io.EOF ends Run with a nil error.
func (t *Terminal) Run() error {
	for {
		err := t.Step()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Step handles one input byte, or one complete escape sequence. The cursor is
// drawn before blocking on input and erased at the same cell once a byte
// arrives. A read error leaves the decoder state intact so a later Step
// resumes where this one stopped.
func (t *Terminal) Step() error {
	if t.state == Normal {
		if err := t.screen.DrawCursor(t.row, t.col); err != nil {
			return err
		}
		b, err := t.in.ReadByte()
		if err != nil {
			return err
		}
		if err := t.screen.EraseCell(t.row, t.col); err != nil {
			return err
		}
		if b != keyESC {
			err = t.handle(b)
			t.wrap()
			return err
		}
		t.state = EscapeSeen
		t.nseq = 0
	}

	for t.nseq < len(t.seq) {
		b, err := t.in.ReadByte()
		if err != nil {
			return err
		}
		t.seq[t.nseq] = b
		t.nseq++
	}
	t.state = Normal
	err := t.escape(t.seq[1])
	t.wrap()
	return err
}

func (t *Terminal) handle(b byte) error {
	switch b {
	case keyCR:
		if err := t.screen.EraseCell(t.row, t.col); err != nil {
			return err
		}
		t.row++
		t.col = 0
	case keyDEL:
		if err := t.screen.EraseCell(t.row, t.col); err != nil {
			return err
		}
		t.col--
	default:
		if err := t.screen.DrawGlyph(t.row, t.col, b%font.Glyphs); err != nil {
			return err
		}
		t.col++
	}
	return nil
}

func (t *Terminal) escape(final byte) error {
	if err := t.screen.EraseCell(t.row, t.col); err != nil {
		return err
	}
	switch final {
	case arrowUp:
		t.row--
	case arrowDown:
		t.row++
	case arrowRight:
		t.col++
	case arrowLeft:
		t.col--
	default:
		t.logger.Debug("terminal:escape ignored", slog.Int("first", int(t.seq[0])), slog.Int("final", int(final)))
	}
	return nil
}

// wrap brings the cursor back on the grid. The column moves by at most one
// per call, so an out of range column is exactly -1 or Columns and carries a
// single row.
func (t *Terminal) wrap() {
	if t.col >= Columns {
		t.row++
	}
	if t.col < 0 {
		t.row--
	}
	t.row = mod(t.row, Rows)
	t.col = mod(t.col, Columns)
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
