package lcd

import (
	"errors"
	"testing"
	"time"

	"github.com/tinygo-org/cellterm/font"
)

type eventKind uint8

const (
	evDCLow eventKind = iota
	evDCHigh
	evCSLow
	evCSHigh
	evTx
	evPoll
)

type event struct {
	kind eventKind
	b    byte
}

// recorder is a Bus and both control lines, logging every call in order.
type recorder struct {
	events []event
	// stuck keeps Busy asserted forever.
	stuck bool
}

type recPin struct {
	r       *recorder
	low, hi eventKind
}

func (p recPin) High() { p.r.events = append(p.r.events, event{kind: p.hi}) }
func (p recPin) Low()  { p.r.events = append(p.r.events, event{kind: p.low}) }

func (r *recorder) Transmit(b byte) { r.events = append(r.events, event{kind: evTx, b: b}) }
func (r *recorder) TxEmpty() bool {
	r.events = append(r.events, event{kind: evPoll})
	return true
}
func (r *recorder) Busy() bool { return r.stuck }

func newRecorded() (*Device, *recorder) {
	r := &recorder{}
	dev := New(r, recPin{r: r, low: evDCLow, hi: evDCHigh}, recPin{r: r, low: evCSLow, hi: evCSHigh})
	return dev, r
}

// wire returns the transmitted bytes split into commands and data.
func (r *recorder) wire() (cmds []byte, data [][]byte) {
	dc := true
	for _, ev := range r.events {
		switch ev.kind {
		case evDCLow:
			dc = false
		case evDCHigh:
			dc = true
		case evTx:
			if !dc {
				cmds = append(cmds, ev.b)
				data = append(data, nil)
			} else {
				data[len(data)-1] = append(data[len(data)-1], ev.b)
			}
		}
	}
	return cmds, data
}

func TestCommandFraming(t *testing.T) {
	dev, r := newRecorded()
	if err := dev.Command(DISPON); err != nil {
		t.Fatal(err)
	}
	expected := []event{{kind: evDCLow}, {kind: evCSLow}, {kind: evTx, b: DISPON}, {kind: evPoll}, {kind: evCSHigh}}
	if len(r.events) != len(expected) {
		t.Fatalf("event count mismatch got!=expected: %d != %d (%v)", len(r.events), len(expected), r.events)
	}
	for i := range expected {
		if r.events[i] != expected[i] {
			t.Errorf("event %d mismatch got!=expected: %v != %v", i, r.events[i], expected[i])
		}
	}
}

func TestDataFraming(t *testing.T) {
	dev, r := newRecorded()
	dev.Data(0xAB)
	dev.Data(0xCD)
	for _, ev := range r.events {
		if ev.kind == evCSHigh {
			t.Error("Data released chip-select")
		}
		if ev.kind == evPoll {
			t.Error("Data waited for the bus to drain")
		}
	}
	_, data := (&recorder{events: append([]event{{kind: evDCLow}, {kind: evTx}}, r.events...)}).wire()
	if len(data[0]) != 2 || data[0][0] != 0xAB || data[0][1] != 0xCD {
		t.Errorf("unexpected data bytes %#v", data[0])
	}
}

func TestInit(t *testing.T) {
	dev, r := newRecorded()
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	cmds, data := r.wire()
	expectCmds := []byte{0x11, 0x29, 0x36}
	if string(cmds) != string(expectCmds) {
		t.Fatalf("command mismatch got!=expected: %#v != %#v", cmds, expectCmds)
	}
	if len(data[0]) != 0 || len(data[1]) != 0 {
		t.Error("sleep out and display on take no parameters")
	}
	if len(data[2]) != 1 || data[2][0] != 0xE0 {
		t.Errorf("MADCTL parameter mismatch got!=expected: %#v != 0xe0", data[2])
	}
}

func TestSetWindow(t *testing.T) {
	dev, r := newRecorded()
	if err := dev.SetWindow(0x0102, 0x013F, 0x00E8, 0x00EF); err != nil {
		t.Fatal(err)
	}
	cmds, data := r.wire()
	if string(cmds) != string([]byte{CASET, RASET}) {
		t.Fatalf("command mismatch: %#v", cmds)
	}
	expect := [][]byte{{0x01, 0x02, 0x01, 0x3F}, {0x00, 0xE8, 0x00, 0xEF}}
	for i := range expect {
		if string(data[i]) != string(expect[i]) {
			t.Errorf("window %d mismatch got!=expected: %#v != %#v", i, data[i], expect[i])
		}
	}
}

func TestCellWindows(t *testing.T) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			dev, r := newRecorded()
			scr := NewScreen(dev, nil)
			if err := scr.EraseCell(row, col); err != nil {
				t.Fatal(err)
			}
			cmds, data := r.wire()
			if string(cmds) != string([]byte{CASET, RASET, RAMWR}) {
				t.Fatalf("command mismatch at (%d,%d): %#v", row, col, cmds)
			}
			c0 := uint16(data[0][0])<<8 | uint16(data[0][1])
			c1 := uint16(data[0][2])<<8 | uint16(data[0][3])
			r0 := uint16(data[1][0])<<8 | uint16(data[1][1])
			r1 := uint16(data[1][2])<<8 | uint16(data[1][3])
			if int(c0) != 6*col || int(c1) != 6*col+5 || int(r0) != 8*row || int(r1) != 8*row+7 {
				t.Errorf("cell (%d,%d) window mismatch: cols %d..%d rows %d..%d", row, col, c0, c1, r0, r1)
			}
		}
	}
}

func TestCellWindowOutsideGrid(t *testing.T) {
	cells := [][2]int{{-1, 0}, {0, -1}, {Rows, 0}, {0, Columns}, {70000, 0}}
	for _, cell := range cells {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for cell %v", cell)
				}
			}()
			CellWindow(cell[0], cell[1])
		}()
	}
	// Bottom right still fits the panel.
	c0, c1, r0, r1 := CellWindow(Rows-1, Columns-1)
	if c1 >= Width || r1 >= Height || c0 != 312 || r0 != 232 {
		t.Errorf("last cell window mismatch: cols %d..%d rows %d..%d", c0, c1, r0, r1)
	}
}

func TestDrawGlyphPixels(t *testing.T) {
	for g := 0; g < font.Glyphs; g++ {
		dev, r := newRecorded()
		scr := NewScreen(dev, nil)
		if err := scr.DrawGlyph(3, 7, byte(g)); err != nil {
			t.Fatal(err)
		}
		_, data := r.wire()
		pixels := data[2]
		if len(pixels) != 3*font.Width*font.Height {
			t.Fatalf("glyph %d: expected %d payload bytes, got %d", g, 3*font.Width*font.Height, len(pixels))
		}
		for i := 0; i < font.Width*font.Height; i++ {
			row, col := i/font.Width, i%font.Width
			blue, green, red := pixels[3*i], pixels[3*i+1], pixels[3*i+2]
			var expectGreen byte
			if font.Default[g].Pixel(row, col) {
				expectGreen = 0xFF
			}
			if blue != 0 || red != 0 || green != expectGreen {
				t.Errorf("glyph %d pixel (%d,%d) mismatch got!=expected: %#x,%#x,%#x != 0,%#x,0",
					g, row, col, blue, green, red, expectGreen)
			}
		}
	}
}

func TestDrawCursor(t *testing.T) {
	dev, r := newRecorded()
	if err := NewScreen(dev, nil).DrawCursor(29, 52); err != nil {
		t.Fatal(err)
	}
	_, data := r.wire()
	pixels := data[2]
	if len(pixels) != 48*3 {
		t.Fatalf("expected 48 pixels, got %d bytes", len(pixels))
	}
	for i := 0; i < len(pixels); i += 3 {
		if pixels[i] != 0 || pixels[i+1] != 0 || pixels[i+2] != 0xFF {
			t.Fatalf("pixel %d is not solid red: %#v", i/3, pixels[i:i+3])
		}
	}
}

func TestCommandTimeout(t *testing.T) {
	dev, r := newRecorded()
	r.stuck = true
	dev.Configure(Config{Timeout: time.Millisecond})
	err := dev.Command(RAMWR)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	cmds, _ := r.wire()
	if len(cmds) != 1 || cmds[0] != RAMWR {
		t.Errorf("opcode must be transmitted before the wait, got %#v", cmds)
	}
	if last := r.events[len(r.events)-1]; last.kind != evCSHigh {
		t.Errorf("chip-select not released after timeout, last event %v", last)
	}
}

func TestCommandRetries(t *testing.T) {
	dev, r := newRecorded()
	r.stuck = true
	dev.Configure(Config{Retries: 3})
	if err := dev.Command(DISPON); !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	polls := 0
	for _, ev := range r.events {
		if ev.kind == evPoll {
			polls++
		}
	}
	if polls != 3 {
		t.Errorf("poll count mismatch got!=expected: %d != %d", polls, 3)
	}
}

type fakeSPI struct {
	sent []byte
	err  error
}

func (s *fakeSPI) Tx(w, r []byte) error {
	s.sent = append(s.sent, w...)
	return s.err
}

func (s *fakeSPI) Transfer(b byte) (byte, error) {
	s.sent = append(s.sent, b)
	return 0, s.err
}

func TestSPIBus(t *testing.T) {
	spi := &fakeSPI{}
	bus := NewSPIBus(spi)
	dev := New(bus, recPin{r: &recorder{}, low: evDCLow, hi: evDCHigh}, recPin{r: &recorder{}, low: evCSLow, hi: evCSHigh})
	if err := dev.SetWindow(0, 5, 0, 7); err != nil {
		t.Fatal(err)
	}
	expected := []byte{CASET, 0, 0, 0, 5, RASET, 0, 0, 0, 7}
	if string(spi.sent) != string(expected) {
		t.Errorf("bytes mismatch got!=expected: %#v != %#v", spi.sent, expected)
	}
	if bus.Err() != nil {
		t.Errorf("unexpected error %v", bus.Err())
	}
	spi.err = errors.New("spi fault")
	bus.Transmit(1)
	spi.err = errors.New("second fault")
	bus.Transmit(2)
	if bus.Err() == nil || bus.Err().Error() != "spi fault" {
		t.Errorf("expected first error to stick, got %v", bus.Err())
	}
}

func TestSPIBusErrorReachesCommand(t *testing.T) {
	fault := errors.New("spi fault")
	spi := &fakeSPI{}
	bus := NewSPIBus(spi)
	r := &recorder{}
	dev := New(bus, recPin{r: r, low: evDCLow, hi: evDCHigh}, recPin{r: r, low: evCSLow, hi: evCSHigh})
	scr := NewScreen(dev, nil)
	if err := scr.DrawCursor(0, 0); err != nil {
		t.Fatal(err)
	}

	// A failed pixel byte is reported by the next command.
	spi.err = fault
	dev.WritePixel(0, 0, 0xFF)
	spi.err = nil
	if err := scr.EraseCell(0, 0); !errors.Is(err, fault) {
		t.Errorf("expected %v from the next draw, got %v", fault, err)
	}
}
