package sim

import (
	"testing"

	"github.com/tinygo-org/cellterm/font"
	"github.com/tinygo-org/cellterm/lcd"
)

func newDevice() (*lcd.Device, *Panel) {
	p := NewPanel()
	return lcd.New(p, p.DC(), p.CS()), p
}

func TestPanelInit(t *testing.T) {
	dev, p := newDevice()
	if p.Awake() || p.On() {
		t.Fatal("panel must start asleep and off")
	}
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	if !p.Awake() || !p.On() {
		t.Error("Init did not wake the panel and turn it on")
	}
	if p.MADCTL() != 0xE0 {
		t.Errorf("MADCTL mismatch got!=expected: %#x != 0xe0", p.MADCTL())
	}
	if w, h := p.Size(); w != lcd.Width || h != lcd.Height {
		t.Errorf("size mismatch got!=expected: %dx%d != %dx%d", w, h, lcd.Width, lcd.Height)
	}
}

func TestPanelDropsWithoutChipSelect(t *testing.T) {
	p := NewPanel()
	p.DC().Low()
	p.Transmit(lcd.DISPON)
	if p.On() || p.Stats().Dropped != 1 {
		t.Errorf("byte with chip-select high must be ignored, stats %+v", p.Stats())
	}
}

func TestPanelWindowFill(t *testing.T) {
	dev, p := newDevice()
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetWindow(10, 11, 20, 21); err != nil {
		t.Fatal(err)
	}
	if c0, c1, r0, r1 := p.Window(); c0 != 10 || c1 != 11 || r0 != 20 || r1 != 21 {
		t.Fatalf("window mismatch: %d..%d %d..%d", c0, c1, r0, r1)
	}
	if err := dev.BeginWrite(); err != nil {
		t.Fatal(err)
	}
	// Row major: (10,20) (11,20) (10,21) (11,21).
	dev.WritePixel(1, 2, 3)
	dev.WritePixel(4, 5, 6)
	dev.WritePixel(7, 8, 9)
	dev.WritePixel(10, 11, 12)
	expected := map[[2]int]Pixel{
		{10, 20}: {B: 1, G: 2, R: 3},
		{11, 20}: {B: 4, G: 5, R: 6},
		{10, 21}: {B: 7, G: 8, R: 9},
		{11, 21}: {B: 10, G: 11, R: 12},
	}
	for pos, px := range expected {
		if got := p.Pixel(pos[0], pos[1]); got != px {
			t.Errorf("pixel %v mismatch got!=expected: %+v != %+v", pos, got, px)
		}
	}
	// A fifth pixel wraps to the window origin.
	dev.WritePixel(0xAA, 0xBB, 0xCC)
	if got := p.Pixel(10, 20); got != (Pixel{B: 0xAA, G: 0xBB, R: 0xCC}) {
		t.Errorf("write pointer did not wrap, got %+v", got)
	}
}

func TestPanelOrientation(t *testing.T) {
	dev, p := newDevice()
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetWindow(0, 0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := dev.BeginWrite(); err != nil {
		t.Fatal(err)
	}
	dev.WritePixel(0, 0, 0xFF)
	// Swapped axes with both orders reversed puts the address space origin
	// in the far corner of the portrait GRAM.
	if got := p.Native(NativeWidth-1, NativeHeight-1); got != (Pixel{R: 0xFF}) {
		t.Errorf("origin not mapped to the far GRAM corner, got %+v", got)
	}
	if got := p.Native(0, 0); got != (Pixel{}) {
		t.Errorf("GRAM origin unexpectedly written: %+v", got)
	}
	for _, xy := range [][2]int{{-1, 0}, {NativeWidth, 0}, {0, NativeHeight}, {0, -1}} {
		if got := p.Native(xy[0], xy[1]); got != (Pixel{}) {
			t.Errorf("coordinate %v outside the GRAM read %+v", xy, got)
		}
	}
}

func TestPanelLatency(t *testing.T) {
	dev, p := newDevice()
	p.Latency = 3
	if err := dev.Command(lcd.DISPON); err != nil {
		t.Fatal(err)
	}
	if p.Busy() {
		t.Error("Command returned before the bus drained")
	}
}

func TestPanelClear(t *testing.T) {
	dev, p := newDevice()
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	scr := lcd.NewScreen(dev, nil)
	if err := scr.DrawCursor(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := dev.Clear(); err != nil {
		t.Fatal(err)
	}
	if p.Stats().Clipped != 0 {
		t.Errorf("clear wrote outside the GRAM: %+v", p.Stats())
	}
	if got := p.Cell(font.Default, 0, 0); got != 0 {
		t.Errorf("cell not cleared, got %d", got)
	}
}

func TestCellDecode(t *testing.T) {
	dev, p := newDevice()
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	scr := lcd.NewScreen(dev, nil)
	for g := 0; g < font.Glyphs; g++ {
		row, col := g/lcd.Columns+3, g%lcd.Columns
		if err := scr.DrawGlyph(row, col, byte(g)); err != nil {
			t.Fatal(err)
		}
		if got := p.Cell(font.Default, row, col); got != g {
			t.Errorf("glyph %d decoded as %d", g, got)
		}
	}
	if err := scr.DrawCursor(29, 52); err != nil {
		t.Fatal(err)
	}
	if got := p.Cell(font.Default, 29, 52); got != CellCursor {
		t.Errorf("cursor decoded as %d", got)
	}
	if Rune(1) != 'A' || Rune(26) != 'Z' || Rune(27) != '[' || Rune(0) != ' ' {
		t.Error("unexpected glyph runes")
	}
}
