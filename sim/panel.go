// Package sim emulates the display controller on the host so the drivers and
// the terminal can run without a board.
//
// Panel decodes the same wire traffic a real controller sees: bytes are only
// latched while chip-select is low, the data/command line selects between
// opcodes and parameters, and memory writes fill the current address window
// row by row, three bytes per pixel in blue, green, red order.
package sim

import (
	"image"
	"image/color"

	"github.com/tinygo-org/cellterm/lcd"
)

// Native GRAM size, portrait.
const (
	NativeWidth  = 240
	NativeHeight = 320
)

// Pixel is one GRAM entry.
type Pixel struct {
	R, G, B uint8
}

// Stats counts wire traffic seen by a Panel.
type Stats struct {
	Commands  int
	DataBytes int
	Pixels    int
	// Dropped counts bytes sent while chip-select was high.
	Dropped int
	// Clipped counts pixels that fell outside the GRAM.
	Clipped int
}

// Panel is an emulated controller. It implements lcd.Bus; DC and CS return
// its control lines.
type Panel struct {
	gram [NativeWidth * NativeHeight]Pixel

	// Latency is the number of Busy polls a transmitted byte keeps the bus
	// busy for.
	Latency int
	pending int

	dcHigh bool
	csHigh bool

	awake  bool
	on     bool
	madctl uint8

	cmd    byte
	nparam int
	params [4]byte

	colStart, colEnd uint16
	rowStart, rowEnd uint16
	col, row         uint16
	nsub             int
	sub              [3]byte

	stats Stats
}

// NewPanel returns a Panel in its reset state: asleep, display off, full
// window, chip-select released.
func NewPanel() *Panel {
	p := &Panel{}
	p.reset()
	return p
}

func (p *Panel) reset() {
	p.csHigh = true
	p.dcHigh = true
	p.awake = false
	p.on = false
	p.madctl = 0
	p.colStart, p.colEnd = 0, NativeWidth-1
	p.rowStart, p.rowEnd = 0, NativeHeight-1
	p.cmd = 0
	p.nparam = 0
}

// Line is one of the Panel's input lines.
type Line struct {
	level *bool
}

// High drives the line high.
func (l *Line) High() { *l.level = true }

// Low drives the line low.
func (l *Line) Low() { *l.level = false }

// DC returns the data/command line; low selects command.
func (p *Panel) DC() *Line { return &Line{level: &p.dcHigh} }

// CS returns the active low chip-select line.
func (p *Panel) CS() *Line { return &Line{level: &p.csHigh} }

// TxEmpty always returns true, bytes are decoded as soon as they arrive.
func (p *Panel) TxEmpty() bool { return true }

// Busy reports true for Latency polls after each transmitted byte.
func (p *Panel) Busy() bool {
	if p.pending > 0 {
		p.pending--
		return true
	}
	return false
}

// Transmit decodes one byte from the bus.
func (p *Panel) Transmit(b byte) {
	p.pending = p.Latency
	if p.csHigh {
		p.stats.Dropped++
		return
	}
	if !p.dcHigh {
		p.command(b)
		return
	}
	p.data(b)
}

func (p *Panel) command(op byte) {
	p.stats.Commands++
	p.cmd = op
	p.nparam = 0
	switch op {
	case lcd.SWRESET:
		p.reset()
	case lcd.SLPIN:
		p.awake = false
	case lcd.SLPOUT:
		p.awake = true
	case lcd.DISPOFF:
		p.on = false
	case lcd.DISPON:
		p.on = true
	case lcd.RAMWR:
		p.col, p.row = p.colStart, p.rowStart
		p.nsub = 0
	}
}

func (p *Panel) data(b byte) {
	p.stats.DataBytes++
	switch p.cmd {
	case lcd.CASET, lcd.RASET:
		if p.nparam >= len(p.params) {
			return
		}
		p.params[p.nparam] = b
		p.nparam++
		if p.nparam < len(p.params) {
			return
		}
		start := uint16(p.params[0])<<8 | uint16(p.params[1])
		end := uint16(p.params[2])<<8 | uint16(p.params[3])
		if p.cmd == lcd.CASET {
			p.colStart, p.colEnd = start, end
		} else {
			p.rowStart, p.rowEnd = start, end
		}
	case lcd.MADCTL:
		if p.nparam == 0 {
			p.madctl = b
		}
		p.nparam++
	case lcd.RAMWR:
		p.sub[p.nsub] = b
		p.nsub++
		if p.nsub < len(p.sub) {
			return
		}
		p.nsub = 0
		p.store(p.col, p.row, Pixel{B: p.sub[0], G: p.sub[1], R: p.sub[2]})
		p.advance()
	}
}

func (p *Panel) advance() {
	p.col++
	if p.col <= p.colEnd {
		return
	}
	p.col = p.colStart
	p.row++
	if p.row > p.rowEnd {
		p.row = p.rowStart
	}
}

// gramXY maps an address space coordinate to a physical GRAM coordinate
// using the current MADCTL setting.
func (p *Panel) gramXY(col, row int) (x, y int, ok bool) {
	x, y = col, row
	if p.madctl&lcd.SWAP_XY != 0 {
		x, y = row, col
	}
	if p.madctl&lcd.COL_ORDER != 0 {
		x = NativeWidth - 1 - x
	}
	if p.madctl&lcd.ROW_ORDER != 0 {
		y = NativeHeight - 1 - y
	}
	return x, y, inGRAM(x, y)
}

func inGRAM(x, y int) bool {
	return x >= 0 && x < NativeWidth && y >= 0 && y < NativeHeight
}

func (p *Panel) store(col, row uint16, px Pixel) {
	x, y, ok := p.gramXY(int(col), int(row))
	if !ok {
		p.stats.Clipped++
		return
	}
	p.stats.Pixels++
	p.gram[y*NativeWidth+x] = px
}

// Pixel returns the pixel at an address space coordinate, i.e. the same
// column and row a window on the controller would use.
func (p *Panel) Pixel(col, row int) Pixel {
	x, y, ok := p.gramXY(col, row)
	if !ok {
		return Pixel{}
	}
	return p.Native(x, y)
}

// Native returns the pixel at a physical GRAM coordinate. Coordinates
// outside the GRAM read as black.
func (p *Panel) Native(x, y int) Pixel {
	if !inGRAM(x, y) {
		return Pixel{}
	}
	return p.gram[y*NativeWidth+x]
}

// Size returns the address space size for the current MADCTL setting.
func (p *Panel) Size() (width, height int) {
	if p.madctl&lcd.SWAP_XY != 0 {
		return NativeHeight, NativeWidth
	}
	return NativeWidth, NativeHeight
}

// Awake reports whether the controller left sleep mode.
func (p *Panel) Awake() bool { return p.awake }

// On reports whether the display output is enabled.
func (p *Panel) On() bool { return p.on }

// MADCTL returns the memory access control setting.
func (p *Panel) MADCTL() uint8 { return p.madctl }

// Window returns the current address window.
func (p *Panel) Window() (colStart, colEnd, rowStart, rowEnd uint16) {
	return p.colStart, p.colEnd, p.rowStart, p.rowEnd
}

// Stats returns the traffic counters.
func (p *Panel) Stats() Stats { return p.stats }

// Image renders the address space view of the GRAM.
func (p *Panel) Image() *image.RGBA {
	w, h := p.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := p.Pixel(x, y)
			img.SetRGBA(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xFF})
		}
	}
	return img
}
