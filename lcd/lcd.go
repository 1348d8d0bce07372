// Package lcd drives an ILI9341 class display controller over SPI with
// separate data/command and chip-select lines.
//
// Commands are always flushed: the opcode is transmitted and the bus drained
// before chip-select is released. Data bytes are not flushed, chip-select
// stays asserted between them so a pixel burst runs at the speed of the bus'
// own transmit buffer. The next command resynchronizes.
package lcd

import (
	"errors"
	"time"

	"github.com/tinygo-org/cellterm/mmio"
)

// ErrTimeout is returned by commands when Config.Timeout or Config.Retries
// is set and the bus did not drain in time.
var ErrTimeout = errors.New("lcd: bus drain timeout")

// Bus is a byte oriented SPI transmitter.
type Bus interface {
	// Transmit queues b for transmission. It may return before b has been
	// shifted out.
	Transmit(b byte)
	// TxEmpty reports whether the transmit buffer is empty.
	TxEmpty() bool
	// Busy reports whether the bus is still shifting data out.
	Busy() bool
}

// Pin is an output line. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// errBus is implemented by buses that record transfer failures, such as
// SPIBus. Device checks it after every command.
type errBus interface {
	Err() error
}

// Config holds optional Device settings. The zero value waits forever for
// the bus to drain.
type Config struct {
	// Retries bounds the drain wait after every command by the number of
	// status polls. It takes precedence over Timeout.
	Retries int
	// Timeout bounds the drain wait after every command.
	Timeout time.Duration
	// Yield is called while waiting for the bus, e.g. runtime.Gosched.
	Yield func()
}

// Device is a display controller on a SPI bus.
type Device struct {
	bus  Bus
	dc   Pin
	cs   Pin
	wait mmio.Waiter
	buf  [4]byte
}

// New returns a Device that talks over bus. dc is low for commands and high
// for data, cs is active low.
func New(bus Bus, dc, cs Pin) *Device {
	return &Device{bus: bus, dc: dc, cs: cs}
}

// Configure applies cfg.
func (d *Device) Configure(cfg Config) {
	d.wait = mmio.Waiter{Retries: cfg.Retries, Timeout: cfg.Timeout, Yield: cfg.Yield}
}

func (d *Device) drained() bool {
	return d.bus.TxEmpty() && !d.bus.Busy()
}

// Command sends a single opcode and waits for the bus to drain before
// releasing chip-select. If the bus records transfer errors, the first one
// seen so far is returned, including those of earlier data bytes.
func (d *Device) Command(op byte) error {
	d.dc.Low()
	d.cs.Low()
	d.bus.Transmit(op)
	err := d.wait.Wait(d.drained)
	d.cs.High()
	if err != nil {
		return ErrTimeout
	}
	if eb, ok := d.bus.(errBus); ok {
		return eb.Err()
	}
	return nil
}

// Data sends one parameter or pixel byte. It neither waits for the bus nor
// releases chip-select.
func (d *Device) Data(b byte) {
	d.dc.High()
	d.cs.Low()
	d.bus.Transmit(b)
}

func (d *Device) command(op byte, data []byte) error {
	if err := d.Command(op); err != nil {
		return err
	}
	for _, b := range data {
		d.Data(b)
	}
	return nil
}

// SetWindow sets the inclusive column and row range that following memory
// writes fill.
func (d *Device) SetWindow(colStart, colEnd, rowStart, rowEnd uint16) error {
	d.buf = [4]byte{byte(colStart >> 8), byte(colStart), byte(colEnd >> 8), byte(colEnd)}
	if err := d.command(CASET, d.buf[:]); err != nil {
		return err
	}
	d.buf = [4]byte{byte(rowStart >> 8), byte(rowStart), byte(rowEnd >> 8), byte(rowEnd)}
	return d.command(RASET, d.buf[:])
}

// BeginWrite starts a memory write. Every data byte sent afterwards is pixel
// payload for the current window, row by row.
func (d *Device) BeginWrite() error {
	return d.Command(RAMWR)
}

// WritePixel sends one pixel. The controller expects blue first.
func (d *Device) WritePixel(blue, green, red byte) {
	d.Data(blue)
	d.Data(green)
	d.Data(red)
}

// Init wakes the controller, turns the display on and sets Orientation.
func (d *Device) Init() error {
	if err := d.Command(SLPOUT); err != nil {
		return err
	}
	if err := d.Command(DISPON); err != nil {
		return err
	}
	return d.command(MADCTL, []byte{Orientation})
}

// Clear fills the whole addressable area with black.
func (d *Device) Clear() error {
	if err := d.SetWindow(0, Width-1, 0, Height-1); err != nil {
		return err
	}
	if err := d.BeginWrite(); err != nil {
		return err
	}
	for i := 0; i < Width*Height; i++ {
		d.WritePixel(0, 0, 0)
	}
	return nil
}
