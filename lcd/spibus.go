package lcd

import "tinygo.org/x/drivers"

// SPIBus adapts a drivers.SPI, such as machine.SPI0 or a PIO backed SPI, to
// Bus. Transfers on a drivers.SPI are complete when they return so the bus
// always reports itself drained.
type SPIBus struct {
	spi drivers.SPI
	err error
}

// NewSPIBus returns a Bus transmitting on spi.
func NewSPIBus(spi drivers.SPI) *SPIBus {
	return &SPIBus{spi: spi}
}

// Transmit sends b and discards the byte clocked in.
func (b *SPIBus) Transmit(c byte) {
	_, err := b.spi.Transfer(c)
	if err != nil && b.err == nil {
		b.err = err
	}
}

// TxEmpty always returns true.
func (b *SPIBus) TxEmpty() bool { return true }

// Busy always returns false.
func (b *SPIBus) Busy() bool { return false }

// Err returns the first transfer error seen, if any.
func (b *SPIBus) Err() error { return b.err }
