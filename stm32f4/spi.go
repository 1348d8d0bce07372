package stm32f4

import "github.com/tinygo-org/cellterm/mmio"

type spiHW struct {
	CR1     reg32
	CR2     reg32
	SR      reg32
	DR      reg32
	CRCPR   reg32
	RXCRCR  reg32
	TXCRCR  reg32
	I2SCFGR reg32
	I2SPR   reg32
}

const (
	spiCR1_CPHA uint32 = 1 << 0
	spiCR1_CPOL uint32 = 1 << 1
	spiCR1_MSTR uint32 = 1 << 2
	spiCR1_BR   uint32 = 0b111 << 3
	spiCR1_SPE  uint32 = 1 << 6
	spiCR1_SSI  uint32 = 1 << 8
	spiCR1_SSM  uint32 = 1 << 9

	spiSR_RXNE uint32 = 1 << 0
	spiSR_TXE  uint32 = 1 << 1
	spiSR_BSY  uint32 = 1 << 7
)

// SPIConfig configures a SPI master.
type SPIConfig struct {
	// Prescaler divides the bus clock by 2<<Prescaler, 0 to 7.
	Prescaler uint8
	// Mode is the SPI mode, CPOL in bit 1 and CPHA in bit 0.
	Mode uint8
}

// SPI is a polled, transmit only SPI master with software slave management.
// It implements lcd.Bus.
type SPI struct {
	hw *spiHW
}

// Configure sets up the peripheral as an 8-bit, MSB first master and enables
// it.
func (s *SPI) Configure(cfg SPIConfig) {
	if cfg.Prescaler > 7 {
		cfg.Prescaler = 7
	}
	// BR and the clock mode may only change while the peripheral is off.
	mmio.ClearBits[uint32](&s.hw.CR1, spiCR1_SPE)
	cr1 := spiCR1_MSTR | spiCR1_SSM | spiCR1_SSI | uint32(cfg.Prescaler)<<3
	if cfg.Mode&0b10 != 0 {
		cr1 |= spiCR1_CPOL
	}
	if cfg.Mode&0b01 != 0 {
		cr1 |= spiCR1_CPHA
	}
	s.hw.CR1.Set(cr1)
	mmio.SetBits[uint32](&s.hw.CR1, spiCR1_SPE)
}

// Transmit waits for room in the transmit buffer and queues b. It returns
// while b may still be shifting out.
func (s *SPI) Transmit(b byte) {
	mmio.Spin(s.TxEmpty)
	s.hw.DR.Set(uint32(b))
}

// TxEmpty reports whether the transmit buffer is empty.
func (s *SPI) TxEmpty() bool {
	return mmio.HasBits[uint32](&s.hw.SR, spiSR_TXE)
}

// Busy reports whether a transfer is in progress.
func (s *SPI) Busy() bool {
	return mmio.HasBits[uint32](&s.hw.SR, spiSR_BSY)
}
