package stm32f4

import "github.com/tinygo-org/cellterm/mmio"

// rccHW is the reset and clock control register block up to APB2ENR.
type rccHW struct {
	CR       reg32
	PLLCFGR  reg32
	CFGR     reg32
	CIR      reg32
	AHB1RSTR reg32
	AHB2RSTR reg32
	AHB3RSTR reg32
	_        reg32
	APB1RSTR reg32
	APB2RSTR reg32
	_        [2]reg32
	AHB1ENR  reg32
	AHB2ENR  reg32
	AHB3ENR  reg32
	_        reg32
	APB1ENR  reg32
	APB2ENR  reg32
}

// APB2 peripheral clock enable bits.
const (
	APB2_USART1 uint32 = 1 << 4
	APB2_USART6 uint32 = 1 << 5
	APB2_SPI1   uint32 = 1 << 12
	APB2_SPI4   uint32 = 1 << 13
	APB2_SPI5   uint32 = 1 << 20
	APB2_SPI6   uint32 = 1 << 21
)

// RCC gates peripheral clocks.
type RCC struct {
	hw *rccHW
}

// EnableGPIO turns on the clock of a GPIO port. Port 0 is GPIOA.
func (rcc *RCC) EnableGPIO(port uint8) {
	if port > 10 {
		panic(badPort)
	}
	mmio.SetBits[uint32](&rcc.hw.AHB1ENR, 1<<port)
}

// EnableAPB2 turns on the clocks selected by bits, see the APB2_ constants.
func (rcc *RCC) EnableAPB2(bits uint32) {
	mmio.SetBits[uint32](&rcc.hw.APB2ENR, bits)
}
