package stm32f4

import "github.com/tinygo-org/cellterm/mmio"

const (
	badPin  = "stm32f4: invalid pin index"
	badPort = "stm32f4: invalid GPIO port"
	badAF   = "stm32f4: invalid alternate function"
)

type gpioHW struct {
	MODER   reg32
	OTYPER  reg32
	OSPEEDR reg32
	PUPDR   reg32
	IDR     reg32
	ODR     reg32
	BSRR    reg32
	LCKR    reg32
	AFR     [2]reg32
}

// PinMode is the 2-bit MODER setting of a pin.
type PinMode uint8

const (
	PinInput   PinMode = 0b00
	PinOutput  PinMode = 0b01
	PinAltFunc PinMode = 0b10
	PinAnalog  PinMode = 0b11
)

// Speed is the 2-bit OSPEEDR setting of a pin.
type Speed uint8

const (
	SpeedLow Speed = iota
	SpeedMedium
	SpeedHigh
	SpeedVeryHigh
)

// GPIO is one GPIO port.
type GPIO struct {
	hw *gpioHW
}

// SetMode configures pin as input, output, alternate function or analog.
func (g *GPIO) SetMode(pin uint8, mode PinMode) {
	if pin > 15 {
		panic(badPin)
	}
	shift := 2 * pin
	mmio.WriteMasked[uint32](&g.hw.MODER, 0b11<<shift, uint32(mode)<<shift)
}

// SetSpeed sets the output slew rate of pin.
func (g *GPIO) SetSpeed(pin uint8, speed Speed) {
	if pin > 15 {
		panic(badPin)
	}
	shift := 2 * pin
	mmio.WriteMasked[uint32](&g.hw.OSPEEDR, 0b11<<shift, uint32(speed)<<shift)
}

// SetAltFunc selects alternate function af (0-15) for pin and switches the
// pin to alternate function mode.
func (g *GPIO) SetAltFunc(pin, af uint8) {
	if pin > 15 {
		panic(badPin)
	}
	if af > 15 {
		panic(badAF)
	}
	shift := 4 * (pin % 8)
	mmio.WriteMasked[uint32](&g.hw.AFR[pin/8], 0xF<<shift, uint32(af)<<shift)
	g.SetMode(pin, PinAltFunc)
}

// SetHigh drives pin high. BSRR writes are atomic, no read is involved.
func (g *GPIO) SetHigh(pin uint8) {
	if pin > 15 {
		panic(badPin)
	}
	g.hw.BSRR.Set(1 << pin)
}

// SetLow drives pin low.
func (g *GPIO) SetLow(pin uint8) {
	if pin > 15 {
		panic(badPin)
	}
	g.hw.BSRR.Set(1 << (pin + 16))
}

// Pin returns an output line for pin, usable as an lcd.Pin.
func (g *GPIO) Pin(pin uint8) Pin {
	if pin > 15 {
		panic(badPin)
	}
	return Pin{port: g, num: pin}
}

// Pin is a single GPIO line.
type Pin struct {
	port *GPIO
	num  uint8
}

// Configure sets the line up as a push-pull output.
func (p Pin) Configure() {
	p.port.SetMode(p.num, PinOutput)
	p.port.SetSpeed(p.num, SpeedHigh)
}

// High drives the line high.
func (p Pin) High() { p.port.SetHigh(p.num) }

// Low drives the line low.
func (p Pin) Low() { p.port.SetLow(p.num) }
