//go:build tinygo && stm32f4

package stm32f4

import (
	"device/stm32"
	"unsafe"
)

// Peripheral handles, one per hardware block.
var (
	RCC0 = &RCC{hw: (*rccHW)(unsafe.Pointer(stm32.RCC))}

	GPIOA = &GPIO{hw: (*gpioHW)(unsafe.Pointer(stm32.GPIOA))}
	GPIOB = &GPIO{hw: (*gpioHW)(unsafe.Pointer(stm32.GPIOB))}
	GPIOC = &GPIO{hw: (*gpioHW)(unsafe.Pointer(stm32.GPIOC))}
	GPIOD = &GPIO{hw: (*gpioHW)(unsafe.Pointer(stm32.GPIOD))}
	GPIOE = &GPIO{hw: (*gpioHW)(unsafe.Pointer(stm32.GPIOE))}
	GPIOF = &GPIO{hw: (*gpioHW)(unsafe.Pointer(stm32.GPIOF))}
	GPIOG = &GPIO{hw: (*gpioHW)(unsafe.Pointer(stm32.GPIOG))}

	USART1 = &USART{hw: (*usartHW)(unsafe.Pointer(stm32.USART1))}

	SPI5 = &SPI{hw: (*spiHW)(unsafe.Pointer(stm32.SPI5))}
)

// Register block sizes from the reference manual. rccHW stops after
// APB2ENR. A layout slip fails the build: the index is out of range when
// a size grows and overflows when it shrinks.
func _() {
	var x [1]struct{}
	_ = x[unsafe.Sizeof(rccHW{})-0x48]
	_ = x[unsafe.Sizeof(gpioHW{})-0x28]
	_ = x[unsafe.Sizeof(usartHW{})-0x1C]
	_ = x[unsafe.Sizeof(spiHW{})-0x24]
}
