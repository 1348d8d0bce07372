// Package stm32f4 has minimal drivers for the STM32F4 peripherals the
// terminal firmware needs: RCC clock gating, GPIO, a polled USART and a polled
// SPI master.
//
// Every driver works on a typed register block. On TinyGo the blocks overlay
// the device/stm32 peripherals of the STM32F429 (SPI5 is not present on the
// F407); elsewhere they are plain memory so the drivers can be exercised by
// tests.
package stm32f4
