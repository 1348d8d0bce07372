//go:build !tinygo

package stm32f4

import "github.com/tinygo-org/cellterm/mmio"

type reg32 = mmio.Memory[uint32]
