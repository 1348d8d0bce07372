//go:build tinygo

package stm32f4

import "runtime/volatile"

type reg32 = volatile.Register32
