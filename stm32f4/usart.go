package stm32f4

import "github.com/tinygo-org/cellterm/mmio"

type usartHW struct {
	SR   reg32
	DR   reg32
	BRR  reg32
	CR1  reg32
	CR2  reg32
	CR3  reg32
	GTPR reg32
}

// USART status and control bits.
const (
	usartSR_RXNE uint32 = 1 << 5
	usartSR_TC   uint32 = 1 << 6
	usartSR_TXE  uint32 = 1 << 7

	usartCR1_RE uint32 = 1 << 2
	usartCR1_TE uint32 = 1 << 3
	usartCR1_UE uint32 = 1 << 13
)

// USARTConfig configures a USART for 8N1 operation.
type USARTConfig struct {
	// BaudRate defaults to 115200.
	BaudRate uint32
	// Clock is the peripheral bus clock feeding the USART in Hz.
	Clock uint32
}

// USART is a polled serial port. Reads and writes block until the hardware
// is ready, without timeout.
type USART struct {
	hw *usartHW
}

// Configure sets the baud rate and enables the transmitter and receiver.
func (u *USART) Configure(cfg USARTConfig) {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = 115200
	}
	mmio.ClearBits[uint32](&u.hw.CR1, usartCR1_UE)
	// With 16x oversampling BRR holds the clock divider in 12.4 fixed point,
	// which is the rounded integer division.
	u.hw.BRR.Set((cfg.Clock + cfg.BaudRate/2) / cfg.BaudRate)
	u.hw.CR1.Set(usartCR1_UE | usartCR1_TE | usartCR1_RE)
}

func (u *USART) txEmpty() bool { return mmio.HasBits[uint32](&u.hw.SR, usartSR_TXE) }
func (u *USART) rxReady() bool { return mmio.HasBits[uint32](&u.hw.SR, usartSR_RXNE) }
func (u *USART) txDone() bool { return mmio.HasBits[uint32](&u.hw.SR, usartSR_TC) }

// WriteByte blocks until the transmit register is free and queues c.
func (u *USART) WriteByte(c byte) error {
	mmio.Spin(u.txEmpty)
	u.hw.DR.Set(uint32(c))
	return nil
}

// ReadByte blocks until a byte has been received.
func (u *USART) ReadByte() (byte, error) {
	mmio.Spin(u.rxReady)
	return byte(mmio.Field[uint32](&u.hw.DR, 0, 8)), nil
}

// Write sends p and waits for the last byte to leave the shift register, so
// it can back a log handler.
func (u *USART) Write(p []byte) (n int, err error) {
	for _, c := range p {
		if err := u.WriteByte(c); err != nil {
			return n, err
		}
		n++
	}
	mmio.Spin(u.txDone)
	return n, nil
}
