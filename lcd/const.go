package lcd

// Controller opcodes.
const (
	SWRESET byte = 0x01
	SLPIN   byte = 0x10
	SLPOUT  byte = 0x11
	DISPOFF byte = 0x28
	DISPON  byte = 0x29
	CASET   byte = 0x2A
	RASET   byte = 0x2B
	RAMWR   byte = 0x2C
	MADCTL  byte = 0x36
)

// MADCTL parameter bits.
const (
	ROW_ORDER   uint8 = 0b10000000 // AKA "MY"
	COL_ORDER   uint8 = 0b01000000 // AKA "MX"
	SWAP_XY     uint8 = 0b00100000 // AKA "MV"
	SCAN_ORDER  uint8 = 0b00010000
	RGB_BGR     uint8 = 0b00001000
	HORIZ_ORDER uint8 = 0b00000100
)

// Orientation is the MADCTL value sent by Init. It puts the 240x320 panel in
// landscape for the way it is mounted on the board.
const Orientation = ROW_ORDER | COL_ORDER | SWAP_XY

// Addressable area once Orientation is applied.
const (
	Width  = 320
	Height = 240
)
