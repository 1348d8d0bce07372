// Package mmio holds the primitives shared by every peripheral driver in this
// module: masked read-modify-write over memory mapped registers of any width,
// and busy-wait helpers that spin on a hardware status predicate.
//
// Register is satisfied by *volatile.Register8, *volatile.Register16 and
// *volatile.Register32 from TinyGo's runtime/volatile package, so drivers can
// hand their register blocks straight to these helpers.
package mmio

// Word is the set of register widths supported by the helpers in this package.
type Word interface {
	~uint8 | ~uint16 | ~uint32
}

// Register is a single memory mapped register of width T.
type Register[T Word] interface {
	Get() T
	Set(value T)
}

// WriteMasked replaces the bits selected by mask with the corresponding bits
// of value. Bits outside of mask keep their current value.
func WriteMasked[T Word](reg Register[T], mask, value T) {
	old := reg.Get()
	reg.Set((old &^ mask) | (value & mask))
}

// SetBits sets the given bits, leaving the rest untouched.
func SetBits[T Word](reg Register[T], bits T) {
	reg.Set(reg.Get() | bits)
}

// ClearBits clears the given bits, leaving the rest untouched.
func ClearBits[T Word](reg Register[T], bits T) {
	reg.Set(reg.Get() &^ bits)
}

// HasBits returns true if all of bits are set in the register.
func HasBits[T Word](reg Register[T], bits T) bool {
	return reg.Get()&bits == bits
}

// Field returns the value of a width-bit field at bit offset pos.
func Field[T Word](reg Register[T], pos, width uint8) T {
	mask := T(1)<<width - 1
	return (reg.Get() >> pos) & mask
}

// Memory is a plain in-memory register. It is used for host-side tests and
// emulated peripherals where no hardware backs the register.
type Memory[T Word] struct {
	Value T
	// Writes counts calls to Set.
	Writes int
}

// Get returns the stored value.
func (m *Memory[T]) Get() T { return m.Value }

// Set stores value.
func (m *Memory[T]) Set(value T) {
	m.Value = value
	m.Writes++
}
