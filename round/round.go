package round

// Policy snaps an unscaled value to a multiple of an unscaled tick
// size. Policies are stateless; both arguments must share a scale,
// which the decimal type enforces before delegating here.
//
// The tick must be nonzero. A zero tick is a division by zero.
type Policy interface {
	Round(value, tick uint64) uint64
}

// HalfUp rounds to the nearest multiple of tick; exact half ticks
// round up. For example 0.125 at tick 0.01 rounds to 0.13.
type HalfUp struct{}

func (HalfUp) Round(value, tick uint64) uint64 {
	// tick%2 keeps an odd tick's true half value rounding up
	// instead of being lost to integer truncation.
	half := tick/2 + tick%2

	return (value + half) / tick * tick
}

// Floor rounds down to a multiple of tick. For example 0.129 at tick
// 0.01 rounds to 0.12.
type Floor struct{}

func (Floor) Round(value, tick uint64) uint64 {
	return value / tick * tick
}

// Ceil rounds up to a multiple of tick unless value is already an
// exact multiple. For example 0.121 at tick 0.01 rounds to 0.13.
type Ceil struct{}

func (Ceil) Round(value, tick uint64) uint64 {
	return (value + tick - 1) / tick * tick
}
