package decimal64

import (
	"math"
	"math/bits"

	"github.com/calebcase/decimal64/round"
)

// Decimal is a fixed point base 10 decimal number with S fractional
// digits. It wraps a single unscaled uint64; the represented value is
// unscaled / S.ScaleFactor(). The scale marker occupies no storage, so
// a Decimal is exactly 8 bytes for every scale.
//
// Decimals of different scales are distinct types. There is no
// cross-scale arithmetic.
type Decimal[S ScaleMetrics] struct {
	_        [0]S
	unscaled uint64
}

// FromRaw returns the decimal with the given unscaled value. No
// scaling is applied: the caller asserts that unscaled is already in
// units of 1/ScaleFactor.
func FromRaw[S ScaleMetrics](unscaled uint64) Decimal[S] {
	return Decimal[S]{unscaled: unscaled}
}

// Raw returns the unscaled value.
func (d Decimal[S]) Raw() uint64 {
	return d.unscaled
}

// Parse parses an ASCII decimal literal.
func Parse[S ScaleMetrics](s string) (Decimal[S], error) {
	return ParseBytes[S]([]byte(s))
}

// ParseBytes parses an ASCII decimal literal.
//
// The literal may have at most S fractional digits; more is an
// overflow, not a rounding. Signs, exponents, and grouping are not
// part of the grammar. Each '.' byte idempotently starts the
// fractional part, so "1.2.3" parses the same as "1.23"; this matches
// inputs accepted historically and is kept for compatibility.
func ParseBytes[S ScaleMetrics](input []byte) (Decimal[S], error) {
	var (
		s        S
		unscaled uint64
		frac     int
		count    int
	)

	for _, b := range input {
		switch {
		case b >= '0' && b <= '9':
			digit := uint64(b - '0')
			if unscaled > (math.MaxUint64-digit)/10 {
				return Decimal[S]{}, errOverflow(input)
			}
			unscaled = unscaled*10 + digit
			count += frac
		case b == '.':
			frac = 1
		default:
			return Decimal[S]{}, errInvalidCharacter(b)
		}
	}

	if count > int(s.Scale()) {
		return Decimal[S]{}, errOverflow(input)
	}

	hi, lo := bits.Mul64(unscaled, scaleFactors[int(s.Scale())-count])
	if hi != 0 {
		return Decimal[S]{}, errOverflow(input)
	}

	return FromRaw[S](lo), nil
}

// Split returns the integer and fractional parts of the unscaled
// value. The fractional part is in units of 1/ScaleFactor, so for
// example "123.45" at scale 6 splits into (123, 450000).
func (d Decimal[S]) Split() (integer, fraction uint64) {
	var s S
	return d.unscaled / s.ScaleFactor(), d.unscaled % s.ScaleFactor()
}

// Put formats the decimal into buf and returns the number of bytes
// written. The integer part is written without padding; if the scale
// is nonzero it is followed by '.' and exactly Scale fractional
// digits, zero padded. Output is pure ASCII.
//
// The buffer must be at least 32 bytes: 20 integer digits, the
// separator, and up to 8 fractional digits, with margin.
func (d Decimal[S]) Put(buf []byte) int {
	var s S

	integer, fraction := d.Split()
	pos := 0

	if integer == 0 {
		buf[pos] = '0'
		pos++
	} else {
		digits := 0
		for tmp := integer; tmp != 0; tmp /= 10 {
			digits++
		}
		pos += digits
		for idx, tmp := pos, integer; tmp != 0; tmp /= 10 {
			idx--
			buf[idx] = '0' + byte(tmp%10)
		}
	}

	if scale := s.Scale(); scale > 0 {
		buf[pos] = '.'
		pos++

		divisor := scaleFactors[scale-1]
		for i := uint8(0); i < scale; i++ {
			buf[pos] = '0' + byte(fraction/divisor)
			pos++
			fraction %= divisor
			divisor /= 10
		}
	}

	return pos
}

// Append appends the formatted decimal to buf and returns the
// extended buffer.
func (d Decimal[S]) Append(buf []byte) []byte {
	var tmp [32]byte
	n := d.Put(tmp[:])

	return append(buf, tmp[:n]...)
}

// String implements fmt.Stringer.
func (d Decimal[S]) String() string {
	var buf [32]byte
	n := d.Put(buf[:])

	return string(buf[:n])
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal[S]) MarshalText() ([]byte, error) {
	return d.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal[S]) UnmarshalText(text []byte) error {
	v, err := ParseBytes[S](text)
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// IsZero returns true if the decimal is zero.
func (d Decimal[S]) IsZero() bool {
	return d.unscaled == 0
}

// Cmp returns -1, 0, or +1 depending on whether d is less than, equal
// to, or greater than o. Both operands share a scale, so comparing
// unscaled values compares represented values.
func (d Decimal[S]) Cmp(o Decimal[S]) int {
	switch {
	case d.unscaled < o.unscaled:
		return -1
	case d.unscaled > o.unscaled:
		return 1
	}

	return 0
}

// Less returns true if d is less than o.
func (d Decimal[S]) Less(o Decimal[S]) bool {
	return d.unscaled < o.unscaled
}

// Round snaps the decimal to a multiple of tick using the given
// policy. The tick must be nonzero; a zero tick is a division by zero
// panic, not an error.
func (d Decimal[S]) Round(p round.Policy, tick Decimal[S]) Decimal[S] {
	return FromRaw[S](p.Round(d.unscaled, tick.unscaled))
}

// Zero returns 0 at scale S.
func Zero[S ScaleMetrics]() Decimal[S] {
	return Decimal[S]{}
}

// One returns 1 at scale S.
func One[S ScaleMetrics]() Decimal[S] { return ofUnits[S](1) }

// Two returns 2 at scale S.
func Two[S ScaleMetrics]() Decimal[S] { return ofUnits[S](2) }

// Three returns 3 at scale S.
func Three[S ScaleMetrics]() Decimal[S] { return ofUnits[S](3) }

// Four returns 4 at scale S.
func Four[S ScaleMetrics]() Decimal[S] { return ofUnits[S](4) }

// Five returns 5 at scale S.
func Five[S ScaleMetrics]() Decimal[S] { return ofUnits[S](5) }

// Six returns 6 at scale S.
func Six[S ScaleMetrics]() Decimal[S] { return ofUnits[S](6) }

// Seven returns 7 at scale S.
func Seven[S ScaleMetrics]() Decimal[S] { return ofUnits[S](7) }

// Eight returns 8 at scale S.
func Eight[S ScaleMetrics]() Decimal[S] { return ofUnits[S](8) }

// Nine returns 9 at scale S.
func Nine[S ScaleMetrics]() Decimal[S] { return ofUnits[S](9) }

// Ten returns 10 at scale S.
func Ten[S ScaleMetrics]() Decimal[S] { return ofUnits[S](10) }

// Max returns the largest representable decimal at scale S.
func Max[S ScaleMetrics]() Decimal[S] {
	return FromRaw[S](math.MaxUint64)
}

func ofUnits[S ScaleMetrics](n uint64) Decimal[S] {
	var s S

	return FromRaw[S](n * s.ScaleFactor())
}
