package decimal64

import "math/bits"

// The unchecked operations are the fast path for operands that are
// already known to be in range. Add and Sub wrap with native uint64
// semantics, Mul and Div truncate the 128-bit intermediate to its low
// 64 bits, and Div panics on a zero divisor. None of them are
// appropriate for untrusted input; use the Checked variants there.

// Add returns d + o. Wraps on overflow.
func (d Decimal[S]) Add(o Decimal[S]) Decimal[S] {
	return FromRaw[S](d.unscaled + o.unscaled)
}

// Sub returns d - o. Wraps on underflow.
func (d Decimal[S]) Sub(o Decimal[S]) Decimal[S] {
	return FromRaw[S](d.unscaled - o.unscaled)
}

// Mul returns d * o, truncated toward zero to the scale. The product
// is computed in 128 bits and divided by the scale factor, so no
// precision is lost before the final truncation.
func (d Decimal[S]) Mul(o Decimal[S]) Decimal[S] {
	var s S

	factor := s.ScaleFactor()
	hi, lo := bits.Mul64(d.unscaled, o.unscaled)
	q, _ := bits.Div64(hi%factor, lo, factor)

	return FromRaw[S](q)
}

// Div returns d / o, truncated toward zero to the scale. The dividend
// is widened by the scale factor in 128 bits before dividing. Panics
// if o is zero.
func (d Decimal[S]) Div(o Decimal[S]) Decimal[S] {
	if o.unscaled == 0 {
		panic("division by zero")
	}

	var s S

	hi, lo := bits.Mul64(d.unscaled, s.ScaleFactor())
	q, _ := bits.Div64(hi%o.unscaled, lo, o.unscaled)

	return FromRaw[S](q)
}

// CheckedAdd returns d + o and true, or false on overflow.
func (d Decimal[S]) CheckedAdd(o Decimal[S]) (Decimal[S], bool) {
	sum, carry := bits.Add64(d.unscaled, o.unscaled, 0)
	if carry != 0 {
		return Decimal[S]{}, false
	}

	return FromRaw[S](sum), true
}

// CheckedSub returns d - o and true, or false if o > d. Negative
// values are not representable.
func (d Decimal[S]) CheckedSub(o Decimal[S]) (Decimal[S], bool) {
	diff, borrow := bits.Sub64(d.unscaled, o.unscaled, 0)
	if borrow != 0 {
		return Decimal[S]{}, false
	}

	return FromRaw[S](diff), true
}

// CheckedMul returns d * o truncated toward zero and true, or false
// if the scaled product does not fit in 64 bits.
func (d Decimal[S]) CheckedMul(o Decimal[S]) (Decimal[S], bool) {
	var s S

	factor := s.ScaleFactor()
	hi, lo := bits.Mul64(d.unscaled, o.unscaled)

	// The quotient fits in 64 bits only when hi < factor.
	if hi >= factor {
		return Decimal[S]{}, false
	}

	q, _ := bits.Div64(hi, lo, factor)

	return FromRaw[S](q), true
}

// CheckedDiv returns d / o truncated toward zero and true, or false
// if o is zero or the quotient does not fit in 64 bits.
func (d Decimal[S]) CheckedDiv(o Decimal[S]) (Decimal[S], bool) {
	if o.unscaled == 0 {
		return Decimal[S]{}, false
	}

	var s S

	hi, lo := bits.Mul64(d.unscaled, s.ScaleFactor())
	if hi >= o.unscaled {
		return Decimal[S]{}, false
	}

	q, _ := bits.Div64(hi, lo, o.unscaled)

	return FromRaw[S](q), true
}

// AddAssign adds o to d in place. Wraps on overflow.
func (d *Decimal[S]) AddAssign(o Decimal[S]) {
	d.unscaled += o.unscaled
}

// SubAssign subtracts o from d in place. Wraps on underflow.
func (d *Decimal[S]) SubAssign(o Decimal[S]) {
	d.unscaled -= o.unscaled
}
