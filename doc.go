// Package decimal64 provides an unsigned fixed point base 10 decimal
// number backed by a single uint64.
//
// The equation for a decimal number is:
//
//	number = unscaled / 10 ^ scale
//
// Where number is the represented value, unscaled is a uint64, and
// scale is the fixed count of fractional digits. For example, at
// scale 2:
//
//	1.23 = 123 / 10^2
//
// The scale is a compile time parameter carried by a zero size marker
// type, one per supported scale U0 through U8. A Decimal[U8] and a
// Decimal[U2] are distinct types and never mix in arithmetic; the
// compiler rejects cross scale operations. The marker adds no
// storage, so every Decimal is exactly 8 bytes.
//
// Because every value of a given scale shares the same factor, the
// usual comparison operators on the unscaled integer order the
// represented values too, and == works directly on Decimal values.
//
// # Range
//
// The unscaled value spans the full uint64 range, so the integer part
// shrinks as the scale grows. At scale 8 the largest value is
// 184467440737.09551615; at scale 0 it is 18446744073709551615.
//
// # Arithmetic
//
// Arithmetic comes in checked and unchecked forms. The checked forms
// (CheckedAdd, CheckedSub, CheckedMul, CheckedDiv) report failure
// with a false second return instead of producing a wrong value and
// are the right choice for untrusted operands. The unchecked forms
// (Add, Sub, Mul, Div) assume the caller has already established that
// the operation stays in range: Add and Sub wrap, Mul and Div
// truncate their 128 bit intermediate, and Div panics on a zero
// divisor.
//
// Mul and Div truncate toward zero rather than round. Tick based
// rounding is a separate, explicit operation: see Round and the round
// subpackage.
package decimal64
