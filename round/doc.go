// Package round provides pluggable tick-size rounding policies.
//
// A policy snaps a value to a multiple of a tick size. For example a
// price of 1.0563 at a tick size of 0.01 becomes 1.06 under HalfUp,
// 1.05 under Floor, and 1.06 under Ceil.
//
// Policies operate on raw unscaled integers so that they are
// independent of any particular scale. The decimal type's Round
// method handles the scale bookkeeping and delegates here.
package round
