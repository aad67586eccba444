// Package bincalc evaluates arithmetic and bitwise expressions with exact
// fixed-width machine semantics.
//
// A session fixes one encoding — s8 through s64, u8 through u64, f32, or
// f64 — and every value in an expression lives in that encoding. Integer
// arithmetic wraps at the width like the hardware it models; floats behave
// like native IEEE-754 at their width. Literals are decimal, or hex with an
// "x" prefix ("xff"), and are range-checked against the exact width.
// Results format in both radices, and verbose evaluation traces every
// intermediate step.
package bincalc
