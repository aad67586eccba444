package bincalc

import "math"

// Value is a number tagged with the encoding that gives its payload meaning.
// The payload is kept masked to the encoding's width: signed values are
// two's-complement in the low bits, floats are raw IEEE-754 bit patterns.
// The accessors interpret the payload per tag; reading through the wrong one
// is a caller bug, not memory reinterpretation.
//
// The zero Value is the absent value produced when no literal matches at the
// cursor. It carries no encoding and no payload.
type Value struct {
	enc  Encoding
	bits uint64
}

// Encoding returns the value's encoding tag.
func (v Value) Encoding() Encoding {
	return v.enc
}

// Bits returns the raw width-masked payload.
func (v Value) Bits() uint64 {
	return v.bits
}

// absent reports whether v marks "no literal here".
func (v Value) absent() bool {
	return v.enc == encNone
}

// Int64 returns the payload sign-extended from the encoding's width.
// Meaningful for signed integer encodings.
func (v Value) Int64() int64 {
	sh := 64 - v.enc.Bits()
	return int64(v.bits<<sh) >> sh
}

// Uint64 returns the payload zero-extended from the encoding's width.
func (v Value) Uint64() uint64 {
	return v.bits
}

// Float64 returns the payload decoded as the encoding's float format.
// Meaningful for float encodings.
func (v Value) Float64() float64 {
	if v.enc == F32 {
		return float64(math.Float32frombits(uint32(v.bits)))
	}
	return math.Float64frombits(v.bits)
}

// sintValue builds a signed integer value, truncating x to the width.
func sintValue(enc Encoding, x int64) Value {
	return Value{enc, uint64(x) & enc.mask()}
}

// uintValue builds an integer value from raw bits, truncating to the width.
func uintValue(enc Encoding, x uint64) Value {
	return Value{enc, x & enc.mask()}
}

// floatValue builds a float value, rounding f to the encoding's format.
func floatValue(enc Encoding, f float64) Value {
	if enc == F32 {
		return Value{enc, uint64(math.Float32bits(float32(f)))}
	}
	return Value{enc, math.Float64bits(f)}
}
