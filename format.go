package bincalc

import (
	"strconv"
	"strings"
)

// FormatDec renders v as its natural decimal text: signed, unsigned, or
// shortest round-trip float depending on the encoding. Each call returns an
// independent string.
func FormatDec(v Value) string {
	switch {
	case v.enc.Float():
		return strconv.FormatFloat(v.Float64(), 'g', -1, v.enc.Bits())
	case v.enc.Signed():
		return strconv.FormatInt(v.Int64(), 10)
	default:
		return strconv.FormatUint(v.bits, 10)
	}
}

// FormatHex renders v's raw bit pattern as lowercase hex, x-prefixed and
// zero-padded to the encoding's full width: 2, 4, 8, or 16 digits. Floats
// render their IEEE-754 bits, not a decimal form.
func FormatHex(v Value) string {
	digits := v.enc.hexDigits()
	s := strconv.FormatUint(v.bits, 16)
	var b strings.Builder
	b.Grow(1 + digits)
	b.WriteByte('x')
	for i := len(s); i < digits; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
	return b.String()
}
