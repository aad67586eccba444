package bincalc

// Encoding selects the fixed-width representation shared by every value in
// one evaluation: two's-complement signed or unsigned integers at 8, 16, 32,
// or 64 bits, or IEEE-754 floats at 32 or 64 bits. The zero Encoding is
// reserved to mark absent values.
type Encoding int8

const (
	encNone Encoding = iota

	S8
	S16
	S32
	S64
	U8
	U16
	U32
	U64
	F32
	F64
)

var encodingNames = [...]string{
	S8:  "s8",
	S16: "s16",
	S32: "s32",
	S64: "s64",
	U8:  "u8",
	U16: "u16",
	U32: "u32",
	U64: "u64",
	F32: "f32",
	F64: "f64",
}

// ParseEncoding resolves a mode name like "s8" or "f64" to its encoding.
func ParseEncoding(name string) (Encoding, bool) {
	for e := S8; e <= F64; e++ {
		if encodingNames[e] == name {
			return e, true
		}
	}
	return encNone, false
}

func (e Encoding) valid() bool {
	return S8 <= e && e <= F64
}

// Bits returns the width of the encoding in bits.
func (e Encoding) Bits() int {
	switch e {
	case S8, U8:
		return 8
	case S16, U16:
		return 16
	case S32, U32, F32:
		return 32
	case S64, U64, F64:
		return 64
	default:
		panic("bincalc: invalid encoding")
	}
}

// Signed reports whether e is a signed integer encoding.
func (e Encoding) Signed() bool {
	return S8 <= e && e <= S64
}

// Unsigned reports whether e is an unsigned integer encoding.
func (e Encoding) Unsigned() bool {
	return U8 <= e && e <= U64
}

// Float reports whether e is a floating-point encoding.
func (e Encoding) Float() bool {
	return e == F32 || e == F64
}

// hexDigits is the fixed number of hex digits for values of this width.
func (e Encoding) hexDigits() int {
	return e.Bits() / 4
}

// mask is the bit mask covering the encoding's width.
func (e Encoding) mask() uint64 {
	if e.Bits() == 64 {
		return ^uint64(0)
	}
	return 1<<e.Bits() - 1
}

func (e Encoding) String() string {
	if !e.valid() {
		return "invalid"
	}
	return encodingNames[e]
}
