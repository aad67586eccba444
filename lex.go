package bincalc

import (
	"math"
	"strconv"
	"strings"
)

// scanner is a cursor over one input line. The cursor only moves forward,
// except that a literal that fails its range check rolls back to the
// literal's start so the caller can report an exact position.
type scanner struct {
	src string
	pos int
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func hexVal(c byte) uint64 {
	switch {
	case c <= '9':
		return uint64(c - '0')
	case c <= 'F':
		return uint64(c-'A') + 10
	default:
		return uint64(c-'a') + 10
	}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// peek returns the byte at the cursor, or 0 at end of input.
func (s *scanner) peek() byte {
	return s.peekAt(0)
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

// operator scans the next operator whose arity matches ar, or the expected
// sentinel want. Table order is the tie-break. The end-of-input sentinel has
// no text and matches only the genuine end of the line.
func (s *scanner) operator(ar arity, want op) (opToken, error) {
	s.skipSpace()
	start := s.pos
	for o := opOpen; o < numOps; o++ {
		if opTable[o].arity != ar && o != want {
			continue
		}
		id := opTable[o].text
		if id == "" {
			if start == len(s.src) {
				return opToken{o, start}, nil
			}
			continue
		}
		if strings.HasPrefix(s.src[start:], id) {
			s.pos = start + len(id)
			return opToken{o, start}, nil
		}
	}
	wantClass := "operator"
	if ar == unary {
		wantClass = "value"
	}
	return opToken{opNone, start}, &SyntaxError{Col: start, Want: wantClass}
}

// literal scans a numeric literal for enc at the cursor. If nothing at the
// cursor begins a literal, the cursor is left unchanged (apart from skipped
// whitespace) and the absent value is returned, signaling the caller to try
// an operator instead.
func (s *scanner) literal(enc Encoding) (Value, error) {
	s.skipSpace()
	start := s.pos
	if s.peek() == 'x' && isHexDigit(s.peekAt(1)) {
		return s.hexLiteral(enc, start)
	}
	switch {
	case enc.Float():
		return s.floatLiteral(enc, start)
	case enc.Signed():
		return s.intLiteral(enc, start)
	default:
		return s.uintLiteral(enc, start)
	}
}

// hexLiteral scans "x" followed by hex digits. There is deliberately no "0x"
// form: a leading 0 would be ambiguous with a decimal literal. Leading zero
// digits don't count against the width.
func (s *scanner) hexLiteral(enc Encoding, start int) (Value, error) {
	s.pos++ // x
	for s.peek() == '0' {
		s.pos++
	}
	var bits uint64
	n := 0
	for isHexDigit(s.peek()) {
		if n == enc.hexDigits() {
			j := s.pos
			for j < len(s.src) && isHexDigit(s.src[j]) {
				j++
			}
			s.pos = start
			return Value{}, &RangeError{Col: start, Literal: s.src[start:j], Encoding: enc}
		}
		bits = bits<<4 | hexVal(s.peek())
		s.pos++
		n++
	}
	return uintValue(enc, bits), nil
}

func (s *scanner) intLiteral(enc Encoding, start int) (Value, error) {
	j := start
	if c := s.peek(); c == '+' || c == '-' {
		j++
	}
	k := j
	for k < len(s.src) && isDigit(s.src[k]) {
		k++
	}
	if k == j {
		return Value{}, nil
	}
	lit := s.src[start:k]
	n, err := strconv.ParseInt(lit, 10, enc.Bits())
	if err != nil {
		return Value{}, &RangeError{Col: start, Literal: lit, Encoding: enc}
	}
	s.pos = k
	return sintValue(enc, n), nil
}

func (s *scanner) uintLiteral(enc Encoding, start int) (Value, error) {
	if s.peek() == '-' && isDigit(s.peekAt(1)) {
		// A negative literal is out of range for an unsigned encoding no
		// matter its magnitude.
		k := start + 1
		for k < len(s.src) && isDigit(s.src[k]) {
			k++
		}
		return Value{}, &RangeError{Col: start, Literal: s.src[start:k], Encoding: enc}
	}
	j := start
	if s.peek() == '+' {
		j++
	}
	k := j
	for k < len(s.src) && isDigit(s.src[k]) {
		k++
	}
	if k == j {
		return Value{}, nil
	}
	n, err := strconv.ParseUint(s.src[j:k], 10, enc.Bits())
	if err != nil {
		return Value{}, &RangeError{Col: start, Literal: s.src[start:k], Encoding: enc}
	}
	s.pos = k
	return uintValue(enc, n), nil
}

// floatLiteral scans a decimal or scientific float literal, or inf/nan, and
// converts it with the native strconv conversion for the encoding's width.
// There is no range check: an overflowing literal converts to an infinity.
func (s *scanner) floatLiteral(enc Encoding, start int) (Value, error) {
	j := start
	neg := false
	if c := s.peek(); c == '+' || c == '-' {
		neg = c == '-'
		j++
	}
	if len(s.src)-j >= 3 {
		switch strings.ToLower(s.src[j : j+3]) {
		case "inf":
			s.pos = j + 3
			return floatValue(enc, math.Inf(sign(neg))), nil
		case "nan":
			s.pos = j + 3
			return floatValue(enc, math.NaN()), nil
		}
	}
	k := j
	digits := 0
	for k < len(s.src) && isDigit(s.src[k]) {
		k++
		digits++
	}
	if k < len(s.src) && s.src[k] == '.' {
		k++
		for k < len(s.src) && isDigit(s.src[k]) {
			k++
			digits++
		}
	}
	if digits == 0 {
		return Value{}, nil
	}
	if k < len(s.src) && (s.src[k] == 'e' || s.src[k] == 'E') {
		// An exponent marker counts only if at least one digit follows it;
		// otherwise it belongs to whatever comes after the literal.
		m := k + 1
		if m < len(s.src) && (s.src[m] == '+' || s.src[m] == '-') {
			m++
		}
		if m < len(s.src) && isDigit(s.src[m]) {
			for m < len(s.src) && isDigit(s.src[m]) {
				m++
			}
			k = m
		}
	}
	// The span is well-formed by construction; the only possible error is
	// range, which parses to an infinity we accept.
	f, _ := strconv.ParseFloat(s.src[start:k], enc.Bits())
	s.pos = k
	return floatValue(enc, f), nil
}

func sign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}
