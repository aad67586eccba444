package bincalc

import "math"

// apply1 applies a unary operator to a value using the value's encoding
// semantics, recording a trace line if verbose.
func (p *parser) apply1(tok opToken, v Value) (Value, error) {
	var r Value
	switch {
	case v.enc.Float():
		if tok.op != opNeg {
			return Value{}, &OperatorError{Col: tok.pos, Operator: opTable[tok.op].text, Encoding: v.enc}
		}
		r = floatValue(v.enc, -v.Float64())
	default:
		switch tok.op {
		case opNot:
			r = uintValue(v.enc, ^v.bits)
		case opNeg:
			// Width-modular negation; two's complement on the raw bits works
			// for signed and unsigned alike.
			r = uintValue(v.enc, -v.bits)
		default:
			panic("bincalc: unary apply of " + tok.op.String())
		}
	}
	p.trace1(tok.op, v, r)
	return r, nil
}

// apply2 applies a binary operator to two values, which must share one
// encoding, and records a trace line if verbose.
func (p *parser) apply2(tok opToken, l, r Value) (Value, error) {
	if l.enc != r.enc {
		return Value{}, &EncodingError{Col: tok.pos, Op: opTable[tok.op].text, Left: l.enc, Right: r.enc}
	}
	var v Value
	var err error
	switch {
	case l.enc.Float():
		v, err = applyFloat(tok, l, r)
	case l.enc.Signed():
		v, err = applySigned(tok, l, r)
	default:
		v, err = applyUnsigned(tok, l, r)
	}
	if err != nil {
		return Value{}, err
	}
	p.trace2(tok.op, l, r, v)
	return v, nil
}

// shiftAmount is the right operand's raw bit pattern wrapped at the width,
// as shifter hardware does.
func shiftAmount(r Value) uint64 {
	return r.bits & uint64(r.enc.Bits()-1)
}

func applySigned(tok opToken, l, r Value) (Value, error) {
	a, b := l.Int64(), r.Int64()
	var c int64
	switch tok.op {
	case opMul:
		c = a * b
	case opDiv:
		if b == 0 {
			return Value{}, &DomainError{Col: tok.pos, Op: "/"}
		}
		c = a / b
	case opMod:
		if b == 0 {
			return Value{}, &DomainError{Col: tok.pos, Op: "%"}
		}
		c = a % b
	case opAdd:
		c = a + b
	case opSub:
		c = a - b
	case opShl:
		c = a << shiftAmount(r)
	case opShr:
		// Arithmetic shift: a is sign-extended, so int64 shift preserves
		// the width's sign bit.
		c = a >> shiftAmount(r)
	case opAnd:
		c = a & b
	case opXor:
		c = a ^ b
	case opOr:
		c = a | b
	default:
		panic("bincalc: binary apply of " + tok.op.String())
	}
	return sintValue(l.enc, c), nil
}

func applyUnsigned(tok opToken, l, r Value) (Value, error) {
	a, b := l.bits, r.bits
	var c uint64
	switch tok.op {
	case opMul:
		c = a * b
	case opDiv:
		if b == 0 {
			return Value{}, &DomainError{Col: tok.pos, Op: "/"}
		}
		c = a / b
	case opMod:
		if b == 0 {
			return Value{}, &DomainError{Col: tok.pos, Op: "%"}
		}
		c = a % b
	case opAdd:
		c = a + b
	case opSub:
		c = a - b
	case opShl:
		c = a << shiftAmount(r)
	case opShr:
		c = a >> shiftAmount(r)
	case opAnd:
		c = a & b
	case opXor:
		c = a ^ b
	case opOr:
		c = a | b
	default:
		panic("bincalc: binary apply of " + tok.op.String())
	}
	return uintValue(l.enc, c), nil
}

// applyFloat handles the four float operators. Division by zero follows
// IEEE-754 and produces an infinity or NaN rather than a fault. The
// arithmetic runs at the encoding's own width so f32 rounds like hardware
// f32, not like f64 truncated afterward.
func applyFloat(tok opToken, l, r Value) (Value, error) {
	if l.enc == F32 {
		a, b := math.Float32frombits(uint32(l.bits)), math.Float32frombits(uint32(r.bits))
		var c float32
		switch tok.op {
		case opMul:
			c = a * b
		case opDiv:
			c = a / b
		case opAdd:
			c = a + b
		case opSub:
			c = a - b
		default:
			return Value{}, &OperatorError{Col: tok.pos, Operator: opTable[tok.op].text, Encoding: l.enc}
		}
		return uintValue(F32, uint64(math.Float32bits(c))), nil
	}
	a, b := math.Float64frombits(l.bits), math.Float64frombits(r.bits)
	var c float64
	switch tok.op {
	case opMul:
		c = a * b
	case opDiv:
		c = a / b
	case opAdd:
		c = a + b
	case opSub:
		c = a - b
	default:
		return Value{}, &OperatorError{Col: tok.pos, Operator: opTable[tok.op].text, Encoding: l.enc}
	}
	return uintValue(F64, math.Float64bits(c)), nil
}

// trace1 records a unary application, e.g. "~(5) = 250 (~x05 = xfa)".
func (p *parser) trace1(o op, v, r Value) {
	if !p.verbose {
		return
	}
	id := opTable[o].text
	p.steps = append(p.steps, id+"("+FormatDec(v)+") = "+FormatDec(r)+" ("+id+FormatHex(v)+" = "+FormatHex(r)+")")
}

// trace2 records a binary application, e.g. "2 + 3 = 5 (x02 + x03 = x05)".
func (p *parser) trace2(o op, l, r, v Value) {
	if !p.verbose {
		return
	}
	id := opTable[o].text
	p.steps = append(p.steps,
		FormatDec(l)+" "+id+" "+FormatDec(r)+" = "+FormatDec(v)+
			" ("+FormatHex(l)+" "+id+" "+FormatHex(r)+" = "+FormatHex(v)+")")
}

// Result is the outcome of evaluating one input line.
type Result struct {
	// Dec and Hex are the final value in both radices.
	Dec string
	Hex string
	// Steps holds one line per operator application, in evaluation order.
	// It is nil unless verbose evaluation was requested.
	Steps []string
}

// Evaluate parses and eagerly evaluates one line as an expression over enc.
// With verbose set, the result carries a trace line for every operator
// application; tracing never changes the computed value. Any returned error
// implements Fault, positioning the problem within line. Evaluate panics if
// enc is not one of the ten encodings.
func Evaluate(line string, enc Encoding, verbose bool) (*Result, error) {
	if !enc.valid() {
		panic("bincalc: invalid encoding")
	}
	p := parser{scan: scanner{src: line}, enc: enc, verbose: verbose}
	v, _, err := p.expr(0, opEnd)
	if err != nil {
		return nil, err
	}
	return &Result{Dec: FormatDec(v), Hex: FormatHex(v), Steps: p.steps}, nil
}
