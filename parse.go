package bincalc

// The grammar, evaluated eagerly as it is parsed:
//
//	expr  := value (binop expr)*
//	value := literal | unaryop value | '(' expr ')'
//
// Precedence climbing resolves binary operators without one rule per
// precedence level: expr parses one value, then folds in binary operators
// whose precedence exceeds its floor, recursing with a raised floor for each
// right-hand side. Because evaluation is eager and no AST is kept, each
// recursive call hands its terminating operator back to its caller.

// maxDepth bounds value nesting (parentheses and unary prefixes) so that a
// pathological line produces a fault instead of exhausting the call stack.
const maxDepth = 512

type parser struct {
	scan    scanner
	enc     Encoding
	verbose bool
	// steps collects one trace line per operator application when verbose.
	steps []string
	depth int
}

// expr evaluates a (sub)expression whose binary operators all bind tighter
// than min. until is the sentinel that may legitimately end it: opClose
// inside parentheses, opEnd at the top level. The returned token is the
// operator that terminated the expression, which the caller continues with.
func (p *parser) expr(min int8, until op) (Value, opToken, error) {
	v, err := p.value()
	if err != nil {
		return Value{}, opToken{}, err
	}
	tok, err := p.scan.operator(binary, until)
	if err != nil {
		return Value{}, opToken{}, err
	}
	for {
		prec := opTable[tok.op].prec
		if prec <= min {
			return v, tok, nil
		}
		// The right side absorbs every continuation that binds tighter than
		// this operator, so equal-precedence chains fold left to right.
		rhs, next, err := p.expr(prec, until)
		if err != nil {
			return Value{}, opToken{}, err
		}
		v, err = p.apply2(tok, v, rhs)
		if err != nil {
			return Value{}, opToken{}, err
		}
		tok = next
	}
}

// value evaluates one value: a literal, a parenthesized expression, or a
// prefix unary operator applied to a value.
func (p *parser) value() (Value, error) {
	if p.depth >= maxDepth {
		return Value{}, &DepthError{Col: p.scan.pos}
	}
	p.depth++
	defer func() { p.depth-- }()
	v, err := p.scan.literal(p.enc)
	if err != nil {
		return Value{}, err
	}
	if !v.absent() {
		return v, nil
	}
	tok, err := p.scan.operator(unary, opNone)
	if err != nil {
		return Value{}, err
	}
	if tok.op == opOpen {
		v, _, err := p.expr(0, opClose)
		return v, err
	}
	rhs, err := p.value()
	if err != nil {
		return Value{}, err
	}
	return p.apply1(tok, rhs)
}
