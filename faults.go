package bincalc

import "strconv"

// FaultKind classifies faults into the two families callers care about:
// parse faults (no valid token, bad structure, inapplicable operator) and
// range faults (a value outside the numeric domain of the encoding).
type FaultKind int8

const (
	FaultParse FaultKind = iota
	FaultRange
)

func (k FaultKind) String() string {
	switch k {
	case FaultParse:
		return "parse"
	case FaultRange:
		return "range"
	default:
		return "invalid"
	}
}

// Fault is an error with position information. Every error resulting from
// evaluating an input line implements Fault.
type Fault interface {
	error
	// Pos returns the 0-based byte offset into the input line at which the
	// fault was detected. For literal range faults this is the start of the
	// literal, so a caller can render an exact caret.
	Pos() int
	// Kind returns the fault family.
	Kind() FaultKind
}

// SyntaxError indicates that no valid token of the expected class was found
// at the cursor.
type SyntaxError struct {
	// Col is the position of the unexpected input.
	Col int
	// Want is the class of token the parser expected, "value" or "operator".
	Want string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "expected "+err.Want)
}

func (err *SyntaxError) Pos() int        { return err.Col }
func (err *SyntaxError) Kind() FaultKind { return FaultParse }

// OperatorError indicates an operator applied to an encoding that does not
// support it, e.g. ~ on a float.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator's literal text.
	Operator string
	// Encoding is the operand encoding that rejected it.
	Encoding Encoding
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" not applicable to "+err.Encoding.String())
}

func (err *OperatorError) Pos() int        { return err.Col }
func (err *OperatorError) Kind() FaultKind { return FaultParse }

// RangeError indicates a literal outside the representable range of the
// active encoding.
type RangeError struct {
	// Col is the position of the start of the literal.
	Col int
	// Literal is the offending literal text.
	Literal string
	// Encoding is the active encoding.
	Encoding Encoding
}

func (err *RangeError) Error() string {
	return errpos(err.Col, "literal "+strconv.Quote(err.Literal)+" out of range for "+err.Encoding.String())
}

func (err *RangeError) Pos() int        { return err.Col }
func (err *RangeError) Kind() FaultKind { return FaultRange }

// DomainError indicates integer division or modulus by zero.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator's literal text, "/" or "%".
	Op string
}

func (err *DomainError) Error() string {
	if err.Op == "%" {
		return errpos(err.Col, "modulus by zero")
	}
	return errpos(err.Col, "division by zero")
}

func (err *DomainError) Pos() int        { return err.Col }
func (err *DomainError) Kind() FaultKind { return FaultRange }

// EncodingError indicates a binary operator applied to operands of two
// different encodings. It cannot arise from Evaluate, which fixes one
// encoding per line, but the evaluator reports it rather than producing a
// valid-looking result.
type EncodingError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator's literal text.
	Op string
	// Left and Right are the mismatched operand encodings.
	Left, Right Encoding
}

func (err *EncodingError) Error() string {
	return errpos(err.Col, "mismatched operand encodings "+err.Left.String()+" and "+err.Right.String())
}

func (err *EncodingError) Pos() int        { return err.Col }
func (err *EncodingError) Kind() FaultKind { return FaultParse }

// DepthError indicates an expression nested past the parser's limit.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested too deeply")
}

func (err *DepthError) Pos() int        { return err.Col }
func (err *DepthError) Kind() FaultKind { return FaultParse }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ Fault = (*SyntaxError)(nil)
	_ Fault = (*OperatorError)(nil)
	_ Fault = (*RangeError)(nil)
	_ Fault = (*DomainError)(nil)
	_ Fault = (*EncodingError)(nil)
	_ Fault = (*DepthError)(nil)
)
