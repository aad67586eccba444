package bincalc

type op int8

const (
	opOpen op = iota
	opNot
	opNeg
	opMul
	opDiv
	opMod
	opAdd
	opSub
	opShl
	opShr
	opAnd
	opXor
	opOr
	opClose
	opEnd

	numOps
)

// opNone is the "no expected sentinel" argument to scanner.operator.
const opNone op = -1

type arity int8

const (
	unary arity = iota
	binary
	sentinel
)

// opTable is the static operator registry shared by the parser and the trace
// formatter. Higher precedence binds tighter; the sentinels carry no
// arithmetic meaning and only bound recursion. Table order is the tie-break
// during lookup, so "<<" and ">>" sit ahead of nothing they could shadow and
// unary and binary "-" are disambiguated by the requested arity alone.
var opTable = [numOps]struct {
	prec  int8
	arity arity
	text  string
}{
	opOpen:  {8, unary, "("},
	opNot:   {7, unary, "~"},
	opNeg:   {7, unary, "-"},
	opMul:   {6, binary, "*"},
	opDiv:   {6, binary, "/"},
	opMod:   {6, binary, "%"},
	opAdd:   {5, binary, "+"},
	opSub:   {5, binary, "-"},
	opShl:   {4, binary, "<<"},
	opShr:   {4, binary, ">>"},
	opAnd:   {3, binary, "&"},
	opXor:   {2, binary, "^"},
	opOr:    {1, binary, "|"},
	opClose: {0, sentinel, ")"},
	opEnd:   {0, sentinel, ""},
}

func (o op) String() string {
	if o == opEnd {
		return "end of input"
	}
	if o < opOpen || o >= numOps {
		return "invalid"
	}
	return opTable[o].text
}

// opToken is an operator together with its byte offset in the input.
type opToken struct {
	op  op
	pos int
}
