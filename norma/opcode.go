package norma

import (
	"fmt"
	"strings"
)

// Operation is a Norma instruction operation.
type Operation int

const (
	OP_ADD = Operation(0) // ADD
	OP_SUB = Operation(1) // SUB
	OP_ZER = Operation(2) // ZER
)

var opNames = [...]string{
	OP_ADD: "ADD",
	OP_SUB: "SUB",
	OP_ZER: "ZER",
}

// opMap maps upper-case mnemonics to operations.
var opMap = map[string]Operation{
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"ZER": OP_ZER,
}

// ParseOperation parses an operation mnemonic, ignoring case.
func ParseOperation(word string) (op Operation, err error) {
	op, ok := opMap[strings.ToUpper(word)]
	if !ok {
		err = ErrOperation(word)
	}
	return
}

func (op Operation) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Operation(%d)", int(op))
	}
	return opNames[op]
}

// Arity returns the number of jump targets the operation takes.
func (op Operation) Arity() int {
	if op == OP_ZER {
		return 2
	}
	return 1
}
