package norma

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Instruction is a single labeled Norma instruction.
type Instruction struct {
	LineNo   int       // Source line number, 0 if not loaded from text.
	Label    int       // Label of this instruction.
	Op       Operation // Operation to perform.
	Register Register  // Register operated on.
	Targets  []int     // Jump targets; ZER has if-zero then if-nonzero.
}

// NewInstruction validates and creates an instruction.
func NewInstruction(label int, op Operation, reg Register, targets ...int) (inst *Instruction, err error) {
	if op < OP_ADD || op > OP_ZER {
		err = ErrOperation(op.String())
		return
	}
	if reg < REG_A || reg > REG_H {
		err = ErrRegister(reg.String())
		return
	}
	if len(targets) != op.Arity() {
		err = &ErrArity{Op: op, Want: op.Arity(), Got: len(targets)}
		return
	}

	inst = &Instruction{
		Label:    label,
		Op:       op,
		Register: reg,
		Targets:  slices.Clone(targets),
	}
	return
}

func (inst *Instruction) clone() *Instruction {
	dup := *inst
	dup.Targets = slices.Clone(inst.Targets)
	return &dup
}

// Equal compares instructions, ignoring the source line number.
func (inst *Instruction) Equal(other *Instruction) bool {
	return inst.Label == other.Label &&
		inst.Op == other.Op &&
		inst.Register == other.Register &&
		slices.Equal(inst.Targets, other.Targets)
}

// String returns the instruction in program text form.
func (inst *Instruction) String() string {
	words := []string{fmt.Sprintf("%d:", inst.Label), inst.Op.String(), inst.Register.String()}
	for _, target := range inst.Targets {
		words = append(words, fmt.Sprintf("%d", target))
	}
	return strings.Join(words, " ")
}

// Describe returns a human readable description of the instruction.
// Labels are never digit-grouped.
func (inst *Instruction) Describe() string {
	switch inst.Op {
	case OP_ADD, OP_SUB:
		return f("DO %v (%v) GOTO %s", inst.Op, inst.Register, strconv.Itoa(inst.Targets[0]))
	case OP_ZER:
		return f("IF ZER (%v) THEN GOTO %s ELSE GOTO %s", inst.Register,
			strconv.Itoa(inst.Targets[0]), strconv.Itoa(inst.Targets[1]))
	}
	return inst.String()
}
