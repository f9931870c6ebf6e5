package norma

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Program is an immutable table of instructions keyed by label.
//
// Instructions handed in or out are copies, so no caller can change a
// program that machines share.
type Program struct {
	instructions map[int]*Instruction
	start        int
}

// NewProgram builds a program from a set of instructions. When a label
// repeats, the last instruction for it wins.
func NewProgram(insts ...*Instruction) (prog *Program, err error) {
	table := make(map[int]*Instruction, len(insts))
	for _, inst := range insts {
		table[inst.Label] = inst.clone()
	}

	return newProgram(table)
}

func newProgram(table map[int]*Instruction) (prog *Program, err error) {
	if len(table) == 0 {
		err = ErrEmptyProgram
		return
	}

	prog = &Program{
		instructions: table,
		start:        slices.Min(slices.Collect(maps.Keys(table))),
	}

	return
}

// Start returns the entry label, the lowest label in the program.
func (prog *Program) Start() int {
	return prog.start
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.instructions)
}

// Lookup returns a copy of the instruction at a label.
func (prog *Program) Lookup(label int) (inst *Instruction, ok bool) {
	inst, ok = prog.instructions[label]
	if ok {
		inst = inst.clone()
	}
	return
}

// instruction returns the shared instruction at a label. Never modify it.
func (prog *Program) instruction(label int) (inst *Instruction, ok bool) {
	inst, ok = prog.instructions[label]
	return
}

// Labels iterates over the labels in ascending order.
func (prog *Program) Labels() iter.Seq[int] {
	return slices.Values(slices.Sorted(maps.Keys(prog.instructions)))
}

// Instructions iterates over copies of the instructions in ascending label order.
func (prog *Program) Instructions() iter.Seq2[int, *Instruction] {
	return func(yield func(int, *Instruction) bool) {
		for label := range prog.Labels() {
			if !yield(label, prog.instructions[label].clone()) {
				return
			}
		}
	}
}

// Equal reports whether both programs have the same label to instruction mapping.
func (prog *Program) Equal(other *Program) bool {
	return maps.EqualFunc(prog.instructions, other.instructions, (*Instruction).Equal)
}

// WriteTo writes the program in text form, one instruction per line.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	for _, inst := range prog.Instructions() {
		var wrote int
		wrote, err = fmt.Fprintln(w, inst.String())
		n += int64(wrote)
		if err != nil {
			return
		}
	}
	return
}

func (prog *Program) String() string {
	var text strings.Builder
	prog.WriteTo(&text)
	return text.String()
}
