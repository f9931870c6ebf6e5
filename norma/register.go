package norma

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Register names one of the eight machine registers.
type Register int

const (
	REG_A = Register(iota)
	REG_B
	REG_C
	REG_D
	REG_E
	REG_F
	REG_G
	REG_H

	REGISTER_COUNT = 8 // Number of machine registers.
)

const registerNames = "ABCDEFGH"

// String returns the register name.
func (reg Register) String() string {
	if reg < 0 || int(reg) >= REGISTER_COUNT {
		return fmt.Sprintf("Register(%d)", int(reg))
	}
	return registerNames[reg : reg+1]
}

// ParseRegister parses a register name, ignoring case.
func ParseRegister(name string) (reg Register, err error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) != 1 {
		err = ErrRegister(name)
		return
	}

	index := strings.IndexByte(registerNames, name[0])
	if index < 0 {
		err = ErrRegister(name)
		return
	}

	reg = Register(index)
	return
}

// Registers is the register bank, indexed by Register.
type Registers [REGISTER_COUNT]uint64

// All iterates over every register and its value, in A-H order.
func (regs *Registers) All() iter.Seq2[Register, uint64] {
	return func(yield func(Register, uint64) bool) {
		for n, value := range regs {
			if !yield(Register(n), value) {
				return
			}
		}
	}
}

// Increment adds one to a register, saturating at the maximum value.
func (regs *Registers) Increment(reg Register) {
	if regs[reg] < math.MaxUint64 {
		regs[reg]++
	}
}

// Decrement subtracts one from a register, saturating at zero.
func (regs *Registers) Decrement(reg Register) {
	if regs[reg] > 0 {
		regs[reg]--
	}
}

// Map returns the registers keyed by name.
func (regs *Registers) Map() (values map[string]uint64) {
	values = make(map[string]uint64, REGISTER_COUNT)
	for reg, value := range regs.All() {
		values[reg.String()] = value
	}
	return
}

// String formats the registers as "A=0 B=0 ... H=0".
func (regs *Registers) String() string {
	var text strings.Builder
	for reg, value := range regs.All() {
		if reg != REG_A {
			text.WriteByte(' ')
		}
		fmt.Fprintf(&text, "%v=%d", reg, value)
	}
	return text.String()
}
