package norma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzMachineExecute(f *testing.F) {
	for op := range 3 {
		for reg := range REGISTER_COUNT {
			f.Add(uint8(op), uint8(reg), uint64(0))
			f.Add(uint8(op), uint8(reg), uint64(1))
			f.Add(uint8(op), uint8(reg), ^uint64(0))
		}
	}

	f.Fuzz(func(t *testing.T, op_sel uint8, reg_sel uint8, value uint64) {
		assert := assert.New(t)

		op := Operation(op_sel % 3)
		reg := Register(reg_sel % REGISTER_COUNT)

		targets := []int{11}
		if op == OP_ZER {
			targets = []int{21, 22}
		}

		inst, err := NewInstruction(10, op, reg, targets...)
		assert.NoError(err)

		prog, err := NewProgram(inst)
		assert.NoError(err)

		m := NewMachine(prog)
		for n := range REGISTER_COUNT {
			m.Register[n] = value + uint64(n)
		}
		pre := m.Register

		m.Execute(inst)

		for n := range REGISTER_COUNT {
			if Register(n) != reg {
				assert.Equal(pre[n], m.Register[n])
			}
		}

		switch op {
		case OP_ADD:
			assert.Equal(11, m.Pc)
			if pre[reg] == ^uint64(0) {
				assert.Equal(pre[reg], m.Register[reg])
			} else {
				assert.Equal(pre[reg]+1, m.Register[reg])
			}
		case OP_SUB:
			assert.Equal(11, m.Pc)
			if pre[reg] == 0 {
				assert.Equal(uint64(0), m.Register[reg])
			} else {
				assert.Equal(pre[reg]-1, m.Register[reg])
			}
		case OP_ZER:
			assert.Equal(pre, m.Register)
			if pre[reg] == 0 {
				assert.Equal(21, m.Pc)
			} else {
				assert.Equal(22, m.Pc)
			}
		}

		assert.True(m.Halted())
	})
}
