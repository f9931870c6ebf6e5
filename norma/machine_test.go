package norma

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doLoad(t *testing.T, program []string) *Program {
	ld := &Loader{}
	prog, err := ld.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	if len(ld.Errors) != 0 {
		t.Fatal(ld.Errors)
	}
	return prog
}

func doRun(t *testing.T, program []string, regs Registers) (final Registers, trace []Snapshot) {
	prog := doLoad(t, program)

	final = Run(prog, regs, func(snap Snapshot) {
		trace = append(trace, snap)
	})

	return
}

var progSum = []string{
	"1: ZER A 4 2",
	"2: SUB A 3",
	"3: ADD C 1",
	"4: ZER B 7 5",
	"5: SUB B 6",
	"6: ADD C 4",
}

func TestMachine(t *testing.T) {
	assert := assert.New(t)

	prog := doLoad(t, []string{"3: ADD A 4"})
	m := NewMachine(prog)

	assert.False(m.Verbose)
	assert.Equal(3, m.Pc)
	assert.Equal(Registers{}, m.Register)
	assert.False(m.Halted())

	assert.False(m.Tick())
	assert.Equal(4, m.Pc)
	assert.Equal(1, m.Steps)
	assert.True(m.Halted())
	assert.True(m.Tick())
	assert.Equal(1, m.Steps)
}

func TestMachineSum(t *testing.T) {
	assert := assert.New(t)

	final, trace := doRun(t, progSum, Registers{REG_A: 2, REG_B: 3})

	assert.Equal(uint64(0), final[REG_A])
	assert.Equal(uint64(0), final[REG_B])
	assert.Equal(uint64(5), final[REG_C])

	// entry + 17 steps + halt
	assert.Len(trace, 19)

	entry := trace[0]
	assert.Equal(SNAPSHOT_ENTRY, entry.Kind)
	assert.Equal(1, entry.Pc)
	assert.Equal(Registers{REG_A: 2, REG_B: 3}, entry.Registers)
	assert.Nil(entry.Instruction)

	first := trace[1]
	assert.Equal(SNAPSHOT_STEP, first.Kind)
	assert.Equal(0, first.Step)
	assert.Equal(1, first.Pc)
	assert.Equal("IF ZER (A) THEN GOTO 4 ELSE GOTO 2", first.Describe())

	halt := trace[len(trace)-1]
	assert.Equal(SNAPSHOT_HALT, halt.Kind)
	assert.Equal(7, halt.Pc)
	assert.Equal(17, halt.Step)
	assert.Equal(final, halt.Registers)
	assert.Equal("HALT (jump to undefined label 7)", halt.Describe())

	for n, snap := range trace[1 : len(trace)-1] {
		assert.Equal(SNAPSHOT_STEP, snap.Kind)
		assert.Equal(n, snap.Step)
		assert.NotNil(snap.Instruction)
		assert.Equal(snap.Pc, snap.Instruction.Label)
	}
}

func TestMachineSnapshotCopies(t *testing.T) {
	assert := assert.New(t)

	_, trace := doRun(t, []string{"0: ADD A 1", "1: ADD A 2"}, Registers{})

	assert.Len(trace, 4)
	assert.Equal(uint64(0), trace[1].Registers[REG_A])
	assert.Equal(uint64(1), trace[2].Registers[REG_A])
	assert.Equal(uint64(2), trace[3].Registers[REG_A])
}

func TestMachineSubSaturates(t *testing.T) {
	assert := assert.New(t)

	final, trace := doRun(t, []string{"0: SUB A 1"}, Registers{})

	assert.Equal(Registers{}, final)
	assert.Len(trace, 3)
	assert.Equal(1, trace[2].Pc)
}

func TestMachineZerSameTargets(t *testing.T) {
	assert := assert.New(t)

	for _, a := range []uint64{0, 5} {
		final, trace := doRun(t, []string{"0: ZER A 1 1"}, Registers{REG_A: a})

		assert.Equal(Registers{REG_A: a}, final)
		assert.Len(trace, 3)
		assert.Equal(1, trace[len(trace)-1].Pc)
		assert.Equal(1, trace[len(trace)-1].Step)
	}
}

func TestMachineZerBranches(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"0: ZER A 10 20",
	}

	final, trace := doRun(t, program, Registers{})
	assert.Equal(10, trace[len(trace)-1].Pc)
	assert.Equal(Registers{}, final)

	final, trace = doRun(t, program, Registers{REG_A: 1})
	assert.Equal(20, trace[len(trace)-1].Pc)
	assert.Equal(Registers{REG_A: 1}, final)
}

func TestMachineStartLabel(t *testing.T) {
	assert := assert.New(t)

	_, trace := doRun(t, []string{"9: ADD B 100", "5: ADD A 9"}, Registers{})

	assert.Equal(5, trace[0].Pc)
	assert.Equal(5, trace[1].Pc)
	assert.Equal(9, trace[2].Pc)
	assert.Equal(100, trace[3].Pc)
}

func TestMachineMultiply(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"1: ZER A 4 2",
		"2: SUB A 3",
		"3: ADD C 1",
		"4: ZER C 13 5",
		"5: SUB C 6",
		"6: ZER B 10 7",
		"7: SUB B 8",
		"8: ADD A 9",
		"9: ADD D 6",
		"10: ZER D 4 11",
		"11: SUB D 12",
		"12: ADD B 10",
	}

	table := [](struct{ a, b uint64 }){
		{0, 0}, {0, 4}, {3, 0}, {3, 4}, {7, 6},
	}

	for _, entry := range table {
		final, _ := doRun(t, program, Registers{REG_A: entry.a, REG_B: entry.b})
		assert.Equal(entry.a*entry.b, final[REG_A], entry)
		assert.Equal(entry.b, final[REG_B], entry)
		assert.Equal(uint64(0), final[REG_C], entry)
		assert.Equal(uint64(0), final[REG_D], entry)
	}
}

func TestMachineNilTrace(t *testing.T) {
	assert := assert.New(t)

	prog := doLoad(t, progSum)
	m := NewMachine(prog)

	final := m.Run(Registers{REG_A: 4, REG_B: 4}, nil)
	assert.Equal(uint64(8), final[REG_C])
	assert.Equal(final, m.Register)
	assert.True(m.Halted())

	// Shared program, fresh machine.
	final = Run(prog, Registers{REG_A: 1}, nil)
	assert.Equal(uint64(1), final[REG_C])
}
