// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package norma

import (
	log "github.com/sirupsen/logrus"
)

// Machine is the execution state of a Norma machine.
//
// The program is shared, never copied or modified, so one program may back
// any number of machines.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program  *Program  // Program being executed.
	Register Registers // Register bank.
	Pc       int       // Program counter.
	Steps    int       // Instructions executed since reset.
}

// NewMachine creates a machine for a program, reset to its start label.
func NewMachine(prog *Program) (m *Machine) {
	m = &Machine{
		Program: prog,
	}

	m.Reset(Registers{})

	return
}

// Reset loads the registers and moves the program counter to the start label.
func (m *Machine) Reset(regs Registers) {
	if m.Verbose {
		log.Infof("norma: reset %v", &regs)
	}

	m.Register = regs
	m.Pc = m.Program.Start()
	m.Steps = 0
}

// Halted reports whether the program counter names no instruction.
func (m *Machine) Halted() bool {
	_, ok := m.Program.instruction(m.Pc)
	return !ok
}

// Snapshot captures the current state.
func (m *Machine) Snapshot(kind SnapshotKind) (snap Snapshot) {
	snap = Snapshot{
		Kind:      kind,
		Step:      m.Steps,
		Pc:        m.Pc,
		Registers: m.Register,
	}

	if kind == SNAPSHOT_STEP {
		snap.Instruction, _ = m.Program.Lookup(m.Pc)
	}

	return
}

// Execute performs a single instruction against the machine state.
func (m *Machine) Execute(inst *Instruction) {
	reg := inst.Register

	switch inst.Op {
	case OP_ADD:
		m.Register.Increment(reg)
		m.Pc = inst.Targets[0]
	case OP_SUB:
		m.Register.Decrement(reg)
		m.Pc = inst.Targets[0]
	case OP_ZER:
		if m.Register[reg] == 0 {
			m.Pc = inst.Targets[0]
		} else {
			m.Pc = inst.Targets[1]
		}
	}

	m.Steps++

	if m.Verbose {
		log.Infof("norma: %v => pc %d, %v", inst, m.Pc, &m.Register)
	}
}

// Tick executes the instruction at the program counter.
// Returns true if the machine was already halted.
func (m *Machine) Tick() (done bool) {
	inst, ok := m.Program.instruction(m.Pc)
	if !ok {
		done = true
		return
	}

	m.Execute(inst)

	return
}

// Run resets the machine with the given registers and executes until halt,
// sending every snapshot to trace. A nil trace is allowed.
//
// A program that never jumps to an undefined label never returns.
func (m *Machine) Run(regs Registers, trace TraceFunc) Registers {
	if trace == nil {
		trace = func(Snapshot) {}
	}

	m.Reset(regs)
	trace(m.Snapshot(SNAPSHOT_ENTRY))

	for !m.Halted() {
		trace(m.Snapshot(SNAPSHOT_STEP))
		m.Tick()
	}

	trace(m.Snapshot(SNAPSHOT_HALT))

	return m.Register
}

// Run executes a program on a fresh machine.
func Run(prog *Program, regs Registers, trace TraceFunc) Registers {
	return NewMachine(prog).Run(regs, trace)
}
