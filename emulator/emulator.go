// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives a Norma machine for interactive and batch use.
package emulator

import (
	"context"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"

	"github.com/ezrec/norma/norma"
)

// Emulator state. Machine + initial registers + pacing.
type Emulator struct {
	Verbose        bool            // If set, enables verbose logging.
	*norma.Machine                 // Reference to the machine simulation.
	Trace          norma.TraceFunc // Receives every snapshot, may be nil.
	Delay          time.Duration   // Pause after each snapshot, 0 for none.
	MaxSteps       int             // Stop after this many instructions, 0 for no limit.

	initial norma.Registers
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *norma.Program) (emu *Emulator) {
	emu = &Emulator{
		Machine: norma.NewMachine(prog),
	}

	return
}

// Initialize sets the initial register values from name to value text.
//
// All registers start at zero. Unknown names are ignored and values that are
// not non-negative integers leave their register at zero; both are returned
// as warnings, in register name order.
func (emu *Emulator) Initialize(values map[string]string) (warnings []error) {
	emu.initial = norma.Registers{}

	for _, name := range slices.Sorted(maps.Keys(values)) {
		value := values[name]

		reg, err := norma.ParseRegister(name)
		if err != nil {
			warnings = append(warnings, ErrInitialRegister(name))
			continue
		}

		v64, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(value), "+"), 10, 64)
		if err != nil {
			warnings = append(warnings, &ErrInitialValue{Register: reg, Value: value})
			emu.initial[reg] = 0
			continue
		}

		emu.initial[reg] = v64
	}

	emu.Reset()

	return
}

// Initial returns the registers a reset starts from.
func (emu *Emulator) Initial() norma.Registers {
	return emu.initial
}

// Reset the machine to the initial registers and start label.
func (emu *Emulator) Reset() {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset(emu.initial)
}

// emit sends a snapshot to the trace and waits out the pacing delay.
func (emu *Emulator) emit(ctx context.Context, kind norma.SnapshotKind, delay time.Duration) (err error) {
	snap := emu.Machine.Snapshot(kind)

	if emu.Verbose {
		log.Debugf("emulator: %v", spew.Sdump(snap))
	}

	if emu.Trace != nil {
		emu.Trace(snap)
	}

	return pace(ctx, delay)
}

// Tick performs a single step of the emulator.
// Returns true once the machine has halted.
func (emu *Emulator) Tick(ctx context.Context) (done bool, err error) {
	if emu.Machine.Halted() {
		done = true
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{Label: emu.Machine.Pc, Err: err}
		}
	}()

	err = ctx.Err()
	if err != nil {
		return
	}

	if emu.MaxSteps > 0 && emu.Machine.Steps >= emu.MaxSteps {
		err = ErrStepLimit
		return
	}

	err = emu.emit(ctx, norma.SNAPSHOT_STEP, emu.Delay)
	if err != nil {
		return
	}

	emu.Machine.Tick()

	return
}

// Run resets the machine and executes it until halt, cancellation or the
// step limit, returning the registers at that point.
func (emu *Emulator) Run(ctx context.Context) (regs norma.Registers, err error) {
	emu.Reset()

	err = emu.emit(ctx, norma.SNAPSHOT_ENTRY, 2*emu.Delay)
	if err != nil {
		err = &ErrRuntime{Label: emu.Machine.Pc, Err: err}
		return
	}

	for done := false; !done; {
		done, err = emu.Tick(ctx)
		if err != nil {
			regs = emu.Machine.Register
			return
		}
	}

	regs = emu.Machine.Register

	err = emu.emit(ctx, norma.SNAPSHOT_HALT, 0)

	return
}

// pace waits for delay, or until the context is done.
func pace(ctx context.Context, delay time.Duration) (err error) {
	if delay <= 0 {
		return
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		err = ctx.Err()
	}

	return
}
