package norma

import (
	"fmt"
	"strconv"
)

// SnapshotKind tags where in a run a snapshot was taken.
type SnapshotKind int

const (
	SNAPSHOT_ENTRY = SnapshotKind(0) // entry
	SNAPSHOT_STEP  = SnapshotKind(1) // step
	SNAPSHOT_HALT  = SnapshotKind(2) // halt
)

func (kind SnapshotKind) String() string {
	switch kind {
	case SNAPSHOT_ENTRY:
		return "entry"
	case SNAPSHOT_STEP:
		return "step"
	case SNAPSHOT_HALT:
		return "halt"
	}
	return fmt.Sprintf("SnapshotKind(%d)", int(kind))
}

// Snapshot is one trace record of a run.
//
// Step snapshots are taken before the instruction at Pc executes. The halt
// snapshot keeps the undefined label that stopped the machine in Pc.
type Snapshot struct {
	Kind        SnapshotKind
	Step        int          // Number of instructions executed so far.
	Pc          int          // Program counter.
	Registers   Registers    // Copy of the register bank.
	Instruction *Instruction // Copy of the instruction at Pc, nil unless Kind is SNAPSHOT_STEP.
}

// Describe returns a human readable description of the snapshot.
func (snap *Snapshot) Describe() string {
	switch snap.Kind {
	case SNAPSHOT_ENTRY:
		return f("M (input)")
	case SNAPSHOT_HALT:
		return f("HALT (jump to undefined label %s)", strconv.Itoa(snap.Pc))
	}
	if snap.Instruction == nil {
		return ""
	}
	return snap.Instruction.Describe()
}

// TraceFunc receives each snapshot of a run.
type TraceFunc func(snap Snapshot)
