package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/norma/norma"
)

const traceRule = 70

// tracePrinter renders snapshots as a table, one row per snapshot.
type tracePrinter struct {
	out  io.Writer
	show []norma.Register
}

func (tp *tracePrinter) values(regs norma.Registers) string {
	words := make([]string, 0, len(tp.show))
	for _, reg := range tp.show {
		words = append(words, fmt.Sprintf("%d", regs[reg]))
	}
	return "(" + strings.Join(words, ", ") + ")"
}

func (tp *tracePrinter) rule() {
	fmt.Fprintln(tp.out, strings.Repeat("-", traceRule))
}

// Print writes a single snapshot row.
func (tp *tracePrinter) Print(snap norma.Snapshot) {
	line := fmt.Sprintf("%d", snap.Pc)

	switch snap.Kind {
	case norma.SNAPSHOT_ENTRY:
		tp.rule()
	case norma.SNAPSHOT_HALT:
		tp.rule()
		line = "END"
	}

	fmt.Fprintf(tp.out, "%-18s | Line: %-5s | Instruction: %s\n", tp.values(snap.Registers), line, snap.Describe())
}

// Final writes the final register bank.
func (tp *tracePrinter) Final(regs norma.Registers) {
	fmt.Fprintln(tp.out)
	fmt.Fprintln(tp.out, "Final registers:")
	fmt.Fprintln(tp.out, regs.String())
	tp.rule()
}

// parseShow parses a register list such as "ABCDE".
func parseShow(text string) (regs []norma.Register, err error) {
	for _, ch := range text {
		var reg norma.Register
		reg, err = norma.ParseRegister(string(ch))
		if err != nil {
			return
		}
		regs = append(regs, reg)
	}
	return
}
