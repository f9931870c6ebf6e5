// Package programs holds the built-in Norma programs.
package programs

import (
	"embed"
	"slices"

	"github.com/ezrec/norma/norma"
	"github.com/ezrec/norma/translate"
)

var f = translate.From

//go:embed *.norma
var sources embed.FS

// Builtin is a canned program and the registers it reads.
type Builtin struct {
	Name        string           // Short name, also the file stem.
	Description string           // What the program computes.
	Inputs      []norma.Register // Registers the program expects to be set.
}

var builtins = []Builtin{
	{"sum", f("Sum (C := A + B)"), []norma.Register{norma.REG_A, norma.REG_B}},
	{"mul", f("Multiplication (A := A * B)"), []norma.Register{norma.REG_A, norma.REG_B}},
	{"fact", f("Factorial (B := A!)"), []norma.Register{norma.REG_A}},
}

// All returns the built-in programs in menu order.
func All() []Builtin {
	return slices.Clone(builtins)
}

// Lookup finds a built-in program by name.
func Lookup(name string) (builtin *Builtin, ok bool) {
	index := slices.IndexFunc(builtins, func(b Builtin) bool { return b.Name == name })
	if index < 0 {
		return
	}

	builtin = &builtins[index]
	ok = true
	return
}

// Load parses the built-in program.
func (b *Builtin) Load(ld *norma.Loader) (prog *norma.Program, err error) {
	return ld.LoadFS(sources, b.Name+".norma")
}
