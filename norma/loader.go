// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package norma

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	COMMENT_MARKER   = "#" // Starts a comment that runs to end of line.
	LABEL_SEPARATOR  = ":" // Separates the label from the instruction.
	EXPRESSION_BEGIN = "$(" // Starts a compile-time expression.
)

var exprPattern = regexp.MustCompile(`\$\([^\$]*\)`)

// Loader parses Norma program text into a Program.
//
// Line level errors do not stop a load. They are collected in Errors and the
// offending line is skipped.
type Loader struct {
	Verbose   bool    // If set, verbosely logs the loader actions.
	Errors    []error // Line errors from the last load, each an *ErrSyntax.
	Redefined []int   // Labels defined more than once in the last load.

	predefine map[string]string // Constants visible to $(...) expressions.
}

// Predefine defines a new constant for $(...) expressions, or redefines an
// existing one.
func (ld *Loader) Predefine(name string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{name: value}
	} else {
		ld.predefine[name] = value
	}
}

// valueOf parses a decimal integer.
func (ld *Loader) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 10, 0)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// parenEval does compile-time $(...) evaluations.
func (ld *Loader) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "norma"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.predefine {
		var v int
		v, err = ld.valueOf(str)
		if err != nil {
			// Non-integer constants are not visible to expressions.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value = int(st_int64)
	return
}

// expand replaces all $(...) expressions in a line with their values.
func (ld *Loader) expand(line string) (expanded string, err error) {
	if !strings.Contains(line, EXPRESSION_BEGIN) {
		expanded = line
		return
	}

	expanded = exprPattern.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := ld.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// parseLine parses a single stripped, non-empty line as an instruction.
func (ld *Loader) parseLine(line string, lineno int) (inst *Instruction, err error) {
	line, err = ld.expand(line)
	if err != nil {
		return
	}

	label_part, instr_part, ok := strings.Cut(line, LABEL_SEPARATOR)
	if !ok {
		err = ErrMalformedLine
		return
	}

	label_part = strings.TrimSpace(label_part)
	label, err := ld.valueOf(label_part)
	if err != nil {
		err = ErrLabelInvalid(label_part)
		return
	}
	if label < 0 {
		err = ErrLabelInvalid(label_part)
		return
	}

	words := strings.Fields(instr_part)
	if len(words) < 2 {
		err = ErrMalformedLine
		return
	}

	op, err := ParseOperation(words[0])
	if err != nil {
		return
	}

	reg, err := ParseRegister(words[1])
	if err != nil {
		return
	}

	var targets []int
	for _, word := range words[2:] {
		var target int
		target, err = ld.valueOf(word)
		if err != nil {
			return
		}
		targets = append(targets, target)
	}

	inst, err = NewInstruction(label, op, reg, targets...)
	if err != nil {
		return
	}
	inst.LineNo = lineno

	return
}

// Parse parses an input stream into a Program.
//
// The returned error is ErrEmptyProgram when no line yielded an instruction,
// or an *ErrSource when the input could not be read. Line errors are left in
// ld.Errors.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	return ld.parse("input", input)
}

func (ld *Loader) parse(name string, input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	ld.Errors = nil
	ld.Redefined = nil

	table := map[int]*Instruction{}

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Infof("%v:%v: %v", name, lineno, text)
		}

		line, _, _ := strings.Cut(text, COMMENT_MARKER)
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		inst, line_err := ld.parseLine(line, lineno)
		if line_err != nil {
			line_err = &ErrSyntax{LineNo: lineno, Line: line, Err: line_err}
			if ld.Verbose {
				log.Warnf("%v: %v", name, line_err)
			}
			ld.Errors = append(ld.Errors, line_err)
			continue
		}

		if _, ok := table[inst.Label]; ok {
			ld.Redefined = append(ld.Redefined, inst.Label)
			if ld.Verbose {
				log.Warnf("%v:%v: label %d redefined", name, lineno, inst.Label)
			}
		}
		table[inst.Label] = inst
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSource{Name: name, Err: err}
		return
	}

	prog, err = newProgram(table)

	return
}

// Load opens and parses a program file.
func (ld *Loader) Load(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrSource{Name: path, Err: err}
		return
	}
	defer inf.Close()

	return ld.parse(path, inf)
}

// LoadFS opens and parses a program file from a file system.
func (ld *Loader) LoadFS(fsys fs.FS, name string) (prog *Program, err error) {
	inf, err := fsys.Open(name)
	if err != nil {
		err = &ErrSource{Name: name, Err: err}
		return
	}
	defer inf.Close()

	return ld.parse(name, inf)
}
