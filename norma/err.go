// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package norma

import (
	"errors"

	"github.com/ezrec/norma/translate"
)

var f = translate.From

var (
	// Loader errors
	ErrMalformedLine    = errors.New(f("malformed line"))
	ErrUnknownOperation = errors.New(f("unknown operation"))
	ErrUnknownRegister  = errors.New(f("unknown register"))
	ErrArityMismatch    = errors.New(f("wrong number of targets"))
	ErrEmptyProgram     = errors.New(f("empty program"))
	ErrMissingSource    = errors.New(f("program source unavailable"))

	// Initialization errors
	ErrInvalidInitialValue    = errors.New(f("invalid initial value"))
	ErrUnknownInitialRegister = errors.New(f("unknown initial register"))
)

// ErrSyntax locates a loader error at a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrSource reports a program source that could not be opened or read.
type ErrSource struct {
	Name string
	Err  error
}

func (err *ErrSource) Error() string {
	return f("%v: %v: %v", err.Name, ErrMissingSource, err.Err)
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}

func (err *ErrSource) Is(target error) bool {
	return target == ErrMissingSource
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrMalformedLine
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrMalformedLine
}

type ErrOperation string

func (err ErrOperation) Error() string {
	return f("unknown operation '%v'", string(err))
}

func (err ErrOperation) Is(target error) bool {
	return target == ErrUnknownOperation
}

type ErrRegister string

func (err ErrRegister) Error() string {
	return f("unknown register '%v'", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrUnknownRegister
}

// ErrArity reports an instruction with the wrong number of targets.
type ErrArity struct {
	Op   Operation
	Want int
	Got  int
}

func (err *ErrArity) Error() string {
	return f("%v takes %d targets, got %d", err.Op, err.Want, err.Got)
}

func (err *ErrArity) Unwrap() error {
	return ErrArityMismatch
}

type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("'%v' is not a valid label", string(err))
}

func (err ErrLabelInvalid) Is(target error) bool {
	return target == ErrMalformedLine
}
