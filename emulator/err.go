package emulator

import (
	"errors"

	"github.com/ezrec/norma/norma"
	"github.com/ezrec/norma/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the label at which a run stopped early.
type ErrRuntime struct {
	Label int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("label %d %v", err.Label, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrInitialRegister names an initial value for a register that does not exist.
type ErrInitialRegister string

func (err ErrInitialRegister) Error() string {
	return f("unknown register '%v', ignoring", string(err))
}

func (err ErrInitialRegister) Is(target error) bool {
	return target == norma.ErrUnknownInitialRegister
}

// ErrInitialValue reports an initial value that is not a non-negative integer.
type ErrInitialValue struct {
	Register norma.Register
	Value    string
}

func (err *ErrInitialValue) Error() string {
	return f("invalid value '%v' for register %v, using 0", err.Value, err.Register)
}

func (err *ErrInitialValue) Is(target error) bool {
	return target == norma.ErrInvalidInitialValue
}
