package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrModeInvalid     = errors.New(f("parameter mode invalid"))
	ErrWriteImmediate  = errors.New(f("write target in immediate mode"))
	ErrAddressNegative = errors.New(f("address negative"))
	ErrAddressRange    = errors.New(f("address out of range"))
	ErrInputStarved    = errors.New(f("input starved"))
	ErrHalted          = errors.New(f("halted"))
	ErrStepLimit       = errors.New(f("step limit reached"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrDataMissing        = errors.New(f(".data value missing"))
	ErrOpcodeArgs         = errors.New(f("wrong number of arguments"))
	ErrOpcodeUnknown      = errors.New(f("mnemonic unknown"))
	ErrOperandInvalid     = errors.New(f("operand invalid"))
	ErrOperandWritable    = errors.New(f("operand not writable"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrFault is a fatal error raised while executing an instruction.
// Once a Machine faults it refuses to execute any further.
type ErrFault struct {
	Pc   int   // Address of the faulting instruction.
	Word Value // Instruction word at Pc.
	Err  error
}

func (err *ErrFault) Error() string {
	return f("fault at %d (word %v): %v", err.Pc, err.Word, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
