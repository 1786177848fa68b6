package intcode

import (
	"fmt"
	"strings"
)

// Kind is an instruction kind, numbered by its opcode.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	OP_ADD  = Kind(1)  // add
	OP_MUL  = Kind(2)  // mul
	OP_IN   = Kind(3)  // in
	OP_OUT  = Kind(4)  // out
	OP_JT   = Kind(5)  // jt
	OP_JF   = Kind(6)  // jf
	OP_LT   = Kind(7)  // lt
	OP_EQ   = Kind(8)  // eq
	OP_ARB  = Kind(9)  // arb
	OP_HALT = Kind(99) // hlt
)

// kindParams is the parameter count of each kind.
var kindParams = map[Kind]int{
	OP_ADD:  3,
	OP_MUL:  3,
	OP_IN:   1,
	OP_OUT:  1,
	OP_JT:   2,
	OP_JF:   2,
	OP_LT:   3,
	OP_EQ:   3,
	OP_ARB:  1,
	OP_HALT: 0,
}

// Valid returns true if the kind is a known opcode.
func (kind Kind) Valid() bool {
	_, ok := kindParams[kind]
	return ok
}

// Params returns the number of parameters the instruction takes.
func (kind Kind) Params() int {
	return kindParams[kind]
}

// Writes returns true if the last parameter is a write target.
func (kind Kind) Writes() bool {
	switch kind {
	case OP_ADD, OP_MUL, OP_IN, OP_LT, OP_EQ:
		return true
	}
	return false
}

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

// Prefix is the operand prefix used by the assembler and disassembler.
func (mode Mode) Prefix() string {
	switch mode {
	case MODE_IMMEDIATE:
		return "#"
	case MODE_RELATIVE:
		return "@"
	}
	return ""
}

// MAX_PARAMS is the largest parameter count of any instruction.
const MAX_PARAMS = 3

// Instruction is a decoded instruction word.
type Instruction struct {
	Kind  Kind
	Modes [MAX_PARAMS]Mode // Modes of the parameters; unused entries are MODE_POSITION.
}

// Decode splits an instruction word into its kind and parameter modes.
func Decode(word Value) (ins Instruction, err error) {
	raw, ok := word.Int64()
	if !ok || raw < 0 {
		err = ErrOpcodeInvalid
		return
	}

	ins.Kind = Kind(raw % 100)
	if !ins.Kind.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	rest := raw / 100
	for n := range ins.Kind.Params() {
		mode := Mode(rest % 10)
		switch mode {
		case MODE_POSITION, MODE_IMMEDIATE, MODE_RELATIVE:
		default:
			err = fmt.Errorf("%w: parameter %d", ErrModeInvalid, n+1)
			return
		}
		ins.Modes[n] = mode
		rest /= 10
	}

	return
}

// Encode returns the instruction word for the instruction.
func (ins Instruction) Encode() Value {
	word := int64(ins.Kind)
	scale := int64(100)
	for n := range ins.Kind.Params() {
		word += int64(ins.Modes[n]) * scale
		scale *= 10
	}
	return Int(word)
}

// Size returns the number of words the instruction occupies.
func (ins Instruction) Size() int {
	return 1 + ins.Kind.Params()
}

func (ins Instruction) String() string {
	var modes []string
	for n := range ins.Kind.Params() {
		modes = append(modes, ins.Modes[n].String())
	}
	return fmt.Sprintf("%v(%v)", ins.Kind, strings.Join(modes, ","))
}
