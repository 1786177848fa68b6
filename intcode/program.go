package intcode

import (
	"iter"

	"github.com/ezrec/intcode/internal"
)

// Opcode is a line of assembled source with the words it generated.
type Opcode struct {
	LineNo int
	Addr   int
	Words  []string
	Values []Value
}

// Program is the output of the Assembler.
type Program struct {
	Opcodes []Opcode
	Labels  map[string]int
}

// Debug locates the opcode covering an address.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode that generated addr, if any.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+len(op.Values) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  addr - op.Addr,
			}
			break
		}
	}

	return
}

// All iterates the values of the opcode by address.
func (op *Opcode) All() iter.Seq2[int, Value] {
	return func(yield func(addr int, value Value) bool) {
		for n, value := range op.Values {
			if !yield(op.Addr+n, value) {
				return
			}
		}
	}
}

// Values iterates the assembled memory image by address.
func (prog *Program) Values() iter.Seq2[int, Value] {
	seqs := make([]iter.Seq2[int, Value], 0, len(prog.Opcodes))
	for n := range prog.Opcodes {
		seqs = append(seqs, prog.Opcodes[n].All())
	}

	return internal.Concat2(seqs...)
}

// Binary returns the assembled memory image.
func (prog *Program) Binary() (values []Value) {
	for addr, value := range prog.Values() {
		for len(values) < addr {
			values = append(values, Zero)
		}
		values = append(values, value)
	}

	return
}

// Machine returns a new machine loaded with the program.
func (prog *Program) Machine() *Machine {
	return New(prog.Binary())
}
