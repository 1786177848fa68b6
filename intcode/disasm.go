package intcode

import (
	"fmt"
	"iter"
	"strings"
)

// Line is one disassembled instruction or data word.
type Line struct {
	Addr   int
	Values []Value
	Text   string
}

func (line Line) String() string {
	return fmt.Sprintf("%6d: %v", line.Addr, line.Text)
}

// disassemble renders the instruction at addr, if it decodes and fits
// before end.
func disassemble(mem *Memory, addr int, end int) (line Line) {
	word := mem.Read(addr)
	line = Line{Addr: addr, Values: []Value{word}, Text: ".data " + word.String()}

	ins, err := Decode(word)
	if err != nil || addr > end-ins.Size() {
		return
	}

	params := ins.Kind.Params()
	if ins.Kind.Writes() && ins.Modes[params-1] == MODE_IMMEDIATE {
		return
	}

	text := []string{ins.Kind.String()}
	for n := range params {
		arg := mem.Read(addr + 1 + n)
		line.Values = append(line.Values, arg)
		text = append(text, ins.Modes[n].Prefix()+arg.String())
	}

	line.Text = strings.Join(text, " ")
	return
}

// Disassemble iterates memory from..to-1 as instructions. Words that do
// not decode are rendered as .data directives.
func Disassemble(mem *Memory, from, to int) iter.Seq[Line] {
	return func(yield func(line Line) bool) {
		for addr := from; addr < to; {
			line := disassemble(mem, addr, to)
			if !yield(line) {
				return
			}
			addr += len(line.Values)
		}
	}
}
