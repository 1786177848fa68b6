// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Event reports what a step did.
//
// EVENT_INPUT means the input queue was empty; the same instruction runs
// again on the next step.
type Event int

//go:generate go tool stringer -linecomment -type=Event
const (
	EVENT_NONE   = Event(0) // none
	EVENT_OUTPUT = Event(1) // output
	EVENT_INPUT  = Event(2) // input
	EVENT_HALT   = Event(3) // halt
)

// Machine is the execution context of one Intcode program.
type Machine struct {
	Verbose bool         // Set to enable instruction tracing.
	Logger  *slog.Logger // Trace destination. If nil, slog.Default() is used.

	Pc           int     // Current program counter.
	RelativeBase int     // Base for relative mode parameters.
	Halted       bool    // Set once a halt instruction executes.
	Input        Queue   // Pending input, consumed front first.
	Output       []Value // Every value ever produced, in order.

	Steps    int // Instructions executed.
	MaxSteps int // Run and RunUntilOutput stop once Steps reaches this. Zero means no limit.

	mem   *Memory
	fault error
}

// New creates a machine with values loaded at address 0.
func New(values []Value) (m *Machine) {
	m = &Machine{
		mem: NewMemory(values),
	}

	return
}

// Parse creates a machine from comma separated integers.
func Parse(text string) (m *Machine, err error) {
	values, err := ParseProgram(text)
	if err != nil {
		return
	}

	m = New(values)
	return
}

// Load creates a machine from a reader holding comma separated integers.
func Load(r io.Reader) (m *Machine, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	return Parse(string(data))
}

// ParseProgram parses comma separated integers.
func ParseProgram(text string) (values []Value, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	for word := range strings.SplitSeq(text, ",") {
		var value Value
		value, err = ParseValue(word)
		if err != nil {
			return
		}
		values = append(values, value)
	}

	return
}

// Memory returns the machine's address space.
func (m *Machine) Memory() *Memory {
	return m.mem
}

// Read returns the value at addr.
func (m *Machine) Read(addr int) Value {
	return m.mem.Read(addr)
}

// Write sets the value at addr, for patching a program before running it.
func (m *Machine) Write(addr int, value Value) {
	m.mem.Write(addr, value)
}

// Push appends values to the input queue.
func (m *Machine) Push(values ...Value) {
	m.Input.Push(values...)
}

// PushInt appends int64 values to the input queue.
func (m *Machine) PushInt(values ...int64) {
	for _, value := range values {
		m.Input.Push(Int(value))
	}
}

// PushString appends each byte of text to the input queue.
func (m *Machine) PushString(text string) {
	for _, b := range []byte(text) {
		m.Input.Push(Int(int64(b)))
	}
}

// Err returns the fault that stopped the machine, if any.
func (m *Machine) Err() error {
	return m.fault
}

// Clone returns an independent copy of the machine in its current state.
func (m *Machine) Clone() *Machine {
	return &Machine{
		Verbose:      m.Verbose,
		Logger:       m.Logger,
		Pc:           m.Pc,
		RelativeBase: m.RelativeBase,
		Halted:       m.Halted,
		Input:        m.Input.Clone(),
		Output:       slices.Clone(m.Output),
		Steps:        m.Steps,
		MaxSteps:     m.MaxSteps,
		mem:          m.mem.Clone(),
		fault:        m.fault,
	}
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	regs := []string{"pc", "rb", "word", "halted", "input", "output", "steps"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%d", m.Pc)
		case "rb":
			strval = fmt.Sprintf("%d", m.RelativeBase)
		case "word":
			word := m.mem.Read(m.Pc)
			ins, err := Decode(word)
			if err != nil {
				strval = word.String()
			} else {
				strval = fmt.Sprintf("%v %v", word, ins)
			}
		case "halted":
			strval = fmt.Sprintf("%v", m.Halted)
		case "input":
			strval = fmt.Sprintf("%d queued", m.Input.Len())
		case "output":
			strval = fmt.Sprintf("%d produced", len(m.Output))
		case "steps":
			strval = fmt.Sprintf("%d", m.Steps)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

func (m *Machine) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}
