// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"log/slog"
	"math"
)

// address converts a value to a memory address.
func address(value Value) (addr int, err error) {
	if value.Sign() < 0 {
		err = ErrAddressNegative
		return
	}

	raw, ok := value.Int64()
	if !ok || raw > math.MaxInt {
		err = ErrAddressRange
		return
	}

	addr = int(raw)
	return
}

// offset adds a signed offset to the relative base.
func (m *Machine) offset(raw Value) (addr int, err error) {
	return address(Int(int64(m.RelativeBase)).Add(raw))
}

// param returns the raw parameter n (0-indexed) of the current instruction.
func (m *Machine) param(n int) Value {
	return m.mem.Read(m.Pc + 1 + n)
}

// getValue resolves parameter n as a read operand.
func (m *Machine) getValue(ins Instruction, n int) (value Value, err error) {
	raw := m.param(n)

	var addr int
	switch ins.Modes[n] {
	case MODE_IMMEDIATE:
		value = raw
		return
	case MODE_POSITION:
		addr, err = address(raw)
	case MODE_RELATIVE:
		addr, err = m.offset(raw)
	default:
		err = ErrModeInvalid
	}
	if err != nil {
		return
	}

	value = m.mem.Read(addr)
	return
}

// getTarget resolves parameter n as a write target address.
func (m *Machine) getTarget(ins Instruction, n int) (addr int, err error) {
	raw := m.param(n)

	switch ins.Modes[n] {
	case MODE_POSITION:
		addr, err = address(raw)
	case MODE_RELATIVE:
		addr, err = m.offset(raw)
	case MODE_IMMEDIATE:
		err = ErrWriteImmediate
	default:
		err = ErrModeInvalid
	}

	return
}

// getValues resolves the first count parameters as read operands.
func (m *Machine) getValues(ins Instruction, count int) (values [MAX_PARAMS]Value, err error) {
	for n := range count {
		values[n], err = m.getValue(ins, n)
		if err != nil {
			return
		}
	}
	return
}

// Step executes a single instruction.
//
// A halted machine does nothing and reports EVENT_HALT. An input instruction
// facing an empty queue leaves the machine untouched and reports EVENT_INPUT;
// the same instruction runs again on the next Step. Any error is fatal, and
// is returned again by every later call.
func (m *Machine) Step() (ev Event, value Value, err error) {
	if m.fault != nil {
		err = m.fault
		return
	}

	if m.Halted {
		ev = EVENT_HALT
		return
	}

	pc := m.Pc
	word := m.mem.Read(pc)
	defer func() {
		if err != nil {
			err = &ErrFault{Pc: pc, Word: word, Err: err}
			m.fault = err
		}
	}()

	ins, err := Decode(word)
	if err != nil {
		return
	}

	// Parameters and the next pc must stay addressable.
	if ins.Kind != OP_HALT && pc > math.MaxInt-ins.Size() {
		err = ErrAddressRange
		return
	}

	if m.Verbose {
		m.logger().Debug("intcode: step",
			slog.Int("pc", pc),
			slog.Int("rb", m.RelativeBase),
			slog.Any("ins", ins),
			slog.Any("args", m.mem.Range(pc+1, pc+ins.Size())),
		)
	}

	next_pc := pc + ins.Size()

	switch ins.Kind {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var args [MAX_PARAMS]Value
		args, err = m.getValues(ins, 2)
		if err != nil {
			return
		}
		var target int
		target, err = m.getTarget(ins, 2)
		if err != nil {
			return
		}
		a, b := args[0], args[1]
		var result Value
		switch ins.Kind {
		case OP_ADD:
			result = a.Add(b)
		case OP_MUL:
			result = a.Mul(b)
		case OP_LT:
			result = Bool(a.Less(b))
		case OP_EQ:
			result = Bool(a.Equal(b))
		}
		m.mem.Write(target, result)
	case OP_IN:
		var target int
		target, err = m.getTarget(ins, 0)
		if err != nil {
			return
		}
		input, ok := m.Input.Pop()
		if !ok {
			// Retry the same instruction once input arrives.
			ev = EVENT_INPUT
			return
		}
		m.mem.Write(target, input)
	case OP_OUT:
		value, err = m.getValue(ins, 0)
		if err != nil {
			return
		}
		m.Output = append(m.Output, value)
		ev = EVENT_OUTPUT
	case OP_JT, OP_JF:
		var args [MAX_PARAMS]Value
		args, err = m.getValues(ins, 2)
		if err != nil {
			return
		}
		if args[0].IsZero() == (ins.Kind == OP_JF) {
			next_pc, err = address(args[1])
			if err != nil {
				return
			}
		}
	case OP_ARB:
		var adjust Value
		adjust, err = m.getValue(ins, 0)
		if err != nil {
			return
		}
		rb, ok := Int(int64(m.RelativeBase)).Add(adjust).Int64()
		if !ok || rb < math.MinInt || rb > math.MaxInt {
			err = ErrAddressRange
			return
		}
		m.RelativeBase = int(rb)
	case OP_HALT:
		m.Halted = true
		m.Steps++
		ev = EVENT_HALT
		return
	default:
		err = ErrOpcodeInvalid
		return
	}

	m.Pc = next_pc
	m.Steps++

	return
}

// Run executes until the program halts.
//
// If the program needs input that is not queued, Run returns
// ErrInputStarved. The machine is left ready to retry once input has
// been pushed.
func (m *Machine) Run() (err error) {
	for {
		if m.overBudget() {
			err = ErrStepLimit
			return
		}

		var ev Event
		ev, _, err = m.Step()
		if err != nil {
			return
		}
		switch ev {
		case EVENT_HALT:
			return
		case EVENT_INPUT:
			err = ErrInputStarved
			return
		}
	}
}

func (m *Machine) overBudget() bool {
	return m.MaxSteps > 0 && m.Steps >= m.MaxSteps && !m.Halted && m.fault == nil
}

// RunUntilOutput executes until the next value is produced, more input is
// needed, or the program halts. The returned event says which; value is
// only meaningful for EVENT_OUTPUT. Each call resumes where the last stopped.
func (m *Machine) RunUntilOutput() (value Value, ev Event, err error) {
	for {
		if m.overBudget() {
			err = ErrStepLimit
			return
		}

		ev, value, err = m.Step()
		if err != nil || ev != EVENT_NONE {
			return
		}
	}
}

// Execute pushes inputs, runs to halt, and returns the values produced
// by this call.
func (m *Machine) Execute(inputs ...Value) (outputs []Value, err error) {
	m.Push(inputs...)
	first := len(m.Output)

	err = m.Run()
	outputs = m.Output[first:len(m.Output):len(m.Output)]

	return
}
