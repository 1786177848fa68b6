package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/intcode"
)

// echo reads values until a zero arrives, emitting each one plus one.
var echo = []string{
	"loop: in value",
	"      jf value #done",
	"      add value #1 value",
	"      out value",
	"      jt #1 #loop",
	"done: out #1000",
	"      hlt",
	"value: .data 0",
}

func doMachine(t *testing.T, program []string) *intcode.Machine {
	prog, err := intcode.Assemble(strings.Join(program, "\n"))
	if err != nil {
		t.Fatalf("%v", err)
	}
	return prog.Machine()
}

func TestDrive_Buffer(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, echo)
	buf := &Buffer{Input: []intcode.Value{intcode.Int(1), intcode.Int(-5), intcode.Int(0), intcode.Int(9)}}

	err := Drive(m, buf)
	assert.NoError(err)
	assert.True(m.Halted)
	assert.Equal([]intcode.Value{intcode.Int(2), intcode.Int(-4), intcode.Int(1000)}, buf.Output)

	// Input is only consumed when asked for.
	assert.Equal([]intcode.Value{intcode.Int(9)}, buf.Input)
}

func TestDrive_InputEOF(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, echo)
	buf := &Buffer{Input: []intcode.Value{intcode.Int(4)}}

	err := Drive(m, buf)
	assert.ErrorIs(err, ErrInputEOF)
	assert.Equal([]intcode.Value{intcode.Int(5)}, buf.Output)
	assert.False(m.Halted)

	// Resumable with more input.
	buf.Input = []intcode.Value{intcode.Int(0)}
	err = Drive(m, buf)
	assert.NoError(err)
	assert.Equal([]intcode.Value{intcode.Int(5), intcode.Int(1000)}, buf.Output)
}

func TestDrive_Fault(t *testing.T) {
	assert := assert.New(t)

	m, err := intcode.Parse("104,1,98")
	assert.NoError(err)

	buf := &Buffer{}
	err = Drive(m, buf)
	assert.ErrorIs(err, intcode.ErrOpcodeInvalid)
	assert.Equal([]intcode.Value{intcode.Int(1)}, buf.Output)
}

func TestTape(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, echo)
	output := &bytes.Buffer{}
	tape := &Tape{
		Input:  strings.NewReader("HAL\x00"),
		Output: output,
	}

	err := Drive(m, tape)
	assert.NoError(err)
	assert.Equal("IBM1000\n", output.String())
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(intcode.Int('\n')))
	assert.NoError(tape.Send(intcode.Int(127)))
	assert.NoError(tape.Send(intcode.Int(128)))
	assert.NoError(tape.Send(intcode.Int(-1)))

	assert.Equal("\n\x7f128\n-1\n", output.String())
}

func TestTape_NoInput(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, echo)
	tape := &Tape{Output: &bytes.Buffer{}}

	err := Drive(m, tape)
	assert.ErrorIs(err, ErrInputEOF)
	assert.NoError(tape.Err())
}

func TestNumeric(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, echo)
	output := &bytes.Buffer{}
	num := &Numeric{
		Input:  strings.NewReader("  41,\n-2 99999999999999999999999\t0"),
		Output: output,
	}

	err := Drive(m, num)
	assert.NoError(err)
	assert.Equal("42\n-1\n100000000000000000000000\n1000\n", output.String())
}

func TestNumeric_BadToken(t *testing.T) {
	assert := assert.New(t)

	m := doMachine(t, echo)
	num := &Numeric{
		Input:  strings.NewReader("1 two 3"),
		Output: &bytes.Buffer{},
	}

	err := Drive(m, num)
	assert.ErrorIs(err, ErrInputEOF)
	assert.ErrorIs(err, intcode.ErrParseNumber("two"))
	assert.Equal(intcode.ErrParseNumber("two"), num.Err())
}
