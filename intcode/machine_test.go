package intcode

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// values converts int64s to Values.
func values(ints ...int64) (vals []Value) {
	for _, v := range ints {
		vals = append(vals, Int(v))
	}
	return
}

func doParse(t *testing.T, text string) *Machine {
	m, err := Parse(text)
	if err != nil {
		t.Fatalf("%v: %v", text, err)
	}
	return m
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	m, err := Parse(" 1, -2 ,3\n")
	assert.NoError(err)
	assert.Equal(values(1, -2, 3), m.Memory().Values())
	assert.Equal(0, m.Pc)
	assert.False(m.Halted)

	_, err = Parse("1,,2")
	assert.Equal(ErrParseNumber(""), err)

	_, err = Parse("1,x")
	assert.Equal(ErrParseNumber("x"), err)

	m, err = Load(strings.NewReader("99\n"))
	assert.NoError(err)
	assert.Equal(values(99), m.Memory().Values())

	m, err = Parse("")
	assert.NoError(err)
	assert.Equal(0, m.Memory().Len())
}

func TestMachine_PatchAndRead(t *testing.T) {
	assert := assert.New(t)

	m := doParse(t, "1,0,0,3,99")
	m.Write(1, Int(4))
	m.Write(2, Int(4))
	assert.NoError(m.Run())
	assert.Equal(Int(198), m.Read(3))
}

func TestMachine_Push(t *testing.T) {
	assert := assert.New(t)

	m := doParse(t, "99")
	m.Push(Int(1))
	m.PushInt(2, 3)
	m.PushString("A\n")
	assert.Equal(values(1, 2, 3, 65, 10), m.Input.Data)
}

func TestMachine_Clone(t *testing.T) {
	assert := assert.New(t)

	m := doParse(t, "3,0,4,0,99")
	dup := m.Clone()

	dup.PushInt(42)
	assert.NoError(dup.Run())

	assert.Equal(values(42), dup.Output)
	assert.True(dup.Halted)
	assert.Equal(Int(42), dup.Read(0))

	assert.Empty(m.Output)
	assert.False(m.Halted)
	assert.Equal(Int(3), m.Read(0))
	assert.Equal(0, m.Pc)
}

func TestMachine_String(t *testing.T) {
	assert := assert.New(t)

	m := doParse(t, "1002,4,3,4,33")
	text := m.String()
	assert.Contains(text, "pc: 0")
	assert.Contains(text, "1002 mul(position,immediate,position)")
}

func TestMachine_Trace(t *testing.T) {
	assert := assert.New(t)

	var level slog.LevelVar
	var buf bytes.Buffer

	m := doParse(t, "1101,1,1,5,99,0")
	m.Verbose = true
	m.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: &level}))

	level.Set(slog.LevelInfo)
	_, _, err := m.Step()
	assert.NoError(err)
	assert.Empty(buf.String())

	level.Set(slog.LevelDebug)
	_, _, err = m.Step()
	assert.NoError(err)
	assert.Contains(buf.String(), "level=DEBUG")
	assert.Contains(buf.String(), "pc=4")
}
