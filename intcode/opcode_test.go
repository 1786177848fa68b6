package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   int64
		kind   Kind
		modes  [MAX_PARAMS]Mode
		params int
	}){
		{1, OP_ADD, [3]Mode{0, 0, 0}, 3},
		{1002, OP_MUL, [3]Mode{0, 1, 0}, 3},
		{21101, OP_ADD, [3]Mode{1, 1, 2}, 3},
		{3, OP_IN, [3]Mode{0, 0, 0}, 1},
		{203, OP_IN, [3]Mode{2, 0, 0}, 1},
		{104, OP_OUT, [3]Mode{1, 0, 0}, 1},
		{1105, OP_JT, [3]Mode{1, 1, 0}, 2},
		{6, OP_JF, [3]Mode{0, 0, 0}, 2},
		{1107, OP_LT, [3]Mode{1, 1, 0}, 3},
		{208, OP_EQ, [3]Mode{2, 0, 0}, 3},
		{109, OP_ARB, [3]Mode{1, 0, 0}, 1},
		{99, OP_HALT, [3]Mode{0, 0, 0}, 0},
		// Mode digits beyond the parameter count are ignored.
		{30004, OP_OUT, [3]Mode{0, 0, 0}, 1},
	}

	for _, entry := range table {
		ins, err := Decode(Int(entry.word))
		assert.NoError(err, entry.word)
		assert.Equal(entry.kind, ins.Kind, entry.word)
		assert.Equal(entry.modes, ins.Modes, entry.word)
		assert.Equal(entry.params, ins.Kind.Params(), entry.word)
		assert.Equal(1+entry.params, ins.Size(), entry.word)
	}
}

func TestDecode_Invalid(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []int64{0, 10, 98, 100, -1, -1001} {
		_, err := Decode(Int(word))
		assert.ErrorIs(err, ErrOpcodeInvalid, word)
	}

	huge, err := ParseValue("100000000000000000000001")
	assert.NoError(err)
	_, err = Decode(huge)
	assert.ErrorIs(err, ErrOpcodeInvalid)

	for _, word := range []int64{301, 1401, 20901, 309} {
		_, err := Decode(Int(word))
		assert.ErrorIs(err, ErrModeInvalid, word)
	}
}

func TestInstruction_Encode(t *testing.T) {
	assert := assert.New(t)

	ins := Instruction{Kind: OP_ADD, Modes: [MAX_PARAMS]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE}}
	assert.Equal(Int(21101), ins.Encode())

	decoded, err := Decode(ins.Encode())
	assert.NoError(err)
	assert.Equal(ins, decoded)

	assert.Equal(Int(99), Instruction{Kind: OP_HALT}.Encode())
	assert.Equal("add(immediate,immediate,relative)", ins.String())
}

func TestKind(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("jt", OP_JT.String())
	assert.Equal("Kind(42)", Kind(42).String())
	assert.False(Kind(42).Valid())

	assert.True(OP_IN.Writes())
	assert.True(OP_EQ.Writes())
	assert.False(OP_OUT.Writes())
	assert.False(OP_JT.Writes())
}

func TestNames(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		expect string
	}){
		{OP_ADD.String(), "add"},
		{OP_ARB.String(), "arb"},
		{OP_HALT.String(), "hlt"},
		{Kind(0).String(), "Kind(0)"},
		{Kind(10).String(), "Kind(10)"},
		{MODE_RELATIVE.String(), "relative"},
		{Mode(3).String(), "Mode(3)"},
		{EVENT_NONE.String(), "none"},
		{EVENT_INPUT.String(), "input"},
		{Event(-1).String(), "Event(-1)"},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, entry.name)
	}

	for kind := range kindParams {
		assert.Equal(kind, mnemonicMap[kind.String()])
	}
}
