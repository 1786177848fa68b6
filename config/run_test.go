package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/intcode"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "run.cue", `
program:  "day9.ic"
input:    [1, -2, 36893488147419103228]
patch:    {"1": "12", "2": "N - 1"}
phases:   [4, 3, 2, 1, 0]
feedback: true
max_steps: 1000
`)

	run, err := Load(path)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(filepath.Join(dir, "day9.ic"), run.Program)
	assert.False(run.ASCII)
	assert.Equal("", run.Text)
	if assert.Len(run.Input, 3) {
		assert.Equal("1", run.Input[0].String())
		assert.Equal("-2", run.Input[1].String())
		assert.Equal("36893488147419103228", run.Input[2].String())
	}
	assert.Equal([]int64{4, 3, 2, 1, 0}, run.Phases)
	assert.True(run.Feedback)
	assert.Equal(int64(1000), run.MaxSteps)
	assert.Equal(0, run.Network)

	patches, err := run.Patches(map[string]intcode.Value{"N": intcode.Int(3)})
	if assert.NoError(err) {
		assert.Equal(map[int]intcode.Value{
			1: intcode.Int(12),
			2: intcode.Int(2),
		}, patches)
	}
}

func TestLoad_Text(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "run.cue", `
program: "/abs/adventure.ic"
ascii:   true
input:   "north\n"
network: 50
`)

	run, err := Load(path)
	if !assert.NoError(err) {
		return
	}

	assert.Equal("/abs/adventure.ic", run.Program)
	assert.True(run.ASCII)
	assert.Equal("north\n", run.Text)
	assert.Nil(run.Input)
	assert.Equal(50, run.Network)
}

func TestLoad_Precedence(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	first := writeFile(t, dir, "first.cue", `ascii: true`)
	second := writeFile(t, dir, "second.cue", `
ascii: false
phases: [0, 1]
`)

	run, err := Load(first, second)
	if !assert.NoError(err) {
		return
	}

	assert.True(run.ASCII)
	assert.Equal([]int64{0, 1}, run.Phases)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	table := [](struct {
		name    string
		content string
	}){
		{"unknown.cue", `unknown_field: 1`},
		{"kind.cue", `ascii: "yes"`},
		{"input.cue", `input: {a: 1}`},
		{"network.cue", `network: 0`},
		{"syntax.cue", `program: [`},
	}

	for _, entry := range table {
		path := writeFile(t, dir, entry.name, entry.content)
		_, err := Load(path)
		assert.Error(err, entry.name)
	}

	_, err := Load(filepath.Join(dir, "missing.cue"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestPatches_Errors(t *testing.T) {
	assert := assert.New(t)

	run := &Run{Patch: map[string]string{"-1": "0"}}
	_, err := run.Patches(nil)
	assert.ErrorIs(err, intcode.ErrAddressRange)

	run = &Run{Patch: map[string]string{"0": "undefined_name"}}
	_, err = run.Patches(nil)
	assert.Error(err)
}
