package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"

	"github.com/ezrec/intcode/intcode"
)

// Schema constrains a run description.
const Schema = `
program?:   string
ascii?:     bool
input?:     [...int] | string
patch?:     [string]: string
phases?:    [...int]
feedback?:  bool
network?:   int & >0
max_steps?: int & >=0
`

// Run describes one execution of an Intcode program.
type Run struct {
	Program  string            // Program path, resolved against the file naming it.
	ASCII    bool              // Treat input and output as text.
	Input    []intcode.Value   // Values queued before the run.
	Text     string            // Text queued before the run, one value per byte.
	Patch    map[string]string // Address expression to value expression.
	Phases   []int64           // Amplifier phase settings.
	Feedback bool              // Wire the amplifiers in a ring.
	Network  int               // Number of networked NICs.
	MaxSteps int64             // Step budget; zero is unbounded.
}

// Load reads run descriptions from paths. When a field appears in more
// than one file, the earliest file wins.
func Load(paths ...string) (run *Run, err error) {
	loader := NewLoader(paths, Schema)
	err = loader.Err()
	if err != nil {
		return
	}

	run = &Run{}

	fields := []struct {
		path   string
		target any
	}{
		{"ascii", &run.ASCII},
		{"patch", &run.Patch},
		{"phases", &run.Phases},
		{"feedback", &run.Feedback},
		{"network", &run.Network},
		{"max_steps", &run.MaxSteps},
	}

	for _, field := range fields {
		err = loader.AssignFirst(field.path, field.target)
		if errors.Is(err, ErrValueNotFound) {
			err = nil
		}
		if err != nil {
			err = fmt.Errorf("%v: %w", field.path, err)
			return
		}
	}

	value, file, err := loader.First("program")
	switch {
	case errors.Is(err, ErrValueNotFound):
		err = nil
	case err != nil:
		return
	default:
		run.Program, err = value.String()
		if err != nil {
			return
		}
		if !filepath.IsAbs(run.Program) {
			run.Program = filepath.Join(filepath.Dir(file), run.Program)
		}
	}

	value, _, err = loader.First("input")
	switch {
	case errors.Is(err, ErrValueNotFound):
		err = nil
	case err != nil:
		return
	default:
		err = run.decodeInput(value)
		if err != nil {
			err = fmt.Errorf("input: %w", err)
			return
		}
	}

	return
}

func (run *Run) decodeInput(value cue.Value) (err error) {
	switch value.Kind() {
	case cue.StringKind:
		run.Text, err = value.String()
		return
	case cue.ListKind:
		var items cue.Iterator
		items, err = value.List()
		if err != nil {
			return
		}
		for items.Next() {
			n, err := items.Value().Int(nil)
			if err != nil {
				return err
			}
			v, ok := intcode.FromBig(n)
			if !ok {
				return intcode.ErrParseNumber(n.String())
			}
			run.Input = append(run.Input, v)
		}
		return
	}

	err = ErrInputKind
	return
}

// Patches evaluates the patch expressions against defines.
// The result maps address to value.
func (run *Run) Patches(defines map[string]intcode.Value) (patches map[int]intcode.Value, err error) {
	patches = make(map[int]intcode.Value, len(run.Patch))
	for addrExpr, valueExpr := range run.Patch {
		var addr, value intcode.Value
		addr, err = intcode.Eval(addrExpr, defines)
		if err != nil {
			return
		}
		value, err = intcode.Eval(valueExpr, defines)
		if err != nil {
			return
		}
		n, ok := addr.Int64()
		if !ok || n < 0 {
			err = fmt.Errorf("%v: %w", addrExpr, intcode.ErrAddressRange)
			return
		}
		patches[int(n)] = value
	}

	return
}
