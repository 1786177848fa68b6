// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package host

import (
	"slices"

	"github.com/ezrec/intcode/intcode"
)

// Chain runs one copy of template per phase, in series. Each amplifier
// receives its phase, then the previous amplifier's signal; the first
// receives a signal of zero. Returns the last amplifier's final output.
func Chain(template *intcode.Machine, phases []intcode.Value) (signal intcode.Value, err error) {
	if len(phases) == 0 {
		err = ErrNoPhases
		return
	}

	for n, phase := range phases {
		amp := template.Clone()
		var outputs []intcode.Value
		outputs, err = amp.Execute(phase, signal)
		if err == nil && len(outputs) == 0 {
			err = ErrNoOutput
		}
		if err != nil {
			err = &ErrInstance{Index: n, Err: err}
			return
		}
		signal = outputs[len(outputs)-1]
	}

	return
}

// Feedback runs one copy of template per phase, wired in a ring. Each
// amplifier's output feeds the next one's input, and the last feeds the
// first. Amplifiers are resumed round robin until the last one halts;
// its final output is returned.
func Feedback(template *intcode.Machine, phases []intcode.Value) (signal intcode.Value, err error) {
	if len(phases) == 0 {
		err = ErrNoPhases
		return
	}

	amps := make([]*intcode.Machine, len(phases))
	for n, phase := range phases {
		amps[n] = template.Clone()
		amps[n].Push(phase)
	}
	amps[0].Push(intcode.Zero)

	last := len(amps) - 1
	produced := false

	for {
		progress := false
		for n, amp := range amps {
			value, ev, err := amp.RunUntilOutput()
			if err != nil {
				return signal, &ErrInstance{Index: n, Err: err}
			}

			switch ev {
			case intcode.EVENT_OUTPUT:
				progress = true
				amps[(n+1)%len(amps)].Push(value)
				if n == last {
					signal = value
					produced = true
				}
			case intcode.EVENT_HALT:
				if n == last {
					if !produced {
						return signal, &ErrInstance{Index: n, Err: ErrNoOutput}
					}
					return signal, nil
				}
			}
		}

		if !progress {
			return signal, ErrDeadlock
		}
	}
}

// MaxSignal tries every ordering of phases, in series or as a feedback
// ring, and returns the highest signal and the ordering that produced it.
func MaxSignal(template *intcode.Machine, phases []intcode.Value, feedback bool) (best intcode.Value, order []intcode.Value, err error) {
	run := Chain
	if feedback {
		run = Feedback
	}

	for perm := range Permutations(phases) {
		var signal intcode.Value
		signal, err = run(template, perm)
		if err != nil {
			return
		}
		if order == nil || best.Less(signal) {
			best = signal
			order = slices.Clone(perm)
		}
	}

	if order == nil {
		err = ErrNoPhases
	}

	return
}
