// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"
	"iter"

	"github.com/ezrec/intcode/intcode"
)

// Drive runs a machine to completion against a channel.
//
// Produced values are sent to the channel as they appear, and input is
// pulled from the channel only when the machine asks for it. If the
// channel runs dry while the machine still wants input, Drive returns
// ErrInputEOF (joined with the channel's own error, if any); the machine
// is left resumable.
func Drive(m *intcode.Machine, ch Channel) (err error) {
	next, stop := iter.Pull(ch.Receive())
	defer stop()

	for {
		var value intcode.Value
		var ev intcode.Event
		value, ev, err = m.RunUntilOutput()
		if err != nil {
			return
		}

		switch ev {
		case intcode.EVENT_OUTPUT:
			err = ch.Send(value)
			if err != nil {
				return
			}
		case intcode.EVENT_INPUT:
			input, ok := next()
			if !ok {
				err = ErrInputEOF
				if failer, ok := ch.(Failer); ok && failer.Err() != nil {
					err = errors.Join(ErrInputEOF, failer.Err())
				}
				return
			}
			m.Push(input)
		case intcode.EVENT_HALT:
			return
		}
	}
}
