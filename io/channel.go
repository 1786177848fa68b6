// Package io connects Intcode machines to the outside world.
//
// A Channel supplies input values to a machine and accepts the values it
// produces. Tape speaks the ASCII convention used by text driven programs,
// Numeric reads and writes decimal integers, and Buffer holds values in
// memory.
package io

import (
	"iter"

	"github.com/ezrec/intcode/intcode"
)

// Channel defines the interface for all host endpoints of a machine.
type Channel interface {
	// Receive returns an iterator that yields values for the machine.
	Receive() iter.Seq[intcode.Value]
	// Send accepts a single value produced by the machine.
	Send(value intcode.Value) error
}

// Failer is implemented by channels whose input can end in an error.
type Failer interface {
	Err() error
}
