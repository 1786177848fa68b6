package io

import (
	"iter"

	"github.com/ezrec/intcode/intcode"
)

// Buffer is an in-memory channel. Input is consumed front first; every
// sent value is appended to Output.
type Buffer struct {
	Input  []intcode.Value
	Output []intcode.Value
}

var _ Channel = (*Buffer)(nil)

// Receive returns an iterator that yields and consumes the pending input.
func (buf *Buffer) Receive() iter.Seq[intcode.Value] {
	return func(yield func(value intcode.Value) bool) {
		for len(buf.Input) > 0 {
			value := buf.Input[0]
			buf.Input = buf.Input[1:]
			if !yield(value) {
				return
			}
		}
	}
}

// Send appends the value to Output.
func (buf *Buffer) Send(value intcode.Value) error {
	buf.Output = append(buf.Output, value)
	return nil
}
