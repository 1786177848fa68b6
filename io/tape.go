package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/intcode/intcode"
)

// ASCII_LIMIT is the first value Tape writes as a number instead of a byte.
const ASCII_LIMIT = 128

// Tape provides ASCII I/O for text driven programs. Each input byte is
// one value. Produced values below ASCII_LIMIT are written as bytes;
// anything else is written as a decimal number on its own line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
	err    error
}

var _ Channel = (*Tape)(nil)

// Receive returns an iterator that yields input bytes until end of input.
func (tc *Tape) Receive() iter.Seq[intcode.Value] {
	return func(yield func(value intcode.Value) bool) {
		if tc.Input == nil {
			return
		}
		if tc.reader == nil {
			tc.reader = bufio.NewReader(tc.Input)
		}
		for {
			b, err := tc.reader.ReadByte()
			if err != nil {
				if err != io.EOF {
					tc.err = err
				}
				return
			}
			if !yield(intcode.Int(int64(b))) {
				return
			}
		}
	}
}

// Send writes a value as a byte, or as a decimal line if it is not ASCII.
func (tc *Tape) Send(value intcode.Value) (err error) {
	if value.Sign() >= 0 && value.Less(intcode.Int(ASCII_LIMIT)) {
		code, _ := value.Int64()
		_, err = tc.Output.Write([]byte{byte(code)})
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%v\n", value)
	return
}

// Err returns the first read error other than end of input.
func (tc *Tape) Err() error {
	return tc.err
}
