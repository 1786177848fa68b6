package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"

	"github.com/ezrec/intcode/intcode"
)

// Numeric reads decimal integers separated by whitespace or commas, and
// writes each produced value on its own line.
type Numeric struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	err     error
}

var _ Channel = (*Numeric)(nil)

// scanNumbers is a bufio.SplitFunc that splits on whitespace and commas.
func scanNumbers(data []byte, atEOF bool) (advance int, token []byte, err error) {
	isSep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	start := 0
	for start < len(data) && isSep(rune(data[start])) {
		start++
	}
	for n := start; n < len(data); n++ {
		if isSep(rune(data[n])) {
			return n + 1, data[start:n], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

// Receive returns an iterator that yields parsed input values. A token
// that is not a number ends the input; see Err.
func (nc *Numeric) Receive() iter.Seq[intcode.Value] {
	return func(yield func(value intcode.Value) bool) {
		if nc.Input == nil || nc.err != nil {
			return
		}
		if nc.scanner == nil {
			nc.scanner = bufio.NewScanner(nc.Input)
			nc.scanner.Split(scanNumbers)
		}
		for nc.scanner.Scan() {
			value, err := intcode.ParseValue(strings.TrimSpace(nc.scanner.Text()))
			if err != nil {
				nc.err = err
				return
			}
			if !yield(value) {
				return
			}
		}
		nc.err = nc.scanner.Err()
	}
}

// Send writes the value as a decimal line.
func (nc *Numeric) Send(value intcode.Value) (err error) {
	_, err = fmt.Fprintf(nc.Output, "%v\n", value)
	return
}

// Err returns the error that ended the input, if any.
func (nc *Numeric) Err() error {
	return nc.err
}
