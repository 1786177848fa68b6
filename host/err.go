package host

import (
	"errors"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoOutput      = errors.New(f("no output produced"))
	ErrDeadlock      = errors.New(f("all instances waiting on input"))
	ErrStepLimit     = intcode.ErrStepLimit
	ErrPacketAddress = errors.New(f("packet address invalid"))
	ErrNoPhases      = errors.New(f("no phases"))
)

// ErrInstance identifies the instance that failed.
type ErrInstance struct {
	Index int
	Err   error
}

func (err *ErrInstance) Error() string {
	return f("instance %d %v", err.Index, err.Err)
}

func (err *ErrInstance) Unwrap() error {
	return err.Err
}
