package config

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrValueNotFound = errors.New(f("configuration value not found"))
	ErrInputKind     = errors.New(f("input must be a list of integers or a string"))
)
