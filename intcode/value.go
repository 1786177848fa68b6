// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Value is a signed, two's complement 256-bit integer.
//
// The zero Value is 0.
type Value struct {
	n uint256.Int
}

var (
	Zero = Value{}
	One  = Int(1)
)

// Int returns the Value of a signed 64-bit integer.
func Int(v int64) (value Value) {
	if v < 0 {
		value.n.SetUint64(uint64(-v))
		value.n.Neg(&value.n)
	} else {
		value.n.SetUint64(uint64(v))
	}
	return
}

// Bool returns One if b is set, else Zero.
func Bool(b bool) Value {
	if b {
		return One
	}
	return Zero
}

// ParseValue parses a signed base-10 integer.
func ParseValue(text string) (value Value, err error) {
	digits := strings.TrimSpace(text)
	neg := false
	switch {
	case strings.HasPrefix(digits, "-"):
		neg = true
		digits = digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}

	if len(digits) == 0 || digits[0] == '+' || digits[0] == '-' {
		err = ErrParseNumber(text)
		return
	}

	err = value.n.SetFromDecimal(digits)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	// The magnitude must fit in the positive half of the range.
	if value.n.Sign() < 0 && !(neg && value.n.Eq(minMagnitude)) {
		err = ErrParseNumber(text)
		return
	}

	if neg {
		value.n.Neg(&value.n)
	}

	return
}

// minMagnitude is the magnitude of the most negative Value.
var minMagnitude = new(uint256.Int).Lsh(uint256.NewInt(1), 255)

// FromBig converts a big.Int, reporting false if it does not fit.
func FromBig(b *big.Int) (value Value, ok bool) {
	abs := new(big.Int).Abs(b)
	mag, overflow := uint256.FromBig(abs)
	if overflow {
		return
	}

	if b.Sign() < 0 {
		if mag.Sign() < 0 && !mag.Eq(minMagnitude) {
			return
		}
		value.n.Neg(mag)
	} else {
		if mag.Sign() < 0 {
			return
		}
		value.n.Set(mag)
	}

	ok = true
	return
}

// Big returns the Value as a big.Int.
func (v Value) Big() (b *big.Int) {
	if v.Sign() < 0 {
		var abs uint256.Int
		abs.Neg(&v.n)
		b = abs.ToBig()
		b.Neg(b)
	} else {
		b = v.n.ToBig()
	}
	return
}

// Int64 returns the Value as an int64, reporting false if it does not fit.
func (v Value) Int64() (value int64, ok bool) {
	if v.Sign() < 0 {
		var abs uint256.Int
		abs.Neg(&v.n)
		if !abs.IsUint64() || abs.Uint64() > 1<<63 {
			return
		}
		return -int64(abs.Uint64()), true
	}

	if !v.n.IsUint64() || v.n.Uint64() > 1<<63-1 {
		return
	}

	return int64(v.n.Uint64()), true
}

// Sign returns -1, 0, or +1.
func (v Value) Sign() int {
	return v.n.Sign()
}

// IsZero returns true if the value is zero.
func (v Value) IsZero() bool {
	return v.n.IsZero()
}

// Add returns v + o, wrapping on overflow.
func (v Value) Add(o Value) (sum Value) {
	sum.n.Add(&v.n, &o.n)
	return
}

// Mul returns v * o, wrapping on overflow.
func (v Value) Mul(o Value) (product Value) {
	product.n.Mul(&v.n, &o.n)
	return
}

// Less returns true if v < o as signed integers.
func (v Value) Less(o Value) bool {
	return v.n.Slt(&o.n)
}

// Equal returns true if v == o.
func (v Value) Equal(o Value) bool {
	return v.n.Eq(&o.n)
}

// String returns the signed decimal representation.
func (v Value) String() string {
	if v.Sign() < 0 {
		var abs uint256.Int
		abs.Neg(&v.n)
		return "-" + abs.Dec()
	}
	return v.n.Dec()
}
