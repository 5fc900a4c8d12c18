// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// number.go — numeric and boolean converters: generic signed/unsigned/float
// widths over strconv, arbitrary precision via math/big and shopspring/decimal.

package textconv

import (
	"errors"
	"math/big"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

var errNotBase10 = errors.New("not a base-10 integer")

// Int converts signed integers of any width in base 10. The name is the Go
// type name ("int", "int64", ...), and Parse rejects values outside T's range.
type Int[T constraints.Signed] struct{}

func (Int[T]) Name() string { return reflect.TypeOf((*T)(nil)).Elem().String() }

func (Int[T]) Format(v T) string { return strconv.FormatInt(int64(v), 10) }

func (c Int[T]) Parse(s string) (T, error) {
	if s == "" {
		return 0, emptyErr(c.Name())
	}
	n, err := strconv.ParseInt(s, 10, reflect.TypeOf((*T)(nil)).Elem().Bits())
	if err != nil {
		return 0, invalid(c.Name(), s, err)
	}
	return T(n), nil
}

// Uint is the unsigned counterpart of Int.
type Uint[T constraints.Unsigned] struct{}

func (Uint[T]) Name() string { return reflect.TypeOf((*T)(nil)).Elem().String() }

func (Uint[T]) Format(v T) string { return strconv.FormatUint(uint64(v), 10) }

func (c Uint[T]) Parse(s string) (T, error) {
	if s == "" {
		return 0, emptyErr(c.Name())
	}
	n, err := strconv.ParseUint(s, 10, reflect.TypeOf((*T)(nil)).Elem().Bits())
	if err != nil {
		return 0, invalid(c.Name(), s, err)
	}
	return T(n), nil
}

// Float converts floating-point values. Format uses the shortest decimal
// representation that survives a round trip at T's precision.
type Float[T constraints.Float] struct{}

func (Float[T]) Name() string { return reflect.TypeOf((*T)(nil)).Elem().String() }

func (Float[T]) Format(v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, reflect.TypeOf((*T)(nil)).Elem().Bits())
}

func (c Float[T]) Parse(s string) (T, error) {
	if s == "" {
		return 0, emptyErr(c.Name())
	}
	f, err := strconv.ParseFloat(s, reflect.TypeOf((*T)(nil)).Elem().Bits())
	if err != nil {
		return 0, invalid(c.Name(), s, err)
	}
	return T(f), nil
}

// Bool converts booleans with strconv.ParseBool semantics: 1, t, T, TRUE,
// true, True and their false counterparts.
type Bool struct{}

func (Bool) Name() string { return "bool" }

func (Bool) Format(v bool) string { return strconv.FormatBool(v) }

func (c Bool) Parse(s string) (bool, error) {
	if s == "" {
		return false, emptyErr(c.Name())
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, invalid(c.Name(), s, err)
	}
	return b, nil
}

// BigInt converts arbitrary-precision integers in base 10. A nil *big.Int
// formats as "0".
type BigInt struct{}

func (BigInt) Name() string { return "bigint" }

func (BigInt) Format(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func (c BigInt) Parse(s string) (*big.Int, error) {
	if s == "" {
		return nil, emptyErr(c.Name())
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, invalid(c.Name(), s, errNotBase10)
	}
	return n, nil
}

// Decimal converts arbitrary-precision decimal numbers (shopspring/decimal).
// The canonical form drops trailing zeros: "1.50" parses fine but formats
// back as "1.5".
type Decimal struct{}

func (Decimal) Name() string { return "decimal" }

func (Decimal) Format(v decimal.Decimal) string { return v.String() }

func (c Decimal) Parse(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, emptyErr(c.Name())
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, invalid(c.Name(), s, err)
	}
	return d, nil
}
