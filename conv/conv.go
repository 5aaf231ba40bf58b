// Package conv converts raw literal text to semantic Go types on
// behalf of the typed document accessors. Conversions fail with an
// error, never a panic; unsupported target types report
// ErrUnsupported.
package conv

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/keygrove/keygrove/token"
)

var ErrUnsupported = errors.New("unsupported conversion")

// To converts text to a value of type T. The native table covers
// strings, booleans, the integer and float kinds, time.Time (the
// grammar's date-time layouts), time.Duration, and []byte; any other T
// must implement encoding.TextUnmarshaler.
func To[T any](text string) (T, error) {
	var res T
	var err error
	switch p := any(&res).(type) {
	case *string:
		*p = text
	case *[]byte:
		*p = []byte(text)
	case *bool:
		*p, err = strconv.ParseBool(text)
	case *int:
		var i int64
		i, err = strconv.ParseInt(text, 10, 0)
		*p = int(i)
	case *int8:
		var i int64
		i, err = strconv.ParseInt(text, 10, 8)
		*p = int8(i)
	case *int16:
		var i int64
		i, err = strconv.ParseInt(text, 10, 16)
		*p = int16(i)
	case *int32:
		var i int64
		i, err = strconv.ParseInt(text, 10, 32)
		*p = int32(i)
	case *int64:
		*p, err = strconv.ParseInt(text, 10, 64)
	case *uint:
		var u uint64
		u, err = strconv.ParseUint(text, 10, 0)
		*p = uint(u)
	case *uint8:
		var u uint64
		u, err = strconv.ParseUint(text, 10, 8)
		*p = uint8(u)
	case *uint16:
		var u uint64
		u, err = strconv.ParseUint(text, 10, 16)
		*p = uint16(u)
	case *uint32:
		var u uint64
		u, err = strconv.ParseUint(text, 10, 32)
		*p = uint32(u)
	case *uint64:
		*p, err = strconv.ParseUint(text, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(text, 64)
	case *time.Time:
		*p, err = token.ParseDateTime(text)
	case *time.Duration:
		*p, err = time.ParseDuration(text)
	default:
		tu, ok := any(&res).(encoding.TextUnmarshaler)
		if !ok {
			return res, fmt.Errorf("%w: %T", ErrUnsupported, res)
		}
		err = tu.UnmarshalText([]byte(text))
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// TryTo is To with a success flag; it never returns an error.
func TryTo[T any](text string) (T, bool) {
	v, err := To[T](text)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
