package ask

import (
	"encoding"
	"reflect"
	"strconv"
)

// ParseFunc converts one trimmed line of raw input into a value.
type ParseFunc[T any] func(string) (T, error)

// defaultParse resolves the parse capability for T. A *T implementing
// encoding.TextUnmarshaler wins, so callers can make any custom type
// promptable by implementing the standard interface. Built-in rules cover
// strings, booleans, and the numeric kinds via strconv, including named
// types with those underlying kinds.
func defaultParse[T any](s string) (T, error) {
	var v T
	if u, ok := any(&v).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(s)); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}

	if err := setFromString(reflect.ValueOf(&v).Elem(), s); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func setFromString(rv reflect.Value, s string) error {
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	default:
		return &UnsupportedTypeError{Type: rv.Type()}
	}
	return nil
}
