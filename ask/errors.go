package ask

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrCanceled is returned when the raw input matched the configured
	// cancellation token.
	ErrCanceled = errors.New("input canceled")

	// ErrClosed is returned when the input stream ends before a valid value
	// was read. Retrying an exhausted stream cannot succeed, so the retry
	// loop stops instead of spinning.
	ErrClosed = errors.New("input stream closed")
)

// ParseError is returned by Read when a single parse attempt fails.
// Wait never returns it; parse failures inside Wait only trigger a re-prompt.
type ParseError struct {
	Input string // the trimmed raw input
	Err   error  // the underlying parse failure
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnsupportedTypeError is returned when the target type has no built-in parse
// rule and does not implement encoding.TextUnmarshaler. Use ParseWith for
// such types. This is a configuration mistake, so Wait treats it as fatal
// rather than re-prompting.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("no parse rule for type %s", e.Type)
}
