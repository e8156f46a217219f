package ask

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/askline/askline/output"
)

// DefaultErrMsg is printed after a failed parse when no message was
// configured with ErrMsg.
const DefaultErrMsg = "Invalid input, please try again."

// Input collects configuration for reading one typed value from the console.
// Build it with New, chain the setters, then call Wait or Read. The
// configuration is not mutated by Wait or Read, so an Input can be reused
// for several prompts, but it is not safe for concurrent use: the console
// is one interactive session at a time.
type Input[T any] struct {
	prompt  string
	errMsg  string
	cancel  *string
	def     *T
	options []string
	parse   ParseFunc[T]
	styled  bool

	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// New creates an Input with no prompt, the default error message, and no
// cancellation token.
//
// Example:
//
//	n, err := ask.New[uint]().
//		Prompt("Enter a number: ").
//		ErrMsg("Not a number; please retry").
//		Wait()
func New[T any]() *Input[T] {
	return &Input[T]{}
}

// Prompt sets the text written before each read. It is written verbatim,
// with no newline added, so include trailing punctuation and spacing.
func (in *Input[T]) Prompt(text string) *Input[T] {
	in.prompt = text
	return in
}

// ErrMsg sets the message written after a failed parse, replacing
// DefaultErrMsg.
func (in *Input[T]) ErrMsg(text string) *Input[T] {
	in.errMsg = text
	return in
}

// CancelOn sets a cancellation token. When the trimmed raw input equals the
// token exactly, Wait and Read return ErrCanceled without attempting to
// parse. The empty string is a valid token: it cancels on a blank line.
func (in *Input[T]) CancelOn(token string) *Input[T] {
	in.cancel = &token
	return in
}

// Default sets the value returned when the user submits a blank line.
// The cancellation token is checked first.
func (in *Input[T]) Default(v T) *Input[T] {
	in.def = &v
	return in
}

// Options restricts raw input to one of the given strings, compared
// case-insensitively. The options are shown as a hint after the prompt, and
// input outside the set counts as a parse failure.
func (in *Input[T]) Options(opts ...string) *Input[T] {
	in.options = opts
	return in
}

// ParseWith replaces the default parse capability for the target type.
func (in *Input[T]) ParseWith(fn ParseFunc[T]) *Input[T] {
	in.parse = fn
	return in
}

// Styled renders the prompt, hints, and error message through the output
// package styles. The default is plain text.
func (in *Input[T]) Styled() *Input[T] {
	in.styled = true
	return in
}

// In sets the input stream. Defaults to os.Stdin, resolved at read time.
func (in *Input[T]) In(r io.Reader) *Input[T] {
	in.in = r
	in.reader = nil
	return in
}

// Out sets the output stream for prompts and error messages.
// Defaults to os.Stdout.
func (in *Input[T]) Out(w io.Writer) *Input[T] {
	in.out = w
	return in
}

// Wait blocks until the user enters input that parses as T, then returns the
// parsed value. On a failed parse it writes the error message and prompts
// again; there is no retry cap. It returns ErrCanceled when the input matches
// the cancellation token, and an error wrapping ErrClosed (and io.EOF) when
// the stream ends before a valid value is read.
func (in *Input[T]) Wait() (T, error) {
	var zero T
	parse := in.parseFunc()
	r := in.bufReader()
	w := in.writer()

	for {
		in.writePrompt(w)
		line, exhausted, err := in.readLine(r)
		if err != nil {
			return zero, err
		}
		if in.cancel != nil && line == *in.cancel {
			return zero, ErrCanceled
		}
		if in.def != nil && line == "" {
			return *in.def, nil
		}
		if len(in.options) == 0 || in.allowed(line) {
			v, perr := parse(line)
			if perr == nil {
				return v, nil
			}
			var unsupported *UnsupportedTypeError
			if errors.As(perr, &unsupported) {
				return zero, perr
			}
		}
		if exhausted {
			return zero, fmt.Errorf("%w: %w", ErrClosed, io.EOF)
		}
		in.writeErrMsg(w)
	}
}

// Read performs a single attempt: it prompts once, reads one line, and
// returns the parsed value or a *ParseError. Cancellation and stream
// exhaustion behave as in Wait.
func (in *Input[T]) Read() (T, error) {
	var zero T
	w := in.writer()

	in.writePrompt(w)
	line, _, err := in.readLine(in.bufReader())
	if err != nil {
		return zero, err
	}
	if in.cancel != nil && line == *in.cancel {
		return zero, ErrCanceled
	}
	if in.def != nil && line == "" {
		return *in.def, nil
	}
	if len(in.options) > 0 && !in.allowed(line) {
		return zero, &ParseError{
			Input: line,
			Err:   fmt.Errorf("not one of %s", strings.Join(in.options, "/")),
		}
	}
	v, perr := in.parseFunc()(line)
	if perr != nil {
		var unsupported *UnsupportedTypeError
		if errors.As(perr, &unsupported) {
			return zero, perr
		}
		return zero, &ParseError{Input: line, Err: perr}
	}
	return v, nil
}

// readLine reads one line and trims surrounding whitespace. The second
// result reports that the stream is exhausted after this line, so a failed
// parse must not loop for more input.
func (in *Input[T]) readLine(r *bufio.Reader) (string, bool, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("read input: %w", err)
	}
	exhausted := err != nil
	if exhausted && line == "" {
		return "", true, fmt.Errorf("%w: %w", ErrClosed, io.EOF)
	}
	return strings.TrimSpace(line), exhausted, nil
}

func (in *Input[T]) writePrompt(w io.Writer) {
	p := in.prompt
	if in.styled && p != "" {
		p = output.RenderPrompt(p)
	}
	if len(in.options) > 0 {
		hint := "[" + strings.Join(in.options, "/") + "]"
		if in.styled {
			hint = output.RenderHint(hint)
		}
		if p != "" && !strings.HasSuffix(in.prompt, " ") {
			p += " "
		}
		p += hint + " "
	}
	fmt.Fprint(w, p)
}

func (in *Input[T]) writeErrMsg(w io.Writer) {
	msg := in.errMsg
	if msg == "" {
		msg = DefaultErrMsg
	}
	if in.styled {
		msg = output.RenderError(msg)
	}
	fmt.Fprintln(w, msg)
}

func (in *Input[T]) allowed(line string) bool {
	for _, opt := range in.options {
		if strings.EqualFold(opt, line) {
			return true
		}
	}
	return false
}

func (in *Input[T]) parseFunc() ParseFunc[T] {
	if in.parse != nil {
		return in.parse
	}
	return defaultParse[T]
}

// bufReader wraps the input stream once and keeps it across calls, so a
// reused Input does not lose buffered data between prompts.
func (in *Input[T]) bufReader() *bufio.Reader {
	if in.reader == nil {
		src := in.in
		if src == nil {
			src = os.Stdin
		}
		in.reader = bufio.NewReader(src)
	}
	return in.reader
}

func (in *Input[T]) writer() io.Writer {
	if in.out != nil {
		return in.out
	}
	return os.Stdout
}
