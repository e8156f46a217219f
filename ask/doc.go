// Package ask reads validated, typed input from the console.
//
// # Overview
//
// An Input is a small fluent builder: configure a prompt, an error message,
// and optionally a cancellation token, then call Wait. Wait prints the
// prompt, reads one line, and tries to parse it into the target type. On a
// failed parse it prints the error message and prompts again, without a
// retry cap; the user leaves the loop by entering something valid or by
// entering the cancellation token.
//
// # Usage
//
//	name, err := ask.New[string]().Prompt("Enter your name: ").Wait()
//
//	repeat, err := ask.New[uint]().
//		Prompt("Enter the number of times to repeat the message: ").
//		ErrMsg("That wasn't a number... try again").
//		Wait()
//
//	answer, err := ask.New[string]().
//		Prompt("Enter: ").
//		CancelOn("quit").
//		Wait()
//	if errors.Is(err, ask.ErrCanceled) {
//		// user entered "quit"
//	}
//
// # Target types
//
// Any type whose *T implements encoding.TextUnmarshaler can be prompted for
// directly. Strings, booleans, and the built-in numeric types (including
// named types based on them) are parsed with their strconv rules. Everything
// else needs ParseWith.
//
// # Outcomes
//
// Wait returns exactly one of: a parsed value, ErrCanceled, or an error
// wrapping ErrClosed (and io.EOF) when the input stream ends. Parse failures
// are never surfaced to the caller by Wait; use Read for a single attempt
// that returns a *ParseError instead of looping.
//
// # Non-interactive environments
//
// Prompts are plain text by default and streams are injectable with In and
// Out, so scripted input and tests work without a terminal. Styled opts in
// to lipgloss rendering for interactive sessions.
package ask
