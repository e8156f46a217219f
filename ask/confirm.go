package ask

import (
	"io"
	"os"
	"strings"

	"github.com/askline/askline/output"
)

// Confirm asks a yes/no question on the console.
// Returns true for y/Y/yes/YES, false for anything else. An empty answer
// returns defaultYes, which also picks the [Y/n] or [y/N] hint.
//
// Example:
//
//	ok, err := ask.Confirm("Erase everything?", false)
//	// Displays: Erase everything? [y/N]: _
func Confirm(message string, defaultYes bool) (bool, error) {
	return confirm(os.Stdin, os.Stdout, message, defaultYes)
}

func confirm(r io.Reader, w io.Writer, message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	in := New[bool]().
		Prompt(output.RenderPrompt(message) + " " + output.RenderHint(hint) + ": ").
		In(r).
		Out(w).
		ParseWith(func(s string) (bool, error) {
			switch strings.ToLower(s) {
			case "":
				return defaultYes, nil
			case "y", "yes":
				return true, nil
			default:
				return false, nil
			}
		})

	return in.Read()
}
