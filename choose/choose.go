package choose

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/askline/askline/ask"
)

// Choose presents the options and blocks until the user picks one.
// It returns the chosen option verbatim, or ask.ErrCanceled if the user
// backed out (q/esc/ctrl+c interactively, the stream ending otherwise is an
// error as in ask).
//
// On a terminal this is an arrow-key picker. When stdin is a pipe or a test
// buffer it degrades to a line prompt that accepts one of the options,
// case-insensitively, so scripted runs keep working.
func Choose(prompt string, options ...string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("choose: no options given")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return chooseLine(os.Stdin, os.Stdout, prompt, options)
	}

	p := tea.NewProgram(newModel(prompt, options))
	res, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}

	m := res.(model)
	if m.canceled {
		return "", ask.ErrCanceled
	}
	return m.choice, nil
}

func chooseLine(r io.Reader, w io.Writer, prompt string, options []string) (string, error) {
	raw, err := ask.New[string]().
		Prompt(prompt).
		Options(options...).
		ErrMsg("Pick one of: " + strings.Join(options, ", ")).
		In(r).
		Out(w).
		Wait()
	if err != nil {
		return "", err
	}

	// Return the canonical spelling, not the user's casing.
	for _, opt := range options {
		if strings.EqualFold(opt, raw) {
			return opt, nil
		}
	}
	return raw, nil
}
