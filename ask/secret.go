package ask

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/askline/askline/output"
)

// Secret prompts for a line without echoing it, for passwords and API
// tokens. When stdin is not a terminal (tests, pipes, CI) it falls back to a
// plain line read.
func Secret(message string) (string, error) {
	fmt.Print(output.RenderPrompt(message) + ": ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println() // ReadPassword swallows the user's newline
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	return New[string]().Read()
}
