package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHelpers_PreserveText(t *testing.T) {
	// Styles may add ANSI escapes in a real terminal, but the text itself
	// must always survive rendering.
	tests := []struct {
		name   string
		render func(string) string
		text   string
	}{
		{"prompt", RenderPrompt, "Enter a number: "},
		{"hint", RenderHint, "(yes/no)"},
		{"error", RenderError, "Invalid input, please try again."},
		{"cursor", RenderCursor, "❯"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.render(tt.text), tt.text)
		})
	}
}

func TestRenderHelpers_EmptyText(t *testing.T) {
	assert.Empty(t, RenderPrompt(""))
	assert.Empty(t, RenderHint(""))
}
