package choose

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/askline/askline/output"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// model is the bubbletea model for the picker
type model struct {
	prompt   string
	options  []string
	cursor   int
	keys     keyMap
	choice   string
	canceled bool
}

func newModel(prompt string, options []string) model {
	return model{
		prompt:  prompt,
		options: options,
		keys:    defaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.choice = m.options[m.cursor]
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.canceled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(output.RenderPrompt(m.prompt) + "\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(output.RenderCursor("❯ ") + opt + "\n")
		} else {
			b.WriteString("  " + opt + "\n")
		}
	}
	b.WriteString(output.RenderHint("↑/↓ move · enter select · q cancel") + "\n")
	return b.String()
}
