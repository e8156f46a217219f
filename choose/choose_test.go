package choose

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askline/askline/ask"
)

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestModel_CursorMovement(t *testing.T) {
	m := newModel("Pick one", []string{"a", "b", "c"})

	next, _ := m.Update(keyPress("down"))
	m = next.(model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyPress("j"))
	m = next.(model)
	assert.Equal(t, 2, m.cursor)

	// Clamped at the last option.
	next, _ = m.Update(keyPress("down"))
	m = next.(model)
	assert.Equal(t, 2, m.cursor)

	next, _ = m.Update(keyPress("up"))
	m = next.(model)
	assert.Equal(t, 1, m.cursor)
}

func TestModel_CursorClampedAtTop(t *testing.T) {
	m := newModel("Pick one", []string{"a", "b"})
	next, _ := m.Update(keyPress("up"))
	m = next.(model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_SelectQuitsWithChoice(t *testing.T) {
	m := newModel("Pick one", []string{"a", "b"})

	next, _ := m.Update(keyPress("down"))
	m = next.(model)
	next, cmd := m.Update(keyPress("enter"))
	m = next.(model)

	assert.Equal(t, "b", m.choice)
	assert.False(t, m.canceled)
	require.NotNil(t, cmd)
}

func TestModel_QuitCancels(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		t.Run(k, func(t *testing.T) {
			m := newModel("Pick one", []string{"a", "b"})
			next, cmd := m.Update(keyPress(k))
			m = next.(model)
			assert.True(t, m.canceled)
			require.NotNil(t, cmd)
		})
	}
}

func TestModel_View(t *testing.T) {
	m := newModel("Pick a flavor", []string{"vanilla", "chocolate"})
	view := m.View()

	assert.Contains(t, view, "Pick a flavor")
	assert.Contains(t, view, "vanilla")
	assert.Contains(t, view, "chocolate")
	assert.Contains(t, view, "❯ vanilla")
	assert.NotContains(t, view, "❯ chocolate")
}

func TestChooseLine_CanonicalizesCase(t *testing.T) {
	var out bytes.Buffer
	got, err := chooseLine(strings.NewReader("CHOCOLATE\n"), &out, "Flavor: ", []string{"vanilla", "chocolate"})

	require.NoError(t, err)
	assert.Equal(t, "chocolate", got)
}

func TestChooseLine_RepromptsOnUnknownOption(t *testing.T) {
	var out bytes.Buffer
	got, err := chooseLine(strings.NewReader("pistachio\nvanilla\n"), &out, "Flavor: ", []string{"vanilla", "chocolate"})

	require.NoError(t, err)
	assert.Equal(t, "vanilla", got)
	assert.Contains(t, out.String(), "Pick one of: vanilla, chocolate")
}

func TestChooseLine_StreamClosed(t *testing.T) {
	var out bytes.Buffer
	_, err := chooseLine(strings.NewReader(""), &out, "Flavor: ", []string{"vanilla"})
	assert.ErrorIs(t, err, ask.ErrClosed)
}

func TestChoose_NoOptions(t *testing.T) {
	_, err := Choose("Pick one")
	assert.Error(t, err)
}
