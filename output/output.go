// Package output provides styled terminal output shared by the askline packages.
//
// The ask and choose packages render prompts, hints, and error messages through
// these helpers so every surface of the library looks the same.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// RenderPrompt styles prompt text (cyan, bold).
func RenderPrompt(text string) string {
	return promptStyle.Render(text)
}

// RenderHint styles secondary hint text such as defaults or option lists (gray).
func RenderHint(text string) string {
	return hintStyle.Render(text)
}

// RenderError styles a validation or parse-failure message (red, bold).
func RenderError(text string) string {
	return errorStyle.Render(text)
}

// RenderCursor styles the selection cursor used by interactive pickers.
func RenderCursor(text string) string {
	return cursorStyle.Render(text)
}

// Success prints a completed-operation message in green.
//
// Example:
//
//	output.Success("Saved 3 entries")
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints a failure message in red.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Info prints an informational message in cyan.
func Info(msg string) {
	fmt.Println(infoStyle.Render(msg))
}
