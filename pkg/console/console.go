// Package console formats messages for terminal output.
package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/githubnext/gh-prtitle/pkg/tty"
)

// isTTY decides whether the Format helpers, which target stderr, apply
// styles; tests replace it.
var isTTY = tty.IsStderrTerminal

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{
		Light: "#d73a49",
		Dark:  "#f07178",
	})
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#22863a",
		Dark:  "#c2d94c",
	})
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#0366d6",
		Dark:  "#59c2ff",
	})
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#b08800",
		Dark:  "#ffb454",
	})
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#6a737d",
		Dark:  "#6c7680",
	})
)

func applyStyle(style lipgloss.Style, text string) string {
	return styleIf(isTTY(), style, text)
}

func styleIf(styled bool, style lipgloss.Style, text string) string {
	if !styled {
		return text
	}
	return style.Render(text)
}

// FormatErrorMessage formats an error line.
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatSuccessMessage formats a success line.
func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ ") + message
}

// FormatInfoMessage formats an informational line.
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatWarningMessage formats a warning line.
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatVerboseMessage formats detail shown with --verbose.
func FormatVerboseMessage(message string) string {
	return applyStyle(mutedStyle, "→ "+message)
}

// FormatListItem formats an indented bullet.
func FormatListItem(item string) string {
	return "  • " + item
}
