package session

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colourMuted = lipgloss.AdaptiveColor{Dark: "#9ca3af", Light: "#6b7280"}
	colourOK    = lipgloss.AdaptiveColor{Dark: "#22c55e", Light: "#16a34a"}
	colourError = lipgloss.AdaptiveColor{Dark: "#ef4444", Light: "#dc2626"}

	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(colourMuted)
	toastStyle = lipgloss.NewStyle().Bold(true).Foreground(colourOK)
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(colourError)
)

// renderToast styles a confirmation message; an empty message stays empty.
func renderToast(message string) string {
	switch {
	case message == "":
		return ""
	case strings.HasPrefix(message, "Copy failed"):
		return failStyle.Render(message)
	default:
		return toastStyle.Render(message)
	}
}
