package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/igorvolkov/taskmaster/internal/domain"
)

// Product color palette.
var (
	ColorGreen  = lipgloss.Color("#3cc45b")
	ColorYellow = lipgloss.Color("#fcc418")
	ColorOrange = lipgloss.Color("#ff6b35")
	ColorRed    = lipgloss.Color("#e74c3c")
	ColorBlue   = lipgloss.Color("#5aa7e4")
	ColorPurple = lipgloss.Color("#a78bfa")
	ColorDim    = lipgloss.Color("#8a8f98")
	ColorFg     = lipgloss.Color("#e6e6e6")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityStyle returns the style for a task priority.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed
	case domain.PriorityHigh:
		return StyleOrange
	case domain.PriorityMedium:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// PriorityBadge returns a colored marker like "● urgent".
func PriorityBadge(p domain.Priority) string {
	return PriorityStyle(p).Render("● " + string(p))
}

// StatusStyle returns the style for a task status.
func StatusStyle(s domain.TaskStatus) lipgloss.Style {
	switch s {
	case domain.TaskCompleted:
		return StyleGreen
	case domain.TaskInProgress:
		return StyleBlue
	case domain.TaskReview:
		return StylePurple
	case domain.TaskCancelled:
		return StyleDim
	default:
		return StyleFg
	}
}

// TrendIndicator returns a colored arrow for a trend direction.
func TrendIndicator(d domain.TrendDirection) string {
	switch d {
	case domain.TrendImproving:
		return StyleGreen.Render("▲ improving")
	case domain.TrendDeclining:
		return StyleRed.Render("▼ declining")
	default:
		return StyleYellow.Render("▬ stable")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
