package picker

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	faintColor   = lipgloss.Color("240") // Dark gray
	rangeColor   = lipgloss.Color("237") // Range band
	previewColor = lipgloss.Color("236") // Hover preview
	errorColor   = lipgloss.Color("196") // Red
	textColor    = lipgloss.Color("255") // White

	// Grid rows must stay exactly one line tall; mouse hit-testing
	// relies on it, so none of these styles carry vertical margins.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	dayStyle = lipgloss.NewStyle()

	outsideMonthStyle = lipgloss.NewStyle().
				Foreground(faintColor)

	disabledStyle = lipgloss.NewStyle().
			Foreground(faintColor).
			Strikethrough(true)

	inRangeStyle = lipgloss.NewStyle().
			Background(rangeColor)

	previewStyle = lipgloss.NewStyle().
			Background(previewColor).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor)

	todayStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
