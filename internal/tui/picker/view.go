package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
	"github.com/alexisbeaulieu97/rangepick/internal/export"
)

// View renders the current model state
func (m Model) View() string {
	if m.width > 0 && m.width < minWidth {
		return errorStyle.Render(fmt.Sprintf("Terminal too narrow (%d columns, need %d)", m.width, minWidth))
	}

	var content strings.Builder

	content.WriteString(m.renderTitle())
	content.WriteString("\n")
	content.WriteString(m.renderWeekdays())
	content.WriteString("\n")
	for _, week := range m.controller.CalendarDates() {
		content.WriteString(m.renderWeek(week))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(m.renderStatus())
	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))

	return content.String()
}

func (m Model) renderTitle() string {
	first := time.Date(m.controller.DisplayYear(), m.controller.DisplayMonth(), 1, 0, 0, 0, 0, time.UTC)
	return titleStyle.Render(first.Format("January 2006"))
}

func (m Model) renderWeekdays() string {
	cells := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(m.controller.WeekStart()) + i) % 7)
		cells = append(cells, weekdayStyle.Render(fmt.Sprintf(" %s ", day.String()[:2])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderWeek(week []calendar.CalendarDate) string {
	cells := make([]string, 0, len(week))
	for _, cell := range week {
		cells = append(cells, m.renderCell(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderCell(cell calendar.CalendarDate) string {
	style := dayStyle
	if !cell.IsCurrentMonth {
		style = outsideMonthStyle
	}
	if cell.IsInRange {
		style = style.Inherit(inRangeStyle)
	}
	if cell.IsInPreview {
		style = style.Inherit(previewStyle)
	}
	if cell.IsToday {
		style = todayStyle.Inherit(style)
	}
	if cell.IsSelected {
		style = selectedStyle
	}
	if cell.IsDisabled {
		style = disabledStyle
	}
	if cell.IsFocused && m.paint.gridFocused {
		style = style.Reverse(true)
	}
	return style.Render(fmt.Sprintf(" %2d ", cell.Date.Day()))
}

func (m Model) renderStatus() string {
	line := "Selected: " + export.Text(m.controller.Selection())
	mode := m.controller.Mode()
	if mode.AllowRangeSelection && mode.AllowPartialRangeSelection {
		line += fmt.Sprintf("  [mode: %s]", mode.PartialRangeSelectionType)
	}
	if years := m.controller.YearOptions(); len(years) > 0 {
		line += fmt.Sprintf("  [years %d-%d]", years[0], years[len(years)-1])
	}
	return statusStyle.Render(line)
}
