package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const monthsPerYear = 12

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case paintedMsg:
		m.paint.flush()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextMonth):
		m.controller.ShiftMonths(m.ctx, 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevMonth):
		m.controller.ShiftMonths(m.ctx, -1)
		return m, nil

	case key.Matches(msg, m.keys.NextYear):
		m.controller.ShiftMonths(m.ctx, monthsPerYear)
		return m, nil

	case key.Matches(msg, m.keys.PrevYear):
		m.controller.ShiftMonths(m.ctx, -monthsPerYear)
		return m, nil

	case key.Matches(msg, m.keys.Today):
		if today := m.now(); m.controller.InYearRange(today.Year()) {
			m.controller.SetDisplayDate(m.ctx, today)
		}
		return m, nil

	case key.Matches(msg, m.keys.Mode):
		mode := m.controller.Mode()
		if mode.AllowRangeSelection && mode.AllowPartialRangeSelection {
			m.controller.SetPartialRangeType(m.ctx, nextPartialType(mode.PartialRangeSelectionType))
		}
		return m, nil
	}

	if k, ok := m.keys.calendarKey(msg); ok {
		m.controller.HandleKeyDown(m.ctx, k)
		return m, m.paint.cmd()
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cell, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.controller.HandleDateHover(cell)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.controller.HandleDateClick(m.ctx, cell)
	}
	return m, nil
}
