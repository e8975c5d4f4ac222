package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
)

// KeyMap lists the picker's bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Home      key.Binding
	End       key.Binding
	Select    key.Binding
	NextMonth key.Binding
	PrevMonth key.Binding
	NextYear  key.Binding
	PrevYear  key.Binding
	Today     key.Binding
	Mode      key.Binding
	Help      key.Binding
	Quit      key.Binding
	Abort     key.Binding
}

// DefaultKeyMap mirrors the usual date-grid keyboard conventions.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "previous month"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next month"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first of month"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last of month"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "show next month"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "show previous month"),
		),
		NextYear: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "show next year"),
		),
		PrevYear: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "show previous year"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle partial mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "done"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.NextMonth, k.PrevMonth, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevPage, k.NextPage, k.Home, k.End},
		{k.Select, k.NextMonth, k.PrevMonth, k.NextYear, k.PrevYear, k.Today},
		{k.Mode, k.Help, k.Quit, k.Abort},
	}
}

// calendarKey translates a terminal key press into the grid's key
// vocabulary.
func (k KeyMap) calendarKey(msg tea.KeyMsg) (calendar.Key, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return calendar.KeyArrowLeft, true
	case key.Matches(msg, k.Right):
		return calendar.KeyArrowRight, true
	case key.Matches(msg, k.Up):
		return calendar.KeyArrowUp, true
	case key.Matches(msg, k.Down):
		return calendar.KeyArrowDown, true
	case key.Matches(msg, k.PrevPage):
		return calendar.KeyPageUp, true
	case key.Matches(msg, k.NextPage):
		return calendar.KeyPageDown, true
	case key.Matches(msg, k.Home):
		return calendar.KeyHome, true
	case key.Matches(msg, k.End):
		return calendar.KeyEnd, true
	case msg.String() == "enter":
		return calendar.KeyEnter, true
	case msg.String() == " ":
		return calendar.KeySpace, true
	default:
		return "", false
	}
}
