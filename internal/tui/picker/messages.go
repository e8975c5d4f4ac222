package picker

import tea "github.com/charmbracelet/bubbletea"

// paintedMsg is handled after View has produced the frame for the previous
// Update. The renderer writes frames on its own ticker, so the terminal may
// not show that frame yet. Deferred work only relies on View having rendered
// the new month.
type paintedMsg struct{}

// paintQueue holds work deferred until after the next frame. It is shared
// by pointer so value copies of Model see the same queue.
type paintQueue struct {
	pending     []func()
	gridFocused bool
}

func newPaintQueue() *paintQueue {
	return &paintQueue{gridFocused: true}
}

// schedule parks fn until the next paintedMsg and hides the focus ring while
// the grid is being swapped.
func (q *paintQueue) schedule(fn func()) {
	q.pending = append(q.pending, fn)
	q.gridFocused = false
}

func (q *paintQueue) flush() {
	fns := q.pending
	q.pending = nil
	for _, fn := range fns {
		fn()
	}
}

// cmd returns a command that reports the paint, or nil when nothing waits.
// The event loop renders View before it reads the next message, so the
// message is never handled ahead of the frame it follows, though it can be
// handled before the renderer's next flush.
func (q *paintQueue) cmd() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	return func() tea.Msg { return paintedMsg{} }
}
