// Package palette implements the command palette: a debounced substring
// matcher over the command registry and a keyboard-driven selection state
// machine, rendered as an overlay by the hosting shell.
package palette

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/domain"
)

// debounceInterval is how long typing must settle before the result list
// is recomputed. Purely a performance knob; correctness does not depend
// on it.
const debounceInterval = 150 * time.Millisecond

// Navigator performs a client-side route change given a path string.
type Navigator interface {
	Navigate(path string)
}

// FocusToken is an opaque snapshot of whatever had focus before the
// palette opened.
type FocusToken any

// FocusManager is the focus primitive supplied by the hosting shell.
type FocusManager interface {
	Current() FocusToken
	Restore(FocusToken)
}

// debounceMsg fires when a pending debounce timer elapses. A stale seq
// means a newer keystroke restarted the timer and this tick is ignored,
// so at most one timer is ever live.
type debounceMsg struct {
	seq int
}

// Model is the palette component. Closed is the zero state; Open(query,
// selectedIndex) is entered through Open and left through close, which
// always resets query and selection and restores captured focus.
type Model struct {
	entries  []domain.CommandEntry
	results  []domain.CommandEntry
	input    textinput.Model
	open     bool
	selected int
	seq      int
	applied  string

	nav      Navigator
	focus    FocusManager
	onClose  func()
	captured FocusToken

	width int

	// rowToResult maps rendered content lines to result indices so pointer
	// clicks take the same execute path as Enter. Rebuilt on each View.
	rowToResult []int
}

// New creates a closed palette over the given command set.
func New(entries []domain.CommandEntry, nav Navigator, focus FocusManager, onClose func()) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command or destination…"
	ti.Prompt = "> "
	ti.CharLimit = 128

	return &Model{
		entries: entries,
		input:   ti,
		nav:     nav,
		focus:   focus,
		onClose: onClose,
	}
}

// SetEntries replaces the command set. Results are recomputed if the
// palette is open.
func (m *Model) SetEntries(entries []domain.CommandEntry) {
	m.entries = entries
	if m.open {
		m.applyQuery(m.applied)
	}
}

// SetWidth fixes the rendered width of the palette box.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// IsOpen reports whether the palette is open.
func (m *Model) IsOpen() bool {
	return m.open
}

// Query returns the raw (not yet debounced) query text.
func (m *Model) Query() string {
	return m.input.Value()
}

// Results returns the current filtered result list.
func (m *Model) Results() []domain.CommandEntry {
	return m.results
}

// SelectedIndex returns the highlighted result index.
func (m *Model) SelectedIndex() int {
	return m.selected
}

// Open transitions Closed -> Open("", 0), capturing the currently focused
// element for restoration on close.
func (m *Model) Open() tea.Cmd {
	if m.open {
		return nil
	}
	m.open = true
	if m.focus != nil {
		m.captured = m.focus.Current()
	}
	m.input.Reset()
	m.input.Focus()
	m.selected = 0
	m.applyQuery("")
	return textinput.Blink
}

// Close closes the palette from outside, taking the same reset path as
// Escape and Enter.
func (m *Model) Close() {
	if !m.open {
		return
	}
	m.close()
}

// Update drives the state machine. Returns commands for the hosting
// program; a closed palette ignores everything, which also disposes of
// any debounce tick still in flight.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}

	switch msg := msg.(type) {
	case debounceMsg:
		if msg.seq != m.seq {
			return nil // superseded by a newer keystroke
		}
		m.applyQuery(m.input.Value())
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.close()
			return nil
		case "enter":
			if len(m.results) == 0 {
				return nil
			}
			m.execute(m.selected)
			return nil
		case "down", "ctrl+n", "tab":
			if len(m.results) == 0 {
				return nil
			}
			m.selected = (m.selected + 1) % len(m.results)
			return nil
		case "up", "ctrl+p", "shift+tab":
			if len(m.results) == 0 {
				return nil
			}
			m.selected = (m.selected - 1 + len(m.results)) % len(m.results)
			return nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.seq++
			seq := m.seq
			debounce := tea.Tick(debounceInterval, func(time.Time) tea.Msg {
				return debounceMsg{seq: seq}
			})
			return tea.Batch(cmd, debounce)
		}
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// ClickLine executes the result rendered at the given content line, if
// any. Pointer clicks share the Enter path.
func (m *Model) ClickLine(line int) {
	if !m.open || line < 0 || line >= len(m.rowToResult) {
		return
	}
	idx := m.rowToResult[line]
	if idx < 0 || idx >= len(m.results) {
		return
	}
	m.execute(idx)
}

// execute fires exactly one navigation for the entry at idx and closes.
func (m *Model) execute(idx int) {
	entry := m.results[idx]
	if m.nav != nil {
		m.nav.Navigate(entry.Path)
	}
	m.close()
}

// close resets query and selection, invalidates any pending debounce tick,
// restores captured focus and notifies the shell.
func (m *Model) close() {
	m.open = false
	m.seq++
	m.input.Reset()
	m.input.Blur()
	m.selected = 0
	m.results = nil
	m.applied = ""
	if m.focus != nil {
		m.focus.Restore(m.captured)
		m.captured = nil
	}
	if m.onClose != nil {
		m.onClose()
	}
}

// applyQuery recomputes the result list and resets the selection, keeping
// the selectedIndex invariant: 0 <= selected < len(results) when non-empty.
func (m *Model) applyQuery(query string) {
	m.applied = query
	m.results = Filter(m.entries, query)
	m.selected = 0
}
