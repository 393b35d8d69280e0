package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada-menu/internal/logging"
	"github.com/Makepad-fr/tada-menu/internal/model"
	"github.com/Makepad-fr/tada-menu/internal/todo"
	"github.com/Makepad-fr/tada-menu/internal/ui"
)

// listItem adapts a numbered model.Item to bubbles/list.Item.
type listItem struct {
	n    int
	text string
}

func (i listItem) Title() string       { return ui.ItemLine(i.n, i.text) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.text }

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for i, it := range items {
		out = append(out, listItem{n: i + 1, text: it.Title})
	}
	return out
}

// Single line rows with a selection marker.
type itemDelegate struct {
	selected lipgloss.Style
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+it.Title())
}

// Model is the Bubble Tea model. It mutates the shared todo.List directly,
// so the list stays the single source of truth.
type Model struct {
	items *todo.List
	list  list.Model
	keys  keyMap
	st    ui.Styles
	log   *slog.Logger

	adding bool
	ti     textinput.Model

	status    string
	statusErr bool
	quitting  bool
}

// New builds the model over items, rendering with st. A nil logger
// discards records.
func New(items *todo.List, st ui.Styles, log *slog.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{selected: st.Selected}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = st.Title
	l.Styles.HelpStyle = st.Muted
	l.AdditionalShortHelpKeys = keys.menu
	l.AdditionalFullHelpKeys = keys.menu

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item text..."
	ti.CharLimit = 200

	m := Model{items: items, list: l, keys: keys, st: st, log: log, ti: ti}
	m.sync()
	return m
}

// sync rebuilds the rows from the todo list so numbering always matches
// list positions.
func (m *Model) sync() {
	m.list.SetItems(toListItems(m.items.Items()))
	m.list.Title = fmt.Sprintf("%s  %s %d",
		m.st.Title.Render("My To-Do List"),
		m.st.Accent.Render("Total"), m.items.Len())
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
	if isErr {
		m.log.Debug("rejected", "err", msg)
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(ws.Width-4, ws.Height-6)
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(k, m.keys.Add):
			m.adding = true
			m.status = ""
			m.ti.SetValue("")
			cmd := m.ti.Focus()
			return m, cmd
		case key.Matches(k, m.keys.Show):
			m.sync()
			m.status = ""
			return m, nil
		case key.Matches(k, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Submit):
			it, err := m.items.Add(m.ti.Value())
			if err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			m.adding = false
			m.ti.Blur()
			m.ti.SetValue("")
			m.sync()
			m.list.Select(m.items.Len() - 1)
			m.setStatus("Added: "+it.Title, false)
			return m, nil
		case key.Matches(k, m.keys.Cancel):
			m.adding = false
			m.ti.Blur()
			m.ti.SetValue("")
			m.status = ""
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) deleteSelected() {
	if m.items.Empty() {
		m.setStatus(todo.ErrEmptyList.Error(), true)
		return
	}
	idx := m.list.Index()
	it, err := m.items.Remove(uint64(idx + 1))
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.sync()
	if idx >= m.items.Len() && idx > 0 {
		m.list.Select(idx - 1)
	}
	m.setStatus("Deleted: "+it.Title, false)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	if m.items.Empty() {
		b.WriteString(m.st.Title.Render("My To-Do List") + "\n\n")
		b.WriteString(m.st.Muted.Render("No items yet, add one!") + "\n")
	} else {
		b.WriteString(m.list.View() + "\n")
	}
	if m.adding {
		b.WriteString(m.st.Frame.Render("Add new item\n"+m.ti.View()) + "\n")
	}
	if m.status != "" {
		st := m.st.Success
		if m.statusErr {
			st = m.st.Fail
		}
		b.WriteString(st.Render(m.status) + "\n")
	}
	if m.items.Empty() {
		b.WriteString(m.st.Muted.Render("1/a add • 4/q quit") + "\n")
	}
	view := m.st.Frame.Render(b.String())
	if m.st.Plain {
		// bubbles components keep their own styles; drop what they emit.
		view = ansi.Strip(view)
	}
	return view
}

// Run starts the program on in/out and blocks until the user quits.
// The list keeps every change made in the program.
func Run(items *todo.List, in io.Reader, out io.Writer, p *ui.Printer, log *slog.Logger) error {
	// Styles that bubbles builds internally bind to the default renderer.
	lipgloss.SetDefaultRenderer(p.Renderer())
	prog := tea.NewProgram(New(items, p.Styles(), log), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	p.OK("Thanks for using, bye!")
	return nil
}
