package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Makepad-fr/tada-menu/internal/todo"
	"github.com/Makepad-fr/tada-menu/internal/ui"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// send feeds msgs through Update in order and returns the final model and
// the last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m, cmd
}

func plainStyles(t *testing.T, theme string, mode ui.ColorMode) ui.Styles {
	t.Helper()
	th, err := ui.ThemeByName(theme)
	if err != nil {
		t.Fatalf("ThemeByName(%q): %v", theme, err)
	}
	return ui.NewStyles(ui.NewRenderer(io.Discard, mode, th), th)
}

func newModel(titles ...string) Model {
	th, _ := ui.ThemeByName("classic")
	st := ui.NewStyles(ui.NewRenderer(io.Discard, ui.ColorNever, th), th)
	m := New(todo.New(titles...), st, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func rows(m Model) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.(listItem).Title())
	}
	return out
}

func sameRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddThroughInput(t *testing.T) {
	for _, k := range []string{"1", "a"} {
		t.Run(k, func(t *testing.T) {
			m, _ := send(t, newModel(), runes(k), runes("buy milk"), tea.KeyMsg{Type: tea.KeyEnter})
			if m.items.Len() != 1 || m.items.Items()[0].Title != "buy milk" {
				t.Fatalf("items = %+v, want [buy milk]", m.items.Items())
			}
			if m.adding {
				t.Error("input still open after a successful add")
			}
			if m.status != "Added: buy milk" || m.statusErr {
				t.Errorf("status = %q (err %v)", m.status, m.statusErr)
			}
			if got := rows(m); !sameRows(got, []string{"1. buy milk"}) {
				t.Errorf("rows = %q", got)
			}
		})
	}
}

func TestAddBlankKeepsInputOpen(t *testing.T) {
	m, _ := send(t, newModel(), runes("a"), runes("   "), tea.KeyMsg{Type: tea.KeyEnter})
	if m.items.Len() != 0 {
		t.Fatalf("Len = %d, want 0", m.items.Len())
	}
	if !m.adding {
		t.Error("input closed after a rejected add")
	}
	if !m.statusErr || m.status != todo.ErrEmptyTitle.Error() {
		t.Errorf("status = %q (err %v), want the empty text error", m.status, m.statusErr)
	}
}

func TestAddCancel(t *testing.T) {
	m, cmd := send(t, newModel(), runes("a"), runes("x"), tea.KeyMsg{Type: tea.KeyEscape})
	if m.items.Len() != 0 || m.adding || m.quitting {
		t.Errorf("after esc: len=%d adding=%v quitting=%v", m.items.Len(), m.adding, m.quitting)
	}
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("esc while adding quit the program")
		}
	}
}

func TestDigitsAreTextWhileAdding(t *testing.T) {
	m, _ := send(t, newModel(), runes("a"), runes("4"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.quitting {
		t.Fatal("typing 4 into the input quit the program")
	}
	if m.items.Len() != 1 || m.items.Items()[0].Title != "4" {
		t.Errorf("items = %+v, want [4]", m.items.Items())
	}
}

func TestDeleteSelected(t *testing.T) {
	m, _ := send(t, newModel("A", "B", "C"), tea.KeyMsg{Type: tea.KeyDown}, runes("3"))
	if got := rows(m); !sameRows(got, []string{"1. A", "2. C"}) {
		t.Errorf("rows = %q, want [1. A 2. C]", got)
	}
	if m.status != "Deleted: B" {
		t.Errorf("status = %q", m.status)
	}
}

func TestDeleteLastMovesSelectionUp(t *testing.T) {
	m, _ := send(t, newModel("A", "B"), tea.KeyMsg{Type: tea.KeyDown}, runes("d"))
	if m.items.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.items.Len())
	}
	if m.list.Index() != 0 {
		t.Errorf("selection = %d, want 0", m.list.Index())
	}
}

func TestDeleteOnEmptyList(t *testing.T) {
	m, _ := send(t, newModel(), runes("d"))
	if !m.statusErr || m.status != todo.ErrEmptyList.Error() {
		t.Errorf("status = %q (err %v), want the empty list error", m.status, m.statusErr)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		runes("4"),
		runes("q"),
		{Type: tea.KeyEscape},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m, cmd := send(t, newModel("A"), msg)
			if cmd == nil {
				t.Fatal("no command returned")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command did not quit")
			}
			if !m.quitting || m.View() != "" {
				t.Errorf("quitting=%v view=%q", m.quitting, m.View())
			}
			if m.items.Len() != 1 {
				t.Errorf("quit changed the list")
			}
		})
	}
}

func TestViewMentionsEmptyList(t *testing.T) {
	if v := newModel().View(); !strings.Contains(v, "No items yet") {
		t.Errorf("view does not mention the empty list:\n%s", v)
	}
}

func TestViewHonorsColorSettings(t *testing.T) {
	// A colorful default renderer must not leak into a plain model.
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	tests := []struct {
		name        string
		theme       string
		mode        ui.ColorMode
		wantEscapes bool
	}{
		{"mono", "mono", ui.ColorAuto, false},
		{"never", "neon", ui.ColorNever, false},
		{"always", "classic", ui.ColorAlways, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(todo.New("A", "B"), plainStyles(t, tt.theme, tt.mode), nil)
			m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}, runes("3"))
			v := m.View()
			if got := strings.Contains(v, "\x1b["); got != tt.wantEscapes {
				t.Errorf("view has escapes = %v, want %v:\n%q", got, tt.wantEscapes, v)
			}
			if !strings.Contains(v, "Deleted: A") {
				t.Errorf("view lost the status line:\n%s", v)
			}
		})
	}
}
