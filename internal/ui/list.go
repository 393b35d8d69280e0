package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada-menu/internal/model"
)

const (
	listHeading = "My To-Do List"
	emptyList   = "No items yet, add one!"
)

// Banner returns title framed by five theme rules on each side.
func Banner(t Theme, title string) string {
	r := strings.Repeat(t.Rule, 5)
	return r + " " + title + " " + r
}

// Rule returns a rule line as wide as s.
func Rule(t Theme, s string) string {
	return strings.Repeat(t.Rule, lipgloss.Width(s))
}

// ItemLine formats one entry with its 1-based number.
func ItemLine(n int, title string) string {
	return fmt.Sprintf("%d. %s", n, title)
}

// ItemList prints every item numbered from 1 between a header and a footer
// banner, or an empty-list note.
func (p *Printer) ItemList(items []model.Item) {
	header := Banner(p.theme, listHeading)
	p.Blank()
	fmt.Fprintln(p.out, p.st.Title.Render(header))
	if len(items) == 0 {
		fmt.Fprintln(p.out, p.st.Muted.Render(emptyList))
	}
	for i, it := range items {
		// The title is written raw: styling would expand tabs.
		fmt.Fprintln(p.out, p.st.Index.Render(fmt.Sprintf("%d.", i+1))+" "+it.Title)
	}
	fmt.Fprintln(p.out, p.st.Title.Render(Rule(p.theme, header)))
	p.Blank()
}
