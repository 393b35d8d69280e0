package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + banner rules.
type Theme struct {
	Name                                        string
	Title, Muted, Accent, Success, Error, Index lipgloss.TerminalColor
	SymOK, SymFail                              string
	Rule                                        string // repeated to draw banners
	Mono                                        bool   // never emit color
}

// Themes lists the names accepted by ThemeByName.
var Themes = []string{"classic", "neon", "mono"}

func ThemeByName(name string) (Theme, error) {
	none := lipgloss.NoColor{}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:    "neon",
			Title:   lipgloss.Color("13"), // bright magenta
			Muted:   lipgloss.Color("8"),
			Accent:  lipgloss.Color("14"),
			Success: lipgloss.Color("10"),
			Error:   lipgloss.Color("9"),
			Index:   lipgloss.Color("11"),
			SymOK:   "✔",
			SymFail: "✖",
			Rule:    "═",
		}, nil
	case "mono":
		return Theme{
			Name:    "mono",
			Title:   none,
			Muted:   none,
			Accent:  none,
			Success: none,
			Error:   none,
			Index:   none,
			SymOK:   "ok:",
			SymFail: "error:",
			Rule:    "=",
			Mono:    true,
		}, nil
	case "", "classic":
		return Theme{
			Name:    "classic",
			Title:   none,
			Muted:   lipgloss.Color("8"),
			Accent:  lipgloss.Color("12"),
			Success: lipgloss.Color("2"),
			Error:   lipgloss.Color("1"),
			Index:   none,
			SymOK:   "✔",
			SymFail: "✖",
			Rule:    "=",
		}, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Themes, ", "))
}
