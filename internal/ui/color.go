package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode decides whether output carries ANSI styling.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // detect from the output stream
	ColorAlways ColorMode = "always" // force 256 colors, even when piped
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// NewRenderer returns a renderer for w with its profile pinned for the
// given mode and theme. ColorAuto leaves lipgloss' own detection in place.
func NewRenderer(w io.Writer, mode ColorMode, t Theme) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case t.Mono || mode == ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case mode == ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// Styles is a theme's style set bound to one renderer.
type Styles struct {
	Title, Muted, Accent, Success, Fail, Index lipgloss.Style
	Selected, Frame                            lipgloss.Style

	// Plain is set when the renderer emits no escape codes at all.
	Plain bool
}

func NewStyles(r *lipgloss.Renderer, t Theme) Styles {
	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(t.Title),
		Muted:    r.NewStyle().Foreground(t.Muted),
		Accent:   r.NewStyle().Foreground(t.Accent),
		Success:  r.NewStyle().Foreground(t.Success),
		Fail:     r.NewStyle().Foreground(t.Error).Bold(true),
		Index:    r.NewStyle().Foreground(t.Index),
		Selected: r.NewStyle().Bold(true).Reverse(true),
		Frame:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(0, 1),
		Plain:    r.ColorProfile() == termenv.Ascii,
	}
}
