package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/dock/internal/frame"
	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/session"
)

// RenderFrame draws the frame's windows side by side, each height rows tall
// and exactly as wide as the frame made it.
func RenderFrame(f *frame.Frame, height int) string {
	selected := f.SelectedWindow()
	layout := f.Layout()

	cols := make([]string, 0, len(layout))
	for _, w := range layout {
		cols = append(cols, RenderWindow(w, height, w == selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// RenderWindow draws one window with its title and content.
func RenderWindow(w *frame.Window, height int, focused bool) string {
	inner := max(w.Width()-BorderSize, 1)
	bodyHeight := max(height-BorderSize-TitleHeight, 0)

	s := w.Surface()
	lines := surfaceLines(s)
	if len(lines) > bodyHeight {
		if s != nil && s.IsPanel() {
			// Agent output scrolls; keep the latest lines.
			lines = lines[len(lines)-bodyHeight:]
		} else {
			lines = lines[:bodyHeight]
		}
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, inner, "")
	}

	content := windowTitle(w, inner)
	if len(lines) > 0 {
		content += "\n" + strings.Join(lines, "\n")
	}
	return windowStyle(w, focused).Width(w.Width()).Height(height).Render(content)
}

func windowTitle(w *frame.Window, inner int) string {
	s := w.Surface()
	if s == nil {
		return ""
	}
	title := s.Name()
	if !s.Alive() {
		title += " (closed)"
	}
	if w.FixedSize() {
		title += " [locked]"
	}
	title = runewidth.Truncate(title, inner, "…")

	if s.IsPanel() {
		return PanelTitleStyle.Render(title)
	}
	return WindowTitleStyle.Render(title)
}

func windowStyle(w *frame.Window, focused bool) lipgloss.Style {
	if host.IsPanelWindow(w) {
		style := PanelWindowStyle
		if w.FixedSize() {
			style = PanelLockedStyle
		}
		if focused {
			style = style.BorderForeground(ColorBorderFocus)
		}
		return style
	}
	if focused {
		return WindowFocusedStyle
	}
	return WindowStyle
}

// surfaceLines returns the display lines of a surface.
func surfaceLines(s host.Surface) []string {
	switch s := s.(type) {
	case *frame.Buffer:
		return strings.Split(Highlight(s.Name(), strings.Join(s.Lines(), "\n")), "\n")
	case *session.Session:
		transcript := s.Transcript()
		out := make([]string, len(transcript))
		for i, line := range transcript {
			out[i] = TranscriptStyle.Render(line)
		}
		return out
	default:
		return nil
	}
}

// PlaceModal centers a modal body over a width x height area.
func PlaceModal(body string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, ModalStyle.Render(body))
}
