package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width    int
	project  string
	status   string
	provider string
	locked   bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetProject sets the current project and its panel state.
func (h *Header) SetProject(project, status, provider string) {
	h.project = project
	h.status = status
	h.provider = provider
}

// SetLocked sets the lock mode shown in the header.
func (h *Header) SetLocked(locked bool) {
	h.locked = locked
}

// Text returns the unstyled header line.
func (h *Header) Text() string {
	titleText := " dock"

	var parts []string
	if h.project != "" {
		parts = append(parts, h.project)
	}
	if h.status != "" {
		panel := "panel: " + h.status
		if h.provider != "" {
			panel += " (" + h.provider + ")"
		}
		parts = append(parts, panel)
	}
	if h.locked {
		parts = append(parts, "locked")
	}
	rightText := strings.Join(parts, " · ")
	if rightText != "" {
		rightText += " "
	}

	room := h.width - runewidth.StringWidth(titleText) - 1
	if room < 0 {
		room = 0
	}
	if runewidth.StringWidth(rightText) > room {
		rightText = runewidth.Truncate(rightText, room, "…")
	}

	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}
	return titleText + strings.Repeat(" ", paddingLen) + rightText
}

// View renders the header
func (h *Header) View() string {
	return renderGradient(h.Text())
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content on a background fading from the
// primary color to the main background.
func renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	startR, startG, startB := parseHexColor(gradientStart)
	endR, endG, endB := parseHexColor(gradientEnd)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(ColorText).
			Bold(i < 5) // " dock"

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
