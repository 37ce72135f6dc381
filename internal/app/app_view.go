package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dock/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.chooser != nil {
		return ui.PlaceModal(m.chooser.Render(), m.width, m.height)
	}

	m.updateHeader()
	bodyHeight := max(m.height-ui.HeaderHeight-ui.FooterHeight, ui.BorderSize+ui.TitleHeight)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		ui.RenderFrame(m.frame, bodyHeight),
		m.footer.View(),
	)
}

// updateHeader shows the current project and its panel state.
func (m *Model) updateHeader() {
	id := m.currentProject()
	status := m.ctrl.Status(id)

	var label string
	if rec, ok := m.ctrl.Store().GetIfExists(id); ok && rec.Provider != nil {
		label = rec.Provider.Label()
	}
	m.header.SetProject(string(id), status.String(), label)
	m.header.SetLocked(m.config.IsLocked())
}
