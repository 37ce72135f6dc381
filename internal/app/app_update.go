package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dock/internal/keys"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/panel"
	"github.com/zhubert/dock/internal/provider"
	"github.com/zhubert/dock/internal/ui"
	"github.com/zhubert/dock/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired(time.Time(msg)) {
			return m, ui.FlashTick()
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}

	if m.chooser != nil {
		var cmd tea.Cmd
		m.chooser, cmd = m.chooser.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateSizes() {
	m.frame.SetWidth(m.width)
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	logger.Debug("App: KeyPressMsg received: key=%q, chooser=%v", msg.String(), m.chooser != nil)

	if m.chooser != nil {
		return m.handleChooserKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.Shutdown(); err != nil {
			logger.Warn("App: shutdown on quit: %v", err)
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		return m.startAction(panel.ActionToggle)
	case key.Matches(msg, m.keys.ToggleFocus):
		return m.startAction(panel.ActionToggleFocus)
	case key.Matches(msg, m.keys.ChangeProvider):
		return m.startAction(panel.ActionChangeProvider)
	case key.Matches(msg, m.keys.Reset):
		return m.startAction(panel.ActionReset)
	case key.Matches(msg, m.keys.Stop):
		return m.startAction(panel.ActionStop)
	case key.Matches(msg, m.keys.Sessions):
		return m, m.ShowFlashInfo(m.sessionSummary())
	case key.Matches(msg, m.keys.NextWindow):
		m.frame.Next()
	case key.Matches(msg, m.keys.Grow):
		return m, m.resizeSelected(resizeStep)
	case key.Matches(msg, m.keys.Shrink):
		return m, m.resizeSelected(-resizeStep)
	case key.Matches(msg, m.keys.Lock):
		if m.config.ToggleLocked() {
			return m, m.ShowFlashInfo("Panel width locked")
		}
		return m, m.ShowFlashInfo("Panel width unlocked")
	}
	return m, nil
}

// startAction runs a, first opening the chooser when the action would ask
// for a provider.
func (m *Model) startAction(a panel.Action) (tea.Model, tea.Cmd) {
	if m.ctrl.NeedsSelection(a) {
		m.chooser = modals.NewChooserState(a.String(), provider.Options(m.config.Providers()))
		m.pending = a
		return m, nil
	}
	return m, m.dispatch(a)
}

func (m *Model) dispatch(a panel.Action) tea.Cmd {
	if err := m.run(a); err != nil {
		return m.commandFailed(a, err)
	}
	switch a {
	case panel.ActionReset:
		return m.ShowFlashSuccess("Panel reset")
	case panel.ActionStop:
		return m.ShowFlashSuccess("Session stopped")
	}
	return nil
}

func (m *Model) handleChooserKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		a := m.pending
		m.chooser = nil
		m.staged.Clear()
		logger.WithProject(string(m.currentProject())).Info("selection cancelled", "action", a.String())
		return m, m.ShowFlashWarning("No agent selected")

	case keys.Enter:
		a := m.pending
		opt, ok := m.chooser.Selected()
		m.chooser = nil
		if !ok {
			return m, m.ShowFlashWarning("No agent selected")
		}
		m.staged.Stage(opt.Label)
		return m, m.dispatch(a)
	}

	var cmd tea.Cmd
	m.chooser, cmd = m.chooser.Update(msg)
	return m, cmd
}

// resizeSelected grows the selected window by delta columns.
func (m *Model) resizeSelected(delta int) tea.Cmd {
	w := m.frame.SelectedWindow()
	if w == nil {
		return nil
	}
	if err := m.frame.Grow(w, delta); err != nil {
		return m.ShowFlashWarning(fmt.Sprintf("Cannot resize: %v", err))
	}
	return nil
}

// sessionSummary describes every project's panel on one line.
func (m *Model) sessionSummary() string {
	infos := m.ctrl.Sessions()
	if len(infos) == 0 {
		return "No panels"
	}

	parts := make([]string, 0, len(infos))
	for _, info := range infos {
		desc := info.Visibility.String()
		if info.Provider != "" {
			desc += ", " + info.Provider
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", filepath.Base(string(info.Project)), desc))
	}
	return strings.Join(parts, " · ")
}
