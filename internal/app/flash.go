package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dock/internal/errors"
	"github.com/zhubert/dock/internal/notification"
	"github.com/zhubert/dock/internal/panel"
	"github.com/zhubert/dock/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// commandFailed reports a failed panel command. A cancelled selection is only
// a warning; real failures also raise a desktop notification when enabled.
func (m *Model) commandFailed(a panel.Action, err error) tea.Cmd {
	if errors.Is(err, errors.KindNoSelection) {
		return m.ShowFlashWarning("No agent selected")
	}

	flash := m.ShowFlashError(a.String() + ": " + err.Error())
	if !m.config.GetNotifyErrors() {
		return flash
	}
	return tea.Batch(flash, m.notifyFailure(a, err))
}

// notifyFailure returns a command that sends the failure as a desktop
// notification.
func (m *Model) notifyFailure(a panel.Action, err error) tea.Cmd {
	project := string(m.currentProject())
	return func() tea.Msg {
		_ = notification.CommandFailed(a.String(), project, err)
		return nil
	}
}
