package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dock/internal/provider"
)

// ChooserState is the provider chooser shown before a command that needs the
// user to pick an agent. The app runs the command once Enter is pressed.
type ChooserState struct {
	Command string
	options []provider.Option
	picked  int
	form    *huh.Form
}

// NewChooserState creates the chooser for command over options.
func NewChooserState(command string, options []provider.Option) *ChooserState {
	s := &ChooserState{Command: command, options: options}

	huhOptions := make([]huh.Option[int], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, i)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Agent").
			Options(huhOptions...).
			Value(&s.picked),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)

	initHuhForm(s.form)
	return s
}

func (s *ChooserState) Title() string { return "Select agent for " + s.Command }

func (s *ChooserState) Help() string { return "up/down: select  Enter: start  Esc: cancel" }

// Render draws the modal body.
func (s *ChooserState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

// Update forwards navigation keys to the form.
func (s *ChooserState) Update(msg tea.Msg) (*ChooserState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted option.
func (s *ChooserState) Selected() (provider.Option, bool) {
	if s.picked < 0 || s.picked >= len(s.options) {
		return provider.Option{}, false
	}
	return s.options[s.picked], true
}

// Options returns the options offered.
func (s *ChooserState) Options() []provider.Option { return s.options }
