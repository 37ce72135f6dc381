package provider

import (
	"context"
	stderrors "errors"

	huh "charm.land/huh/v2"

	"github.com/zhubert/dock/internal/errors"
)

// FormChooser asks the user with a blocking huh select prompt. It owns the
// terminal while running, so it is only used outside the TUI.
type FormChooser struct {
	Theme huh.Theme
}

// Choose runs the prompt and returns the picked option index.
func (f *FormChooser) Choose(ctx context.Context, prompt string, options []Option) (int, error) {
	picked := 0
	huhOptions := make([]huh.Option[int], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, i)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(prompt).
			Options(huhOptions...).
			Value(&picked),
	))
	if f.Theme != nil {
		form = form.WithTheme(f.Theme)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) || stderrors.Is(err, context.Canceled) {
			return -1, errors.NoSelection()
		}
		return -1, err
	}
	return picked, nil
}

// StagedChooser answers with a label chosen ahead of time, for hosts whose
// prompt runs asynchronously (the TUI modal). Each staged answer is used once.
type StagedChooser struct {
	label  string
	staged bool
}

// Stage records the label to answer the next Choose call with.
func (s *StagedChooser) Stage(label string) {
	s.label = label
	s.staged = true
}

// Clear drops any staged answer.
func (s *StagedChooser) Clear() {
	s.label = ""
	s.staged = false
}

// Pending reports whether an answer is staged.
func (s *StagedChooser) Pending() bool {
	return s.staged
}

// Choose returns the index of the staged label, or NoSelection.
func (s *StagedChooser) Choose(_ context.Context, _ string, options []Option) (int, error) {
	if !s.staged {
		return -1, errors.NoSelection()
	}
	label := s.label
	s.Clear()

	for i, opt := range options {
		if opt.Label == label {
			return i, nil
		}
	}
	return -1, errors.ProviderNotFound(label)
}
