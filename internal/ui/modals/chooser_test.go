package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dock/internal/provider"
)

func init() {
	SetStyles(lipgloss.NewStyle(), lipgloss.NewStyle(),
		lipgloss.Color("#7C3AED"), lipgloss.Color("#06B6D4"), lipgloss.Color("#F9FAFB"),
		lipgloss.Color("#B0B8C4"), lipgloss.Color("#1F2937"), lipgloss.Color("#F59E0B"),
		50)
}

func testOptions() []provider.Option {
	return provider.Options([]provider.Config{
		{Name: "claude", DisplayName: "Claude"},
		{Name: "codex", DisplayName: "Codex"},
	})
}

func TestChooserState_Render(t *testing.T) {
	s := NewChooserState("toggle", testOptions())

	out := s.Render()
	for _, want := range []string{"Select agent for toggle", "Claude", "Codex", "Esc: cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}

func TestChooserState_DefaultSelection(t *testing.T) {
	s := NewChooserState("toggle", testOptions())

	opt, ok := s.Selected()
	if !ok || opt.Label != "Claude" {
		t.Errorf("Selected() = (%+v, %v), want Claude", opt, ok)
	}
	if len(s.Options()) != 2 {
		t.Errorf("Options() = %d, want 2", len(s.Options()))
	}
}

func TestChooserState_EnterAndEscAreNotConsumed(t *testing.T) {
	s := NewChooserState("toggle", testOptions())

	for _, msg := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		_, cmd := s.Update(msg)
		if cmd != nil {
			t.Errorf("%s should be left to the app, got a command", msg.String())
		}
	}
	if opt, _ := s.Selected(); opt.Label != "Claude" {
		t.Errorf("selection changed to %q", opt.Label)
	}
}
