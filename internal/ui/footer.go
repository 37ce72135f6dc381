package ui

import (
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/dock/internal/keys"
)

// FlashType is the severity of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashDuration is how long a flash message stays in the footer.
const FlashDuration = 4 * time.Second

// FlashTickMsg is sent periodically while a flash message is showing.
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg after a second.
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings or a flash message
type Footer struct {
	width  int
	keyMap keys.KeyMap
	help   help.Model

	flashText    string
	flashType    FlashType
	flashExpires time.Time
	now          func() time.Time
}

// NewFooter creates a new footer
func NewFooter(km keys.KeyMap) *Footer {
	h := help.New()
	h.Styles.ShortKey = FooterKeyStyle
	h.Styles.ShortDesc = FooterDescStyle
	return &Footer{keyMap: km, help: h, now: time.Now}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash shows text until FlashDuration has passed.
func (f *Footer) SetFlash(text string, t FlashType) {
	f.flashText = text
	f.flashType = t
	f.flashExpires = f.now().Add(FlashDuration)
}

// ClearFlash removes any flash message.
func (f *Footer) ClearFlash() {
	f.flashText = ""
}

// HasFlash reports whether a flash message is showing.
func (f *Footer) HasFlash() bool {
	return f.flashText != ""
}

// Flash returns the current flash message and its type.
func (f *Footer) Flash() (string, FlashType) {
	return f.flashText, f.flashType
}

// ClearIfExpired drops the flash message once it is due at now. It reports
// whether a flash message is still showing.
func (f *Footer) ClearIfExpired(now time.Time) bool {
	if f.flashText != "" && !now.Before(f.flashExpires) {
		f.ClearFlash()
	}
	return f.HasFlash()
}

func flashStyle(t FlashType) (string, func(...string) string) {
	switch t {
	case FlashError:
		return "✗ ", FlashErrorStyle.Render
	case FlashWarning:
		return "! ", FlashWarningStyle.Render
	case FlashSuccess:
		return "✓ ", FlashSuccessStyle.Render
	default:
		return "• ", FlashInfoStyle.Render
	}
}

// View renders the footer
func (f *Footer) View() string {
	var content string
	if f.flashText != "" {
		icon, render := flashStyle(f.flashType)
		content = render(icon + f.flashText)
	} else {
		content = f.help.ShortHelpView(f.keyMap.ShortHelp())
	}

	if inner := f.width - 2; inner > 0 {
		content = ansi.Truncate(content, inner, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}
