// Package keys provides string constants for Bubble Tea v2 key press events
// and the key map of the terminal host.
//
// The constants are derived from tea.KeyPressMsg{...}.String() and are
// guaranteed to match the actual runtime values. Using them instead of
// hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
package keys

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Navigation keys
var (
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}.String()    // "up"
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}.String()  // "down"
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}.String()  // "left"
	Right = tea.KeyPressMsg{Code: tea.KeyRight}.String() // "right"
)

// Action keys
var (
	Enter    = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab      = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Escape   = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlT = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String() // "ctrl+t"
	CtrlF = (tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl}).String() // "ctrl+f"
	CtrlP = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}).String() // "ctrl+p"
	CtrlR = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String() // "ctrl+r"
	CtrlX = (tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}).String() // "ctrl+x"
	CtrlL = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String() // "ctrl+l"
	CtrlO = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String() // "ctrl+o"
)

// KeyMap holds the bindings of the terminal host.
type KeyMap struct {
	Toggle         key.Binding
	ToggleFocus    key.Binding
	ChangeProvider key.Binding
	Reset          key.Binding
	Stop           key.Binding
	Sessions       key.Binding
	NextWindow     key.Binding
	Grow           key.Binding
	Shrink         key.Binding
	Lock           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle:         key.NewBinding(key.WithKeys(CtrlT), key.WithHelp(CtrlT, "panel")),
		ToggleFocus:    key.NewBinding(key.WithKeys(CtrlF), key.WithHelp(CtrlF, "focus")),
		ChangeProvider: key.NewBinding(key.WithKeys(CtrlP), key.WithHelp(CtrlP, "agent")),
		Reset:          key.NewBinding(key.WithKeys(CtrlR), key.WithHelp(CtrlR, "reset")),
		Stop:           key.NewBinding(key.WithKeys(CtrlX), key.WithHelp(CtrlX, "stop")),
		Sessions:       key.NewBinding(key.WithKeys(CtrlO), key.WithHelp(CtrlO, "panels")),
		NextWindow:     key.NewBinding(key.WithKeys(Tab), key.WithHelp(Tab, "next window")),
		Grow:           key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "resize")),
		Shrink:         key.NewBinding(key.WithKeys("-", "_")),
		Lock:           key.NewBinding(key.WithKeys(CtrlL), key.WithHelp(CtrlL, "lock")),
		Quit:           key.NewBinding(key.WithKeys("q", CtrlC), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleFocus, k.ChangeProvider, k.Reset, k.Stop, k.Sessions, k.NextWindow, k.Grow, k.Lock, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.ToggleFocus, k.ChangeProvider},
		{k.Reset, k.Stop, k.Sessions},
		{k.NextWindow, k.Grow, k.Lock, k.Quit},
	}
}
