package keys

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// TestKeyStringValues verifies that all key constants produce the expected
// string representations. This acts as a safety net if Bubble Tea ever changes
// its key string format.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		// Navigation
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Left", Left, "left"},
		{"Right", Right, "right"},

		// Actions
		{"Enter", Enter, "enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Escape", Escape, "esc"},

		// Ctrl combos
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlT", CtrlT, "ctrl+t"},
		{"CtrlF", CtrlF, "ctrl+f"},
		{"CtrlP", CtrlP, "ctrl+p"},
		{"CtrlR", CtrlR, "ctrl+r"},
		{"CtrlX", CtrlX, "ctrl+x"},
		{"CtrlL", CtrlL, "ctrl+l"},
		{"CtrlO", CtrlO, "ctrl+o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("keys.%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"toggle", tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}, km.Toggle},
		{"toggle focus", tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl}, km.ToggleFocus},
		{"change provider", tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}, km.ChangeProvider},
		{"reset", tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}, km.Reset},
		{"stop", tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}, km.Stop},
		{"sessions", tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}, km.Sessions},
		{"next window", tea.KeyPressMsg{Code: tea.KeyTab}, km.NextWindow},
		{"lock", tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}, km.Lock},
		{"quit ctrl+c", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, km.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q does not match %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}
}

func TestDefaultKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() should list bindings")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != len(km.ShortHelp()) {
		t.Errorf("FullHelp has %d bindings, ShortHelp %d", total, len(km.ShortHelp()))
	}
}
