package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func runWidthFor(t *testing.T, frame int, value, minimum, maximum string) (string, error) {
	t.Helper()
	useConfigDir(t)

	origFrame, origValue, origMin, origMax := widthFrame, widthValue, widthMinimum, widthMaximum
	t.Cleanup(func() {
		widthFrame, widthValue, widthMinimum, widthMaximum = origFrame, origValue, origMin, origMax
	})
	widthFrame, widthValue, widthMinimum, widthMaximum = frame, value, minimum, maximum

	var out bytes.Buffer
	widthCmd.SetOut(&out)
	err := widthCmd.RunE(widthCmd, nil)
	return strings.TrimSpace(out.String()), err
}

func TestWidthCmd(t *testing.T) {
	tests := []struct {
		name    string
		frame   int
		value   string
		minimum string
		maximum string
		want    string
	}{
		{"configured defaults", 200, "", "", "", "90"},
		{"clamped to max", 120, "", "", "", "60"},
		{"fraction", 200, "30%", "", "", "60"},
		{"raised to min", 200, "20", "", "", "40"},
		{"min wins over smaller width", 200, "10", "50", "", "50"},
		{"min above max wins", 100, "", "80", "", "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runWidthFor(t, tt.frame, tt.value, tt.minimum, tt.maximum)
			if err != nil {
				t.Fatalf("width error = %v", err)
			}
			if got != tt.want {
				t.Errorf("width = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWidthCmd_InvalidSpec(t *testing.T) {
	if _, err := runWidthFor(t, 200, "wide", "", ""); err == nil {
		t.Fatal("expected error for invalid width")
	}
}
