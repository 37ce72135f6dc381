package ui

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/dock/internal/frame"
	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/keys"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/provider"
	"github.com/zhubert/dock/internal/session"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

func TestHeader_Text(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		project  string
		status   string
		provider string
		locked   bool
		contains []string
	}{
		{
			name:     "title only",
			width:    40,
			contains: []string{" dock"},
		},
		{
			name:     "project and panel",
			width:    80,
			project:  "/src/dock",
			status:   "visible",
			provider: "Claude",
			contains: []string{" dock", "/src/dock", "panel: visible (Claude)"},
		},
		{
			name:     "locked",
			width:    80,
			project:  "/src/dock",
			status:   "hidden",
			locked:   true,
			contains: []string{"panel: hidden", "locked"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader()
			h.SetWidth(tt.width)
			h.SetProject(tt.project, tt.status, tt.provider)
			h.SetLocked(tt.locked)

			text := h.Text()
			for _, want := range tt.contains {
				if !strings.Contains(text, want) {
					t.Errorf("Text() = %q, missing %q", text, want)
				}
			}
			if len([]rune(text)) != tt.width {
				t.Errorf("Text() width = %d, want %d", len([]rune(text)), tt.width)
			}
		})
	}
}

func TestHeader_TruncatesLongProject(t *testing.T) {
	h := NewHeader()
	h.SetWidth(20)
	h.SetProject("/a/very/long/project/path/that/does/not/fit", "visible", "")

	text := h.Text()
	if w := len([]rune(text)); w > 20 {
		t.Errorf("Text() width = %d, want <= 20: %q", w, text)
	}
	if !strings.Contains(text, "…") {
		t.Errorf("Text() should be truncated with an ellipsis: %q", text)
	}
}

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetWidth(30)
	if !strings.Contains(ansi.Strip(h.View()), "dock") {
		t.Error("View() should contain the title")
	}
}

func TestFooter_HelpAndFlash(t *testing.T) {
	f := NewFooter(keys.DefaultKeyMap())
	f.SetWidth(200)

	if out := ansi.Strip(f.View()); !strings.Contains(out, "ctrl+t") {
		t.Errorf("footer should show key help, got %q", out)
	}

	f.SetFlash("no provider selected", FlashError)
	if !f.HasFlash() {
		t.Fatal("HasFlash() = false after SetFlash")
	}
	out := ansi.Strip(f.View())
	if !strings.Contains(out, "no provider selected") || strings.Contains(out, "ctrl+t") {
		t.Errorf("flash should replace help, got %q", out)
	}
	if text, typ := f.Flash(); text != "no provider selected" || typ != FlashError {
		t.Errorf("Flash() = %q, %v", text, typ)
	}
}

func TestFooter_FlashExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	f := NewFooter(keys.DefaultKeyMap())
	f.now = func() time.Time { return now }

	f.SetFlash("saved", FlashSuccess)

	if !f.ClearIfExpired(now.Add(FlashDuration - time.Millisecond)) {
		t.Error("flash should still show before it expires")
	}
	if f.ClearIfExpired(now.Add(FlashDuration)) {
		t.Error("flash should be cleared once expired")
	}
	if f.HasFlash() {
		t.Error("HasFlash() = true after expiry")
	}
}

func TestFooter_Truncates(t *testing.T) {
	f := NewFooter(keys.DefaultKeyMap())
	f.SetWidth(20)
	f.SetFlash(strings.Repeat("x", 100), FlashInfo)

	for _, line := range strings.Split(f.View(), "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Errorf("footer line width = %d, want <= 20", w)
		}
	}
}

func TestHighlight(t *testing.T) {
	src := "package main\n\nfunc main() {}\n"
	out := Highlight("main.go", src)

	if !strings.Contains(out, "\x1b[") {
		t.Error("Go source should be colored")
	}
	if ansi.Strip(out) != src {
		t.Errorf("highlighting must not change the text: %q", ansi.Strip(out))
	}
}

func TestRenderFrame(t *testing.T) {
	buf := frame.NewBuffer("", "/p/main.go", "/p", "package main\n")
	f := frame.New(120, buf)

	b := session.NewBackend()
	s, err := b.Start(context.Background(), provider.Config{Name: "claude", DisplayName: "Claude"}, host.StartOptions{Project: "/p"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.OpenSide(s, host.SideOptions{Position: host.Right, Locked: true}); err != nil {
		t.Fatal(err)
	}

	out := ansi.Strip(RenderFrame(f, 10))
	for _, want := range []string{"main.go", "*dock:p:Claude*", "[locked]", "Claude started in /p"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderFrame() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderWindow_PanelShowsLatestLines(t *testing.T) {
	b := session.NewBackend()
	surface, _ := b.Start(context.Background(), provider.Config{Name: "a"}, host.StartOptions{Project: "/p"})
	sess := surface.(*session.Session)
	for i := 0; i < 20; i++ {
		sess.Append("line-" + string(rune('a'+i)))
	}

	f := frame.New(100, frame.NewBuffer("x", "", "", ""))
	w, _ := f.OpenSide(sess, host.SideOptions{})

	out := ansi.Strip(RenderWindow(w.(*frame.Window), 8, false))
	if !strings.Contains(out, "line-t") {
		t.Errorf("latest line missing:\n%s", out)
	}
	if strings.Contains(out, "line-a") {
		t.Errorf("oldest line should scroll away:\n%s", out)
	}
}

func TestPlaceModal(t *testing.T) {
	out := ansi.Strip(PlaceModal("pick one", 80, 20))
	if !strings.Contains(out, "pick one") {
		t.Error("modal body missing")
	}
	if lines := strings.Split(out, "\n"); len(lines) != 20 {
		t.Errorf("modal area height = %d, want 20", len(lines))
	}
}
