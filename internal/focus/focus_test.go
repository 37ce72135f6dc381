package focus

import (
	"os"
	"testing"

	"github.com/zhubert/dock/internal/frame"
	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

type panelSurface struct {
	*frame.Buffer
}

func (panelSurface) IsPanel() bool { return true }

func newPanel(name string) host.Surface {
	return panelSurface{frame.NewBuffer(name, "", "/p", "")}
}

// setup returns a frame with two editor windows (a selected) and a right
// panel window.
func setup(t *testing.T) (f *frame.Frame, a, b, panel *frame.Window) {
	t.Helper()
	f = frame.New(120, frame.NewBuffer("a.go", "", "/p", ""))
	a = f.SelectedWindow()
	var err error
	if b, err = f.Split(frame.NewBuffer("b.go", "", "/p", "")); err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	w, err := f.OpenSide(newPanel("*agent*"), host.SideOptions{Position: host.Right})
	if err != nil {
		t.Fatalf("OpenSide() error = %v", err)
	}
	panel = w.(*frame.Window)
	f.Select(a)
	return f, a, b, panel
}

func TestSaveIfOutsidePanel(t *testing.T) {
	_, a, _, panel := setup(t)
	tr := NewTracker()

	tr.SaveIfOutsidePanel(a)
	if tr.Last() != host.Window(a) {
		t.Fatal("editor window should be saved")
	}

	tr.SaveIfOutsidePanel(panel)
	if tr.Last() != host.Window(a) {
		t.Error("panel window must not replace the saved window")
	}

	tr.SaveIfOutsidePanel(nil)
	if tr.Last() != host.Window(a) {
		t.Error("nil must not replace the saved window")
	}

	tr.Clear()
	if tr.Last() != nil {
		t.Error("Clear should forget the window")
	}
}

func TestRestore_PrefersSavedWindow(t *testing.T) {
	f, a, b, panel := setup(t)
	tr := NewTracker()
	tr.SaveIfOutsidePanel(a)

	f.Select(b)
	f.Select(panel)

	if !tr.Restore(f) {
		t.Fatal("Restore() = false")
	}
	if f.SelectedWindow() != a {
		t.Errorf("selected %s, want a.go", f.SelectedWindow().Surface().Name())
	}
}

func TestRestore_StaleFallsBackToMostRecent(t *testing.T) {
	f, a, b, panel := setup(t)
	tr := NewTracker()
	tr.SaveIfOutsidePanel(a)

	f.Select(b)
	f.Select(panel)
	if err := f.Close(a); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !tr.Restore(f) {
		t.Fatal("Restore() = false")
	}
	if f.SelectedWindow() != b {
		t.Errorf("selected %s, want b.go", f.SelectedWindow().Surface().Name())
	}
}

func TestRestore_SavedWindowRepurposedAsPanel(t *testing.T) {
	f, a, b, panel := setup(t)
	tr := NewTracker()
	tr.SaveIfOutsidePanel(a)

	// a now shows another project's panel.
	f.Select(a)
	if _, err := f.Display(newPanel("*other*")); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	f.Select(b)
	f.Select(panel)

	tr.Restore(f)
	if f.SelectedWindow() != b {
		t.Errorf("selected %s, want b.go", f.SelectedWindow().Surface().Name())
	}
}

func TestRestore_NoCandidate(t *testing.T) {
	f := frame.New(80, newPanel("*only*"))
	tr := NewTracker()

	if tr.Restore(f) {
		t.Error("Restore() should report no candidate")
	}
}
