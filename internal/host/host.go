// Package host declares the collaborators the panel controller drives: the
// editor's windows and surfaces, the session backend that produces panel
// surfaces, and the lookup for the current project.
package host

import (
	"context"

	"github.com/zhubert/dock/internal/provider"
)

// ProjectID identifies a project by its root path. Comparison is exact.
type ProjectID string

// Position is the frame edge a side window attaches to.
type Position string

const (
	Left  Position = "left"
	Right Position = "right"
)

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	return p == Left || p == Right
}

// Surface is displayable content: an editor buffer or an agent panel.
type Surface interface {
	ID() string
	Name() string
	// Project is the project the surface belongs to, or "" if unknown.
	Project() ProjectID
	// IsPanel marks agent panel surfaces. Every project's panel carries it.
	IsPanel() bool
	Alive() bool
}

// Window is a region of the frame displaying one surface.
type Window interface {
	ID() string
	Surface() Surface
	Width() int
	Alive() bool
}

// IsPanelWindow reports whether w currently displays a panel surface.
func IsPanelWindow(w Window) bool {
	if w == nil || !w.Alive() {
		return false
	}
	s := w.Surface()
	return s != nil && s.IsPanel()
}

// SideOptions configure a side window created for a panel.
type SideOptions struct {
	Position Position
	// Locked windows are skipped by window cycling and cannot be resized by
	// the user. Unlocked windows carry neither property.
	Locked bool
}

// WindowManager is the window layer of the host.
type WindowManager interface {
	// FrameWidth is the total width in columns.
	FrameWidth() int
	// WindowCount is the number of live windows in the frame.
	WindowCount() int
	// Windows lists live windows in layout order.
	Windows() []Window
	// Selected is the window with input focus.
	Selected() Window
	// Select gives w input focus.
	Select(w Window) error
	// WindowFor returns the live window displaying s, if any.
	WindowFor(s Surface) (Window, bool)
	// OpenSide opens a side-positioned, slotted, dedicated window showing s.
	OpenSide(s Surface, opts SideOptions) (Window, error)
	// Resize sets w's width in columns.
	Resize(w Window, columns int) error
	// Close removes w from the frame.
	Close(w Window) error
	// MostRecent returns the most recently selected live window for which
	// skip returns false.
	MostRecent(skip func(Window) bool) (Window, bool)
}

// StartOptions are passed to SessionBackend.Start.
type StartOptions struct {
	Project      ProjectID
	WorkDir      string
	AutoFocus    bool
	FreshSession bool
}

// SessionBackend starts and destroys agent sessions.
type SessionBackend interface {
	Start(ctx context.Context, cfg provider.Config, opts StartOptions) (Surface, error)
	Destroy(s Surface) error
}

// ProjectIdentifier names the project the user is working in.
type ProjectIdentifier interface {
	CurrentProject() ProjectID
}

// ProjectIdentifierFunc adapts a function to ProjectIdentifier.
type ProjectIdentifierFunc func() ProjectID

// CurrentProject calls f.
func (f ProjectIdentifierFunc) CurrentProject() ProjectID { return f() }
