// Package frame is an in-memory window manager: a single horizontal frame of
// windows, each showing one surface. The terminal host renders it, and the
// controller tests drive it directly.
package frame

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zhubert/dock/internal/errors"
	"github.com/zhubert/dock/internal/host"
)

// MinWindowWidth is the narrowest a window may become.
const MinWindowWidth = 10

// Window is a region of the frame.
type Window struct {
	id       string
	surface  host.Surface
	width    int
	dead     bool
	usedAt   uint64
	side     bool
	position host.Position

	// Window parameters. Side windows are dedicated to their surface;
	// locked panels additionally set noCycle and fixedSize.
	dedicated bool
	noCycle   bool
	fixedSize bool
}

func (w *Window) ID() string              { return w.id }
func (w *Window) Surface() host.Surface   { return w.surface }
func (w *Window) Width() int              { return w.width }
func (w *Window) Alive() bool             { return !w.dead }
func (w *Window) Side() bool              { return w.side }
func (w *Window) Position() host.Position { return w.position }
func (w *Window) Dedicated() bool         { return w.dedicated }

// NoCycle reports whether window cycling skips this window.
func (w *Window) NoCycle() bool { return w.noCycle }

// FixedSize reports whether the user may not resize this window.
func (w *Window) FixedSize() bool { return w.fixedSize }

// Frame holds the windows left to right.
type Frame struct {
	width    int
	windows  []*Window
	selected *Window
	clock    uint64
}

// New creates a frame with a single window showing initial.
func New(width int, initial host.Surface) *Frame {
	f := &Frame{width: max(width, MinWindowWidth)}
	w := f.newWindow(initial)
	w.width = f.width
	f.windows = []*Window{w}
	f.touch(w)
	return f
}

func (f *Frame) newWindow(s host.Surface) *Window {
	return &Window{id: uuid.NewString(), surface: s}
}

func (f *Frame) touch(w *Window) {
	f.clock++
	w.usedAt = f.clock
	f.selected = w
}

// FrameWidth returns the frame's width in columns.
func (f *Frame) FrameWidth() int { return f.width }

// WindowCount returns the number of windows.
func (f *Frame) WindowCount() int { return len(f.windows) }

// Windows returns the windows left to right.
func (f *Frame) Windows() []host.Window {
	out := make([]host.Window, len(f.windows))
	for i, w := range f.windows {
		out[i] = w
	}
	return out
}

// Layout returns the concrete windows left to right, for rendering.
func (f *Frame) Layout() []*Window {
	out := make([]*Window, len(f.windows))
	copy(out, f.windows)
	return out
}

// Selected returns the focused window.
func (f *Frame) Selected() host.Window {
	if f.selected == nil {
		return nil
	}
	return f.selected
}

// SelectedWindow returns the focused window as its concrete type.
func (f *Frame) SelectedWindow() *Window { return f.selected }

// lookup converts a host.Window back into one of this frame's live windows.
func (f *Frame) lookup(w host.Window) (*Window, error) {
	win, ok := w.(*Window)
	if !ok || win == nil {
		return nil, errors.E(errors.Op("frame.lookup"), errors.KindWindow, fmt.Sprintf("foreign window %T", w))
	}
	if win.dead || f.index(win) < 0 {
		return nil, errors.StaleHandle("window", win.id)
	}
	return win, nil
}

func (f *Frame) index(w *Window) int {
	for i, cur := range f.windows {
		if cur == w {
			return i
		}
	}
	return -1
}

// Select focuses w.
func (f *Frame) Select(w host.Window) error {
	win, err := f.lookup(w)
	if err != nil {
		return err
	}
	f.touch(win)
	return nil
}

// WindowFor returns the window displaying s.
func (f *Frame) WindowFor(s host.Surface) (host.Window, bool) {
	if s == nil {
		return nil, false
	}
	for _, w := range f.windows {
		if w.surface == s {
			return w, true
		}
	}
	return nil, false
}

// MostRecent returns the most recently selected window not rejected by skip.
func (f *Frame) MostRecent(skip func(host.Window) bool) (host.Window, bool) {
	var best *Window
	for _, w := range f.windows {
		if skip != nil && skip(w) {
			continue
		}
		if best == nil || w.usedAt > best.usedAt {
			best = w
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// OpenSide shows s in the side window at opts.Position. An existing side
// window in that slot is reused; otherwise a new one is added at the edge.
func (f *Frame) OpenSide(s host.Surface, opts host.SideOptions) (host.Window, error) {
	if s == nil || !s.Alive() {
		return nil, errors.WindowFailed("OpenSide", fmt.Errorf("surface is not live"))
	}
	pos := opts.Position
	if !pos.Valid() {
		pos = host.Right
	}

	var win *Window
	for _, w := range f.windows {
		if w.side && w.position == pos {
			win = w
			break
		}
	}

	if win == nil {
		if f.width < MinWindowWidth*(len(f.windows)+1) {
			return nil, errors.WindowFailed("OpenSide", fmt.Errorf("frame too narrow for another window"))
		}
		win = f.newWindow(s)
		win.side = true
		win.position = pos
		win.width = max(f.width/3, MinWindowWidth)
		if pos == host.Left {
			f.windows = append([]*Window{win}, f.windows...)
		} else {
			f.windows = append(f.windows, win)
		}
	}

	win.surface = s
	win.dedicated = true
	win.noCycle = opts.Locked
	win.fixedSize = opts.Locked
	f.distribute(win)
	return win, nil
}

// Split opens a regular window showing s to the right of the selected one.
func (f *Frame) Split(s host.Surface) (*Window, error) {
	if f.width < MinWindowWidth*(len(f.windows)+1) {
		return nil, errors.WindowFailed("Split", fmt.Errorf("frame too narrow for another window"))
	}
	win := f.newWindow(s)
	at := f.index(f.selected) + 1
	if f.selected.side && f.selected.position == host.Right {
		at--
	}
	f.windows = append(f.windows[:at], append([]*Window{win}, f.windows[at:]...)...)
	f.distribute(nil)
	f.touch(win)
	return win, nil
}

// Display shows s in the selected window, or in the most recent window that
// is not dedicated when the selected one is.
func (f *Frame) Display(s host.Surface) (*Window, error) {
	target := f.selected
	if target == nil || target.dedicated {
		w, ok := f.MostRecent(func(w host.Window) bool { return w.(*Window).dedicated })
		if !ok {
			return nil, errors.WindowFailed("Display", fmt.Errorf("no window can display %s", s.Name()))
		}
		target = w.(*Window)
	}
	target.surface = s
	f.touch(target)
	return target, nil
}

// Resize sets w's width, taking or giving columns from the other windows.
// Windows marked fixed-size keep their width.
func (f *Frame) Resize(w host.Window, columns int) error {
	win, err := f.lookup(w)
	if err != nil {
		return err
	}
	if len(f.windows) < 2 {
		return errors.WindowFailed("Resize", fmt.Errorf("cannot resize the only window"))
	}
	limit := f.width - MinWindowWidth*(len(f.windows)-1)
	win.width = min(max(columns, MinWindowWidth), limit)
	f.distribute(win)
	return nil
}

// Grow changes w's width by delta on behalf of the user. Fixed-size windows
// refuse.
func (f *Frame) Grow(w host.Window, delta int) error {
	win, err := f.lookup(w)
	if err != nil {
		return err
	}
	if win.fixedSize {
		return errors.WindowFailed("Grow", fmt.Errorf("window size is fixed"))
	}
	return f.Resize(win, win.width+delta)
}

// Close removes w. The last window cannot be closed.
func (f *Frame) Close(w host.Window) error {
	win, err := f.lookup(w)
	if err != nil {
		return err
	}
	if len(f.windows) < 2 {
		return errors.WindowFailed("Close", fmt.Errorf("cannot close the only window"))
	}

	i := f.index(win)
	f.windows = append(f.windows[:i], f.windows[i+1:]...)
	win.dead = true

	if f.selected == win {
		next, _ := f.MostRecent(nil)
		f.touch(next.(*Window))
	}
	f.distribute(nil)
	return nil
}

// Next selects the following window, skipping windows marked NoCycle. The
// selection stays put if there is nowhere to go.
func (f *Frame) Next() *Window {
	n := len(f.windows)
	start := f.index(f.selected)
	for step := 1; step < n; step++ {
		w := f.windows[(start+step)%n]
		if !w.noCycle {
			f.touch(w)
			return w
		}
	}
	return f.selected
}

// SetWidth resizes the frame, keeping fixed-size windows where possible.
func (f *Frame) SetWidth(width int) {
	f.width = max(width, MinWindowWidth*len(f.windows))
	f.distribute(nil)
}

// distribute hands the columns not used by pinned windows (keep and any
// fixed-size window) to the remaining windows in equal shares.
func (f *Frame) distribute(keep *Window) {
	var pinned, free []*Window
	for _, w := range f.windows {
		if w == keep || w.fixedSize {
			pinned = append(pinned, w)
		} else {
			free = append(free, w)
		}
	}
	if len(free) == 0 {
		// Everything is pinned; the last window absorbs the difference.
		free = pinned[len(pinned)-1:]
		pinned = pinned[:len(pinned)-1]
	}

	used := 0
	budget := f.width - MinWindowWidth*len(free)
	for _, w := range pinned {
		w.width = min(max(w.width, MinWindowWidth), max(budget-used, MinWindowWidth))
		used += w.width
	}

	rest := f.width - used
	share := rest / len(free)
	extra := rest % len(free)
	for i, w := range free {
		w.width = share
		if i < extra {
			w.width++
		}
	}
}

var _ host.WindowManager = (*Frame)(nil)
