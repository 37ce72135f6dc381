// Package focus remembers the last editor window that had focus before a
// panel took it, and puts focus back when the panel lets go.
package focus

import (
	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/logger"
)

// Tracker is a single-slot, process-wide memory of the last non-panel window.
type Tracker struct {
	last host.Window
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// SaveIfOutsidePanel records w unless it is a panel window. Panel windows of
// every project are recognised through the surface's panel flag.
func (t *Tracker) SaveIfOutsidePanel(w host.Window) {
	if w == nil || !w.Alive() || host.IsPanelWindow(w) {
		return
	}
	t.last = w
}

// Last returns the saved window, which may have gone stale since.
func (t *Tracker) Last() host.Window {
	return t.last
}

// Clear forgets the saved window.
func (t *Tracker) Clear() {
	t.last = nil
}

// Restore selects the best non-panel window: the saved one if it is still
// alive and not showing a panel, then the most recently used non-panel
// window, then any non-panel window. It reports whether focus moved.
func (t *Tracker) Restore(wm host.WindowManager) bool {
	target := t.candidate(wm)
	if target == nil {
		return false
	}
	if err := wm.Select(target); err != nil {
		logger.ComponentLogger("focus").Warn("failed to restore focus", "window", target.ID(), "error", err)
		return false
	}
	return true
}

func (t *Tracker) candidate(wm host.WindowManager) host.Window {
	log := logger.ComponentLogger("focus")

	if t.last != nil && t.last.Alive() && !host.IsPanelWindow(t.last) {
		return t.last
	}
	if t.last != nil {
		log.Debug("saved window is stale", "window", t.last.ID())
	}

	if w, ok := wm.MostRecent(host.IsPanelWindow); ok {
		return w
	}

	for _, w := range wm.Windows() {
		if w.Alive() && !host.IsPanelWindow(w) {
			return w
		}
	}
	return nil
}
