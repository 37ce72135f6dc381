// Package panel drives the per-project agent side panel: creating, showing,
// hiding and replacing a project's session window, sizing it and moving focus
// in and out of it.
//
// Every command follows the same order. Fallible steps that do not touch
// state run first (provider selection, width resolution); only then are
// sessions started, windows opened and records written. A cancelled provider
// choice therefore leaves everything as it was.
package panel

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/zhubert/dock/internal/errors"
	"github.com/zhubert/dock/internal/focus"
	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/provider"
	"github.com/zhubert/dock/internal/state"
	"github.com/zhubert/dock/internal/width"
)

// Visibility is the derived state of a project's panel.
type Visibility int

const (
	// Absent means the project has no live session.
	Absent Visibility = iota
	// Hidden means the session is alive but no window shows it.
	Hidden
	// Visible means a window shows the session.
	Visible
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	default:
		return "absent"
	}
}

// Action names a user command.
type Action int

const (
	ActionToggle Action = iota
	ActionToggleFocus
	ActionChangeProvider
	ActionReset
	ActionStop
)

func (a Action) String() string {
	switch a {
	case ActionToggle:
		return "toggle"
	case ActionToggleFocus:
		return "toggle-focus"
	case ActionChangeProvider:
		return "change-provider"
	case ActionReset:
		return "reset"
	case ActionStop:
		return "stop"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Layout is the configuration the controller reads on every command.
type Layout struct {
	Width    width.Spec
	MinWidth width.Spec
	MaxWidth width.Spec
	Position host.Position
	Locked   bool
}

// Settings supplies the current layout. It is consulted per command so a
// runtime lock toggle takes effect on the next attach.
type Settings interface {
	PanelLayout() Layout
}

// SettingsFunc adapts a function to Settings.
type SettingsFunc func() Layout

// PanelLayout calls f.
func (f SettingsFunc) PanelLayout() Layout { return f() }

// Options configure a Controller. Store and Focus default to fresh
// in-memory instances.
type Options struct {
	Settings Settings
	Store    state.Store
	Focus    *focus.Tracker
	WM       host.WindowManager
	Backend  host.SessionBackend
	Projects host.ProjectIdentifier
	Selector *provider.Selector
	// WorkDir maps a project to the session's working directory. Defaults
	// to the project root.
	WorkDir func(host.ProjectID) string
}

// Controller runs panel commands for the current project.
type Controller struct {
	settings Settings
	store    state.Store
	focus    *focus.Tracker
	wm       host.WindowManager
	backend  host.SessionBackend
	projects host.ProjectIdentifier
	selector *provider.Selector
	workDir  func(host.ProjectID) string
}

// New creates a controller.
func New(opts Options) *Controller {
	c := &Controller{
		settings: opts.Settings,
		store:    opts.Store,
		focus:    opts.Focus,
		wm:       opts.WM,
		backend:  opts.Backend,
		projects: opts.Projects,
		selector: opts.Selector,
		workDir:  opts.WorkDir,
	}
	if c.store == nil {
		c.store = state.NewMemoryStore()
	}
	if c.focus == nil {
		c.focus = focus.NewTracker()
	}
	if c.workDir == nil {
		c.workDir = func(id host.ProjectID) string { return string(id) }
	}
	return c
}

// Store returns the controller's record store.
func (c *Controller) Store() state.Store { return c.store }

// Focus returns the controller's focus tracker.
func (c *Controller) Focus() *focus.Tracker { return c.focus }

// CurrentProject returns the project commands apply to.
func (c *Controller) CurrentProject() host.ProjectID {
	return c.projects.CurrentProject()
}

func (c *Controller) layout() Layout {
	if c.settings == nil {
		return Layout{Position: host.Right}
	}
	return c.settings.PanelLayout()
}

func (c *Controller) log(id host.ProjectID) *slog.Logger {
	return logger.WithProject(string(id)).With("component", "panel")
}

// Run dispatches an action.
func (c *Controller) Run(ctx context.Context, a Action) error {
	switch a {
	case ActionToggle:
		return c.Toggle(ctx)
	case ActionToggleFocus:
		return c.ToggleFocus(ctx)
	case ActionChangeProvider:
		return c.ChangeProvider(ctx)
	case ActionReset:
		return c.Reset(ctx)
	case ActionStop:
		return c.Stop(ctx)
	default:
		return fmt.Errorf("unknown action %v", a)
	}
}

// inspect derives the visibility of a record. A dead panel handle counts as
// absent.
func (c *Controller) inspect(rec state.Record) (Visibility, host.Surface, host.Window) {
	surface, ok := rec.LivePanel()
	if !ok {
		return Absent, nil, nil
	}
	if win, ok := c.wm.WindowFor(surface); ok && win.Alive() {
		return Visible, surface, win
	}
	return Hidden, surface, nil
}

// Status reports the visibility of a project's panel without creating a
// record.
func (c *Controller) Status(id host.ProjectID) Visibility {
	rec, ok := c.store.GetIfExists(id)
	if !ok {
		return Absent
	}
	vis, _, _ := c.inspect(rec)
	return vis
}

// SessionInfo describes one project's record.
type SessionInfo struct {
	Project    host.ProjectID
	Visibility Visibility
	Provider   string
	SavedWidth int
}

// Sessions describes every project with a record.
func (c *Controller) Sessions() []SessionInfo {
	var out []SessionInfo
	for _, id := range c.store.Projects() {
		rec, ok := c.store.GetIfExists(id)
		if !ok {
			continue
		}
		vis, _, _ := c.inspect(rec)
		info := SessionInfo{Project: id, Visibility: vis, SavedWidth: rec.SavedWidth}
		if rec.Provider != nil {
			info.Provider = rec.Provider.Label()
		}
		out = append(out, info)
	}
	return out
}

// NeedsSelection reports whether running a on the current project would ask
// the user to choose a provider.
func (c *Controller) NeedsSelection(a Action) bool {
	if c.selector == nil {
		return false
	}
	switch a {
	case ActionChangeProvider:
		return c.selector.WouldPrompt(true)
	case ActionToggle, ActionToggleFocus:
		rec, ok := c.store.GetIfExists(c.CurrentProject())
		if ok {
			if vis, _, _ := c.inspect(rec); vis != Absent || rec.Provider != nil {
				return false
			}
		}
		return c.selector.WouldPrompt(false)
	default:
		return false
	}
}

// Toggle hides a visible panel, shows a hidden one, or creates one.
func (c *Controller) Toggle(ctx context.Context) error {
	id := c.CurrentProject()
	rec := c.store.Get(id)
	vis, surface, win := c.inspect(rec)

	switch vis {
	case Visible:
		return c.hide(id, win)
	case Hidden:
		c.focus.SaveIfOutsidePanel(c.wm.Selected())
		return c.show(id, rec, surface)
	default:
		return c.create(ctx, id, rec, nil, false)
	}
}

// ToggleFocus moves focus out of the project's panel when it has it, and into
// the panel otherwise, showing or creating it as needed. It never hides the
// panel.
func (c *Controller) ToggleFocus(ctx context.Context) error {
	id := c.CurrentProject()
	rec := c.store.Get(id)
	vis, surface, win := c.inspect(rec)

	selected := c.wm.Selected()
	if vis == Visible && selected != nil && selected.Surface() == surface {
		if c.focus.Restore(c.wm) {
			c.log(id).Debug("focus left panel")
		}
		return nil
	}

	switch vis {
	case Visible:
		c.focus.SaveIfOutsidePanel(selected)
		if err := c.wm.Select(win); err != nil {
			return err
		}
		c.log(id).Debug("focus entered panel")
		return nil
	case Hidden:
		c.focus.SaveIfOutsidePanel(selected)
		return c.show(id, rec, surface)
	default:
		return c.create(ctx, id, rec, nil, false)
	}
}

// ChangeProvider asks for a provider, ignoring any default or stored one,
// replaces the project's session with a fresh one and shows it.
func (c *Controller) ChangeProvider(ctx context.Context) error {
	if c.selector == nil {
		return errors.NoSelection()
	}
	cfg, err := c.selector.Choose(ctx)
	if err != nil {
		return err
	}

	id := c.CurrentProject()
	rec := c.store.Get(id)
	return c.create(ctx, id, rec, &cfg, true)
}

// Reset tears down the project's session and forgets its record.
func (c *Controller) Reset(_ context.Context) error {
	id := c.CurrentProject()
	rec, ok := c.store.GetIfExists(id)
	if !ok {
		c.log(id).Debug("reset: no record")
		return nil
	}

	from, _, _ := c.inspect(rec)
	closed, err := c.teardown(id, rec)
	c.store.Remove(id)
	if closed {
		c.focus.Restore(c.wm)
	}
	c.log(id).Info("panel reset", "from", from.String(), "to", Absent.String())
	return err
}

// Stop tears down the project's session but keeps its provider and saved
// width, so the next toggle starts the same agent at the same size.
func (c *Controller) Stop(_ context.Context) error {
	id := c.CurrentProject()
	rec, ok := c.store.GetIfExists(id)
	if !ok {
		return nil
	}

	from, _, _ := c.inspect(rec)
	closed, err := c.teardown(id, rec)
	c.store.Update(id, func(r *state.Record) { r.Panel = nil })
	if closed {
		c.focus.Restore(c.wm)
	}
	c.log(id).Info("panel stopped", "from", from.String(), "to", Absent.String())
	return err
}

// Shutdown destroys every live session. Windows are left alone.
func (c *Controller) Shutdown() error {
	var errs []error
	for _, id := range c.store.Projects() {
		rec, ok := c.store.GetIfExists(id)
		if !ok || rec.Panel == nil {
			continue
		}
		if rec.Panel.Alive() {
			if err := c.backend.Destroy(rec.Panel); err != nil {
				errs = append(errs, err)
			}
		}
		c.store.Update(id, func(r *state.Record) { r.Panel = nil })
	}
	return stderrors.Join(errs...)
}

// hide closes the panel window and returns focus to the editor. When
// unlocked, the window's width is remembered for the next show.
func (c *Controller) hide(id host.ProjectID, win host.Window) error {
	layout := c.layout()
	current := win.Width()

	if err := c.wm.Close(win); err != nil {
		return err
	}
	if !layout.Locked {
		c.store.Update(id, func(r *state.Record) { r.SavedWidth = current })
	}
	c.focus.Restore(c.wm)

	c.log(id).Info("panel hidden", "from", Visible.String(), "to", Hidden.String(), "width", current, "locked", layout.Locked)
	return nil
}

// show attaches an existing session to a side window.
func (c *Controller) show(id host.ProjectID, rec state.Record, surface host.Surface) error {
	layout := c.layout()
	cols, err := c.targetWidth(rec, layout)
	if err != nil {
		return err
	}
	if err := c.attach(surface, cols, layout); err != nil {
		return err
	}
	c.log(id).Info("panel shown", "from", Hidden.String(), "to", Visible.String(), "width", cols)
	return nil
}

// create starts a session and shows it. With cfg nil the record's provider
// is reused, or the selector is asked. Any session already recorded for the
// project is torn down once the new one has started, so a failed start
// leaves the record untouched.
func (c *Controller) create(ctx context.Context, id host.ProjectID, rec state.Record, cfg *provider.Config, fresh bool) error {
	from, _, _ := c.inspect(rec)

	if cfg == nil {
		switch {
		case rec.Provider != nil:
			reuse := rec.Provider.Clone()
			cfg = &reuse
		case c.selector != nil:
			chosen, err := c.selector.Select(ctx)
			if err != nil {
				return err
			}
			cfg = &chosen
		default:
			return errors.NoSelection()
		}
	}

	layout := c.layout()
	cols, err := c.targetWidth(rec, layout)
	if err != nil {
		return err
	}

	c.focus.SaveIfOutsidePanel(c.wm.Selected())

	surface, err := c.backend.Start(ctx, *cfg, host.StartOptions{
		Project:      id,
		WorkDir:      c.workDir(id),
		AutoFocus:    true,
		FreshSession: fresh,
	})
	if err != nil {
		return err
	}

	if rec.Panel != nil {
		if _, err := c.teardown(id, rec); err != nil {
			c.log(id).Warn("teardown of replaced session failed", "error", err)
		}
	}

	stored := cfg.Clone()
	c.store.Update(id, func(r *state.Record) {
		r.Panel = surface
		r.Provider = &stored
	})

	if err := c.attach(surface, cols, layout); err != nil {
		return err
	}
	c.log(id).Info("panel created", "from", from.String(), "to", Visible.String(),
		"provider", stored.Label(), "width", cols, "fresh", fresh)
	return nil
}

// teardown closes the panel's window if one shows it and destroys the
// session. It reports whether a window was closed. The record is not touched.
func (c *Controller) teardown(id host.ProjectID, rec state.Record) (bool, error) {
	if rec.Panel == nil {
		return false, nil
	}

	closed := false
	var errs []error
	if win, ok := c.wm.WindowFor(rec.Panel); ok {
		if err := c.wm.Close(win); err != nil {
			errs = append(errs, err)
		} else {
			closed = true
		}
	}
	if rec.Panel.Alive() {
		if err := c.backend.Destroy(rec.Panel); err != nil {
			errs = append(errs, err)
		}
	} else {
		c.log(id).Debug("recorded panel already gone", "surface", rec.Panel.ID())
	}
	return closed, stderrors.Join(errs...)
}

// attach opens the side window for surface, sizes it and selects it.
func (c *Controller) attach(surface host.Surface, cols int, layout Layout) error {
	win, err := c.wm.OpenSide(surface, host.SideOptions{Position: layout.Position, Locked: layout.Locked})
	if err != nil {
		return err
	}
	if c.wm.WindowCount() > 1 {
		if err := c.wm.Resize(win, cols); err != nil {
			return err
		}
	}
	return c.wm.Select(win)
}

// targetWidth is the saved width when unlocked and one is recorded, else a
// fresh resolution against the frame.
func (c *Controller) targetWidth(rec state.Record, layout Layout) (int, error) {
	if !layout.Locked && rec.SavedWidth > 0 {
		return rec.SavedWidth, nil
	}
	return width.Resolve(layout.Width, layout.MinWidth, layout.MaxWidth, c.wm.FrameWidth())
}
