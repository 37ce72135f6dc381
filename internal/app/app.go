package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dock/internal/config"
	"github.com/zhubert/dock/internal/frame"
	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/keys"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/panel"
	"github.com/zhubert/dock/internal/project"
	"github.com/zhubert/dock/internal/provider"
	"github.com/zhubert/dock/internal/session"
	"github.com/zhubert/dock/internal/ui"
	"github.com/zhubert/dock/internal/ui/modals"
)

// initialWidth is the frame width used until the terminal reports its size.
const initialWidth = 120

// resizeStep is the number of columns grown or shrunk per key press.
const resizeStep = 2

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	header  *ui.Header
	footer  *ui.Footer
	keys    keys.KeyMap

	// chooser is the provider modal; pending is the command it was opened for.
	chooser *modals.ChooserState
	pending panel.Action

	frame    *frame.Frame
	backend  *session.Backend
	detector *project.Detector
	staged   *provider.StagedChooser
	ctrl     *panel.Controller

	// stopped is set once Shutdown has run.
	stopped bool

	width  int
	height int
}

// Options configure a new Model.
type Options struct {
	Config  *config.Config
	Version string
	// Files are opened as editor buffers. With none, a scratch buffer for
	// the working directory is shown.
	Files []string
}

// New creates a new app model
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}

	detector := project.NewDetector()
	buffers, err := openBuffers(detector, opts.Files)
	if err != nil {
		return nil, err
	}

	f := frame.New(initialWidth, buffers[0])
	for _, b := range buffers[1:] {
		if _, err := f.Split(b); err != nil {
			logger.ComponentLogger("app").Warn("not enough room for buffer", "buffer", b.Name(), "error", err)
			break
		}
	}
	if err := f.Select(f.Layout()[0]); err != nil {
		return nil, err
	}

	staged := &provider.StagedChooser{}
	sel, err := cfg.Selector(staged)
	if err != nil {
		return nil, err
	}

	backend := session.NewBackend()
	ctrl := panel.New(panel.Options{
		Settings: cfg,
		WM:       f,
		Backend:  backend,
		Projects: &project.Identifier{WM: f, Fallback: buffers[0].Project()},
		Selector: sel,
	})

	km := keys.DefaultKeyMap()
	return &Model{
		config:   cfg,
		version:  opts.Version,
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(km),
		keys:     km,
		frame:    f,
		backend:  backend,
		detector: detector,
		staged:   staged,
		ctrl:     ctrl,
	}, nil
}

// openBuffers reads each file into a buffer tagged with its project root.
func openBuffers(detector *project.Detector, files []string) ([]*frame.Buffer, error) {
	if len(files) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		return []*frame.Buffer{frame.NewBuffer("*scratch*", "", detector.Root(wd), "")}, nil
	}

	buffers := make([]*frame.Buffer, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		buffers = append(buffers, frame.NewBuffer("", path, detector.Root(path), string(data)))
	}
	return buffers, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Controller returns the panel controller driven by the model.
func (m *Model) Controller() *panel.Controller { return m.ctrl }

// Frame returns the window frame.
func (m *Model) Frame() *frame.Frame { return m.frame }

// ChooserOpen reports whether the provider chooser is showing.
func (m *Model) ChooserOpen() bool { return m.chooser != nil }

// currentProject is the project of the selected window.
func (m *Model) currentProject() host.ProjectID {
	return m.ctrl.CurrentProject()
}

// Shutdown ends every agent session and saves the settings. Only the first
// call does any work.
func (m *Model) Shutdown() error {
	if m.stopped {
		return nil
	}
	m.stopped = true

	log := logger.ComponentLogger("app")
	if err := m.ctrl.Shutdown(); err != nil {
		log.Error("failed to stop sessions", "error", err)
		return err
	}
	if m.config.Path() == "" {
		return nil
	}
	if err := m.config.Save(); err != nil {
		log.Error("failed to save config", "error", err)
		return err
	}
	return nil
}

// run executes a panel action for the current project.
func (m *Model) run(a panel.Action) error {
	log := logger.WithProject(string(m.currentProject())).With("component", "app")
	log.Debug("running command", "action", a.String())
	err := m.ctrl.Run(context.Background(), a)
	m.staged.Clear()
	if err != nil {
		log.Warn("command failed", "action", a.String(), "error", err)
	}
	return err
}
