package session

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/dock/internal/errors"
	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/provider"
)

// Session is a live agent session and its panel surface.
type Session struct {
	id        string
	name      string
	project   host.ProjectID
	workDir   string
	provider  provider.Config
	startedAt time.Time

	mu         sync.RWMutex
	transcript []string
	dead       bool
}

func (s *Session) ID() string              { return s.id }
func (s *Session) Name() string            { return s.name }
func (s *Session) Project() host.ProjectID { return s.project }
func (s *Session) IsPanel() bool           { return true }
func (s *Session) WorkDir() string         { return s.workDir }
func (s *Session) StartedAt() time.Time    { return s.startedAt }

// Provider returns the provider the session was started with.
func (s *Session) Provider() provider.Config { return s.provider }

// Alive reports whether the session has not been destroyed.
func (s *Session) Alive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.dead
}

// Append adds a line to the transcript.
func (s *Session) Append(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, line)
}

// Transcript returns a copy of the transcript lines.
func (s *Session) Transcript() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// BufferName builds the panel surface name for a project and provider.
func BufferName(project host.ProjectID, cfg provider.Config) string {
	name := filepath.Base(string(project))
	if name == "." || name == "/" || name == "" {
		name = string(project)
	}
	return fmt.Sprintf("*dock:%s:%s*", name, cfg.Label())
}

// Backend keeps sessions in memory.
type Backend struct {
	mu       sync.Mutex
	sessions map[string]*Session
	// history keeps transcripts of destroyed sessions per project+provider so
	// a non-fresh start can continue them.
	history map[string][]string
	now     func() time.Time
}

// NewBackend creates an empty backend.
func NewBackend() *Backend {
	return &Backend{
		sessions: make(map[string]*Session),
		history:  make(map[string][]string),
		now:      time.Now,
	}
}

func historyKey(project host.ProjectID, cfg provider.Config) string {
	return string(project) + "\x00" + cfg.Name
}

// Start creates a session for the project.
func (b *Backend) Start(ctx context.Context, cfg provider.Config, opts host.StartOptions) (host.Surface, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.SessionStartFailed(string(opts.Project), err)
	}
	if opts.Project == "" {
		return nil, errors.SessionStartFailed("", fmt.Errorf("project is required"))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = string(opts.Project)
	}

	s := &Session{
		id:        uuid.NewString(),
		name:      BufferName(opts.Project, cfg),
		project:   opts.Project,
		workDir:   workDir,
		provider:  cfg.Clone(),
		startedAt: b.now(),
	}

	key := historyKey(opts.Project, cfg)
	if !opts.FreshSession {
		s.transcript = append(s.transcript, b.history[key]...)
	}
	delete(b.history, key)
	s.transcript = append(s.transcript, fmt.Sprintf("%s started in %s", cfg.Label(), workDir))

	b.sessions[s.id] = s

	logger.WithProject(string(opts.Project)).Info("session started",
		"session", s.id, "provider", cfg.Name, "fresh", opts.FreshSession, "autoFocus", opts.AutoFocus)
	return s, nil
}

// Destroy ends a session. Destroying a dead or unknown session is a no-op.
func (b *Backend) Destroy(surface host.Surface) error {
	if surface == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.sessions[surface.ID()]
	if !ok {
		return nil
	}
	delete(b.sessions, s.id)

	s.mu.Lock()
	s.dead = true
	transcript := append([]string(nil), s.transcript...)
	s.mu.Unlock()

	b.history[historyKey(s.project, s.provider)] = transcript

	logger.WithProject(string(s.project)).Info("session destroyed", "session", s.id)
	return nil
}

// Get returns a live session by ID.
func (b *Backend) Get(id string) (*Session, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[id]
	return s, ok
}

// Sessions returns live sessions ordered by start time.
func (b *Backend) Sessions() []*Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Session, 0, len(b.sessions))
	for _, s := range b.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].startedAt.Equal(out[j].startedAt) {
			return out[i].id < out[j].id
		}
		return out[i].startedAt.Before(out[j].startedAt)
	})
	return out
}

// DestroyAll ends every live session.
func (b *Backend) DestroyAll() {
	for _, s := range b.Sessions() {
		b.Destroy(s)
	}
}

var _ host.SessionBackend = (*Backend)(nil)
