package frame

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/zhubert/dock/internal/host"
)

// Buffer is an editor surface: a file's contents or a scratch text.
type Buffer struct {
	id      string
	name    string
	path    string
	project host.ProjectID
	lines   []string
	killed  bool
}

// NewBuffer creates a buffer. Name defaults to the base name of path.
func NewBuffer(name, path string, project host.ProjectID, content string) *Buffer {
	if name == "" && path != "" {
		name = filepath.Base(path)
	}
	return &Buffer{
		id:      uuid.NewString(),
		name:    name,
		path:    path,
		project: project,
		lines:   strings.Split(strings.TrimRight(content, "\n"), "\n"),
	}
}

func (b *Buffer) ID() string              { return b.id }
func (b *Buffer) Name() string            { return b.name }
func (b *Buffer) Path() string            { return b.path }
func (b *Buffer) Project() host.ProjectID { return b.project }
func (b *Buffer) IsPanel() bool           { return false }
func (b *Buffer) Alive() bool             { return !b.killed }
func (b *Buffer) Lines() []string         { return b.lines }

// Kill marks the buffer dead.
func (b *Buffer) Kill() { b.killed = true }

var _ host.Surface = (*Buffer)(nil)
