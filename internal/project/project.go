// Package project works out which project a path or window belongs to. A
// project is identified by the root of its git worktree; paths outside any
// repository are their own project.
package project

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-git/v5"

	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/logger"
)

// Detector resolves paths to project roots, caching by directory.
type Detector struct {
	mu    sync.Mutex
	cache map[string]host.ProjectID
}

// NewDetector creates a detector with an empty cache.
func NewDetector() *Detector {
	return &Detector{cache: make(map[string]host.ProjectID)}
}

// Root returns the project containing path. Files resolve through their
// directory.
func (d *Detector) Root(path string) host.ProjectID {
	dir, err := filepath.Abs(path)
	if err != nil {
		dir = filepath.Clean(path)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if id, ok := d.cache[dir]; ok {
		return id
	}
	id := detect(dir)
	d.cache[dir] = id
	return id
}

func detect(dir string) host.ProjectID {
	log := logger.ComponentLogger("project")

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if !stderrors.Is(err, git.ErrRepositoryNotExists) {
			log.Debug("git open failed", "dir", dir, "error", err)
		}
		return host.ProjectID(dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree.
		log.Debug("no worktree", "dir", dir, "error", err)
		return host.ProjectID(dir)
	}
	return host.ProjectID(wt.Filesystem.Root())
}

// Identifier names the current project from the selected window, falling
// back to a fixed id when the window's surface has no project.
type Identifier struct {
	WM       host.WindowManager
	Fallback host.ProjectID
}

// CurrentProject implements host.ProjectIdentifier.
func (i *Identifier) CurrentProject() host.ProjectID {
	if i.WM != nil {
		if w := i.WM.Selected(); w != nil && w.Alive() {
			if s := w.Surface(); s != nil && s.Project() != "" {
				return s.Project()
			}
		}
	}
	return i.Fallback
}

var _ host.ProjectIdentifier = (*Identifier)(nil)
