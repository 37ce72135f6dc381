// Package state holds the per-project session records of the panel.
//
// Records are created lazily on first lookup and live for the lifetime of
// the process. Only an explicit Remove (reset) deletes one.
package state

import (
	"sort"
	"sync"

	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/provider"
)

// Record is the state kept for one project.
type Record struct {
	// Panel is the project's panel surface, nil when none exists.
	Panel host.Surface
	// Provider is the configuration last used to start the session.
	Provider *provider.Config
	// SavedWidth is restored when an unlocked panel is shown again. 0 means unset.
	SavedWidth int
}

// IsEmpty reports whether every field is unset.
func (r Record) IsEmpty() bool {
	return r.Panel == nil && r.Provider == nil && r.SavedWidth == 0
}

// LivePanel returns the panel surface if it is still alive. A dead surface
// is reported the same as no surface.
func (r Record) LivePanel() (host.Surface, bool) {
	if r.Panel == nil || !r.Panel.Alive() {
		return nil, false
	}
	return r.Panel, true
}

// Store maps projects to records.
type Store interface {
	// Get returns the project's record, creating an empty one if needed.
	Get(id host.ProjectID) Record
	// GetIfExists returns the record without creating it.
	GetIfExists(id host.ProjectID) (Record, bool)
	// Update applies fn to the project's record and stores the result.
	Update(id host.ProjectID, fn func(*Record))
	// Remove deletes the project's record.
	Remove(id host.ProjectID)
	// Projects lists projects with a record, sorted.
	Projects() []host.ProjectID
}

// MemoryStore is the process-wide in-memory Store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[host.ProjectID]*Record
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[host.ProjectID]*Record),
	}
}

// Get returns a copy of the project's record, creating it if it doesn't exist.
func (s *MemoryStore) Get(id host.ProjectID) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.getOrCreate(id)
}

// GetIfExists returns the project's record if it exists.
func (s *MemoryStore) GetIfExists(id host.ProjectID) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Update applies fn to a working copy of the record and stores it. If the
// update gives the record a panel surface held by another project, that
// other record releases it, so a surface always has a single owner.
func (s *MemoryStore) Update(id host.ProjectID, fn func(*Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.getOrCreate(id)
	next := *current
	fn(&next)

	if next.Panel != nil && next.Panel != current.Panel {
		for other, rec := range s.records {
			if other != id && rec.Panel == next.Panel {
				logger.ComponentLogger("state").Warn("panel moved between projects",
					"surface", next.Panel.ID(), "from", string(other), "to", string(id))
				rec.Panel = nil
			}
		}
	}

	*current = next
}

// Remove deletes all state for a project.
func (s *MemoryStore) Remove(id host.ProjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)
}

// Projects returns the projects that have a record.
func (s *MemoryStore) Projects() []host.ProjectID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]host.ProjectID, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// getOrCreate must be called with mu held for writing.
func (s *MemoryStore) getOrCreate(id host.ProjectID) *Record {
	if rec, ok := s.records[id]; ok {
		return rec
	}
	rec := &Record{}
	s.records[id] = rec
	return rec
}
