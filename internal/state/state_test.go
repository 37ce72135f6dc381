package state

import (
	"os"
	"testing"

	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/logger"
	"github.com/zhubert/dock/internal/provider"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

type stubSurface struct {
	id   string
	dead bool
}

func (s *stubSurface) ID() string              { return s.id }
func (s *stubSurface) Name() string            { return "*" + s.id + "*" }
func (s *stubSurface) Project() host.ProjectID { return "" }
func (s *stubSurface) IsPanel() bool           { return true }
func (s *stubSurface) Alive() bool             { return !s.dead }

func TestMemoryStore_GetCreatesEmptyRecord(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.GetIfExists("/a"); ok {
		t.Fatal("record should not exist before Get")
	}

	rec := s.Get("/a")
	if !rec.IsEmpty() {
		t.Errorf("new record should be empty, got %+v", rec)
	}
	if _, ok := s.GetIfExists("/a"); !ok {
		t.Error("Get should store the new record")
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	rec := s.Get("/a")
	rec.SavedWidth = 77

	if got := s.Get("/a").SavedWidth; got != 0 {
		t.Errorf("mutating a copy changed the store: SavedWidth = %d", got)
	}
}

func TestMemoryStore_Update(t *testing.T) {
	s := NewMemoryStore()
	panel := &stubSurface{id: "p1"}
	cfg := provider.Config{Name: "claude"}

	s.Update("/a", func(r *Record) {
		r.Panel = panel
		r.Provider = &cfg
		r.SavedWidth = 90
	})

	rec := s.Get("/a")
	if rec.Panel != panel || rec.Provider.Name != "claude" || rec.SavedWidth != 90 {
		t.Errorf("Update not applied: %+v", rec)
	}
}

func TestMemoryStore_UpdateCreatesRecord(t *testing.T) {
	s := NewMemoryStore()
	s.Update("/new", func(r *Record) { r.SavedWidth = 10 })

	rec, ok := s.GetIfExists("/new")
	if !ok || rec.SavedWidth != 10 {
		t.Errorf("GetIfExists = (%+v, %v)", rec, ok)
	}
}

func TestMemoryStore_IsolationBetweenProjects(t *testing.T) {
	s := NewMemoryStore()
	s.Update("/a", func(r *Record) { r.SavedWidth = 50 })

	if _, ok := s.GetIfExists("/b"); ok {
		t.Error("updating /a must not create /b")
	}
	if s.Get("/b").SavedWidth != 0 {
		t.Error("/b should start empty")
	}
}

func TestMemoryStore_PanelHasSingleOwner(t *testing.T) {
	s := NewMemoryStore()
	panel := &stubSurface{id: "shared"}

	s.Update("/a", func(r *Record) { r.Panel = panel; r.SavedWidth = 40 })
	s.Update("/b", func(r *Record) { r.Panel = panel })

	a := s.Get("/a")
	if a.Panel != nil {
		t.Error("/a should have released the panel")
	}
	if a.SavedWidth != 40 {
		t.Error("releasing the panel must not touch other fields")
	}
	if s.Get("/b").Panel != panel {
		t.Error("/b should own the panel")
	}
}

func TestMemoryStore_Remove(t *testing.T) {
	s := NewMemoryStore()
	cfg := provider.Config{Name: "claude"}
	s.Update("/a", func(r *Record) { r.Provider = &cfg; r.SavedWidth = 80 })

	s.Remove("/a")

	if _, ok := s.GetIfExists("/a"); ok {
		t.Error("record should be gone after Remove")
	}
	if rec := s.Get("/a"); !rec.IsEmpty() {
		t.Errorf("record after Remove should be fresh, got %+v", rec)
	}

	// Removing an unknown project is a no-op.
	s.Remove("/missing")
}

func TestMemoryStore_Projects(t *testing.T) {
	s := NewMemoryStore()
	s.Get("/c")
	s.Get("/a")
	s.Get("/b")

	got := s.Projects()
	want := []host.ProjectID{"/a", "/b", "/c"}
	if len(got) != len(want) {
		t.Fatalf("Projects() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Projects()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecord_LivePanel(t *testing.T) {
	live := &stubSurface{id: "live"}
	dead := &stubSurface{id: "dead", dead: true}

	if _, ok := (Record{}).LivePanel(); ok {
		t.Error("empty record has no live panel")
	}
	if p, ok := (Record{Panel: live}).LivePanel(); !ok || p != live {
		t.Error("expected live panel")
	}
	if _, ok := (Record{Panel: dead}).LivePanel(); ok {
		t.Error("dead panel must count as absent")
	}
}
