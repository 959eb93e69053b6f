package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndListNewestFirst(t *testing.T) {
	store := openTemp(t)

	sessions := []Session{
		{GameID: "catch", Player: "SANTI", Universe: "granja", Level: 1, Items: 12, Duration: 40 * time.Second},
		{GameID: "catch", Player: "SANTI", Universe: "bosque", Level: 2, Items: 12, Duration: 30 * time.Second},
		{GameID: "puzzle", Player: "SANTI", Universe: "granja", Level: 1, Items: 4, Duration: 20 * time.Second},
		{GameID: "catch", Player: "ANA", Universe: "frutas", Level: 3, Items: 6, Duration: 50 * time.Second},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions("catch", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(got))
	}
	wantPlayers := []string{"ANA", "SANTI", "SANTI"}
	for i, s := range got {
		if s.Player != wantPlayers[i] {
			t.Errorf("session %d player = %s, want %s", i, s.Player, wantPlayers[i])
		}
		if s.SessionID == "" {
			t.Errorf("session %d has no session id", i)
		}
		if s.CreatedAt.IsZero() {
			t.Errorf("session %d has no timestamp", i)
		}
	}
	if got[0].Duration != 50*time.Second || got[0].Level != 3 || got[0].Universe != "frutas" {
		t.Errorf("newest session = %+v", got[0])
	}

	all, err := store.RecentSessions("", 2)
	if err != nil {
		t.Fatalf("RecentSessions(all) failed: %v", err)
	}
	if len(all) != 2 || all[0].GameID != "catch" || all[1].GameID != "puzzle" {
		t.Errorf("all sessions = %+v", all)
	}
}

func TestStoreSessionIDUnique(t *testing.T) {
	store := openTemp(t)
	s := Session{SessionID: "fixed", GameID: "drive", Player: "SANTI", Universe: "granja", Level: 1, Items: 3}
	if _, err := store.SaveSession(s); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(s); err == nil {
		t.Fatal("duplicate session id should fail")
	}
	if _, err := store.SaveSession(Session{}); err == nil {
		t.Fatal("session without game should fail")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.Stats("match")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, d := range []time.Duration{10 * time.Second, 20 * time.Second, 30 * time.Second} {
		if _, err := store.SaveSession(Session{GameID: "match", Player: "SANTI", Universe: "granja", Level: 1, Items: 4, Duration: d}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	stats, err := store.Stats("match")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 3 || stats.TotalItems != 12 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgDuration != 20*time.Second || stats.Fastest != 10*time.Second {
		t.Errorf("durations = %v / %v", stats.AvgDuration, stats.Fastest)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTemp(t)
	store.SaveSession(Session{GameID: "catch", Player: "A", Universe: "granja", Level: 1, Items: 3})
	store.SaveSession(Session{GameID: "drive", Player: "A", Universe: "granja", Level: 1, Items: 3})

	if err := store.ClearSessions("catch"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	if got, _ := store.RecentSessions("catch", 10); len(got) != 0 {
		t.Errorf("catch sessions after clear = %d", len(got))
	}
	if got, _ := store.RecentSessions("drive", 10); len(got) != 1 {
		t.Errorf("drive sessions after clear = %d", len(got))
	}
}

func TestStoreFixedClock(t *testing.T) {
	store := openTemp(t)
	at := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return at }
	store.SaveSession(Session{GameID: "catch", Player: "A", Universe: "granja", Level: 1, Items: 3})

	got, err := store.RecentSessions("catch", 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("RecentSessions() = %v, %v", got, err)
	}
	if !got[0].CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", got[0].CreatedAt, at)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
