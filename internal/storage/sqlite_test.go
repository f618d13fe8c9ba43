package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
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

func TestStoreReadBestEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.ReadBest()
	if err != nil {
		t.Fatalf("ReadBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best 0 on a fresh database, got %d", best)
	}
}

func TestStoreWriteBestKeepsMax(t *testing.T) {
	store := openTestStore(t)

	writes := []struct {
		value    int
		expected int
	}{
		{5, 5},
		{3, 5},
		{12, 12},
		{0, 12},
	}

	for _, w := range writes {
		if err := store.WriteBest(w.value); err != nil {
			t.Fatalf("WriteBest(%d) failed: %v", w.value, err)
		}
		got, err := store.ReadBest()
		if err != nil {
			t.Fatalf("ReadBest() failed: %v", err)
		}
		if got != w.expected {
			t.Errorf("after WriteBest(%d): got %d, expected %d", w.value, got, w.expected)
		}
	}
}

func TestStoreWriteBestRejectsNegative(t *testing.T) {
	store := openTestStore(t)

	if err := store.WriteBest(-1); err == nil {
		t.Error("Expected error for negative best score")
	}
}

func TestStoreBestSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.WriteBest(42); err != nil {
		t.Fatalf("WriteBest() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.ReadBest()
	if err != nil {
		t.Fatalf("ReadBest() failed: %v", err)
	}
	if best != 42 {
		t.Errorf("Expected best 42 after reopen, got %d", best)
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		id, err := store.SaveRun(score)
		if err != nil {
			t.Fatalf("SaveRun(%d) failed: %v", score, err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("SaveRun returned invalid run ID %q: %v", id, err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	expected := []int{20, 10, 5}
	for i, r := range runs {
		if r.Score != expected[i] {
			t.Errorf("runs[%d].Score = %d, expected %d", i, r.Score, expected[i])
		}
		if r.CreatedAt.IsZero() {
			t.Errorf("runs[%d].CreatedAt was not set", i)
		}
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(i); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}
	if runs[0].Score != 14 {
		t.Errorf("Expected top run 14, got %d", runs[0].Score)
	}

	// Zero or negative limit falls back to the default of 10.
	runs, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected 10 runs, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
	if !stats.LastPlayed.IsZero() {
		t.Errorf("Expected zero LastPlayed, got %v", stats.LastPlayed)
	}

	for _, score := range []int{2, 4, 9} {
		if _, err := store.SaveRun(score); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Expected 3 runs, got %d", stats.Runs)
	}
	if stats.HighScore != 9 {
		t.Errorf("Expected high score 9, got %d", stats.HighScore)
	}
	if stats.AvgScore != 5 {
		t.Errorf("Expected average 5, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreClearRunsKeepsBest(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(7); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.WriteBest(7); err != nil {
		t.Fatalf("WriteBest() failed: %v", err)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	best, _ := store.ReadBest()
	if best != 7 {
		t.Errorf("Expected best 7 to survive ClearRuns, got %d", best)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.flappy/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".flappy", "scores.db")); err != nil {
		t.Errorf("Database was not created under HOME: %v", err)
	}
}
