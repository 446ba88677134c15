package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Score: 1200, MaxTile: 128, Moves: 140, Won: false, Duration: 95},
		{Score: 20000, MaxTile: 2048, Moves: 900, Won: true, Duration: 1400},
		{Score: 5600, MaxTile: 512, Moves: 400, Won: false, Duration: 420},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	// Should be sorted by score descending
	if top[0].Score != 20000 || top[1].Score != 5600 || top[2].Score != 1200 {
		t.Errorf("Results not in expected order: %v", top)
	}

	if !top[0].Won || top[0].MaxTile != 2048 || top[0].Moves != 900 {
		t.Errorf("Best result fields lost: %+v", top[0])
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{Score: (i + 1) * 100, MaxTile: 64, Moves: 50})
	}

	top, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(top))
	}

	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveResult(Result{Score: 100, MaxTile: 16, Moves: 20})
	store.SaveResult(Result{Score: 300, MaxTile: 32, Moves: 40})
	store.SaveResult(Result{Score: 200, MaxTile: 32, Moves: 30})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Score: 100, MaxTile: 64, Moves: 30, Won: false})
	store.SaveResult(Result{Score: 300, MaxTile: 2048, Moves: 800, Won: true})
	store.SaveResult(Result{Score: 200, MaxTile: 256, Moves: 200, Won: false})

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestTile != 2048 {
		t.Errorf("BestTile = %d, want 2048", stats.BestTile)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Score: 100, MaxTile: 16, Moves: 20})
	store.SaveResult(Result{Score: 200, MaxTile: 32, Moves: 40})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	top, _ := store.TopResults(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(top))
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
