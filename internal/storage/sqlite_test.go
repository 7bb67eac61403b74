package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("meteors", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("meteors", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("meteors", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("meteors_endless", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for the classic mode
	scores, err := store.TopScores("meteors", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for the endless mode
	endlessScores, err := store.TopScores("meteors_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("meteors")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("meteors", 100)
	store.SaveScore("meteors", 300)
	store.SaveScore("meteors", 200)

	high, err = store.HighScore("meteors")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("meteors", 100)
	store.SaveScore("meteors", 200)
	store.SaveScore("meteors_endless", 300)

	// Clear only classic scores
	err = store.ClearScores("meteors")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Classic should be empty
	classicScores, _ := store.TopScores("meteors", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	// Endless should still have scores
	endlessScores, _ := store.TopScores("meteors_endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	first, err := store.SaveRun(Run{GameID: "meteors", Outcome: "lost", Score: 12, Cycles: 130, Meteors: 11})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	second, err := store.SaveRun(Run{GameID: "meteors", Outcome: "won", Score: 100, Cycles: 1000, Meteors: 33})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if first == "" || first == second {
		t.Errorf("run IDs should be unique UUIDs, got %q and %q", first, second)
	}

	runs, err := store.RecentRuns("meteors", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != second || runs[0].Outcome != "won" || runs[0].Cycles != 1000 {
		t.Errorf("newest run should come first, got %+v", runs[0])
	}
	if runs[1].Meteors != 11 {
		t.Errorf("meteor count not stored, got %+v", runs[1])
	}

	if _, err := store.SaveRun(Run{Outcome: "quit"}); err == nil {
		t.Error("SaveRun() without a game ID should fail")
	}
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty, err := store.GetGameStats("meteors")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("meteors", 40)
	store.SaveScore("meteors", 100)
	store.SaveRun(Run{GameID: "meteors", Outcome: "lost", Score: 40})
	store.SaveRun(Run{GameID: "meteors", Outcome: "won", Score: 100})
	store.SaveRun(Run{GameID: "meteors", Outcome: "quit", Score: 3})

	stats, err := store.GetGameStats("meteors")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 100 || stats.AvgScore != 70 {
		t.Errorf("score stats = %+v", stats)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, expected 1", stats.Wins)
	}

	if err := store.ClearScores("meteors"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	runs, _ := store.RecentRuns("meteors", 10)
	if len(runs) != 0 {
		t.Errorf("ClearScores should drop runs too, got %d", len(runs))
	}
}

func TestStoreRecordRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "record.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.RecordRun(Run{GameID: "meteors", Outcome: "lost", Score: 7}, true); err != nil {
		t.Fatalf("RecordRun(ranked) failed: %v", err)
	}
	if _, err := store.RecordRun(Run{GameID: "meteors", Outcome: "quit", Score: 50}, false); err != nil {
		t.Fatalf("RecordRun(unranked) failed: %v", err)
	}

	high, _ := store.HighScore("meteors")
	if high != 7 {
		t.Errorf("HighScore = %d, unranked runs must not count", high)
	}
	runs, _ := store.RecentRuns("meteors", 10)
	if len(runs) != 2 {
		t.Errorf("Expected 2 runs, got %d", len(runs))
	}
}
