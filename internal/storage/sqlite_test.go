package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridtap/internal/engine"
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

func testRecord(player string, score int) engine.RunRecord {
	acc := 80
	fastest := 210
	avg := 345.5
	return engine.RunRecord{
		Summary: engine.Summary{
			Player:    player,
			Mode:      "normal",
			Score:     score,
			Hits:      8,
			Misses:    2,
			Accuracy:  &acc,
			FastestMs: &fastest,
			AvgMs:     &avg,
			MaxStreak: 5,
		},
		PlayedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
	}
}

func TestStoreOpenCreatesFile(t *testing.T) {
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

func TestSubmitAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player string
		mode   string
		score  int
	}{
		{"ada", "normal", 100},
		{"bob", "normal", 50},
		{"eve", "normal", 200},
		{"ada", "hard", 500},
	} {
		if err := store.SubmitScore(s.player, s.mode, s.score); err != nil {
			t.Fatalf("SubmitScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 normal scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[0].Player != "eve" {
		t.Errorf("Top entry = %s/%d, want eve/200", scores[0].Player, scores[0].Score)
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not descending: %d, %d", scores[1].Score, scores[2].Score)
	}

	hardScores, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores(hard) failed: %v", err)
	}
	if len(hardScores) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hardScores))
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SubmitScore("ada", "normal", (i+1)*100)
	}

	scores, err := store.TopScores("normal", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SubmitScore("ada", "normal", 100)
	store.SubmitScore("bob", "normal", 300)
	store.SubmitScore("eve", "normal", 200)

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestRecordAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordRun(testRecord("ada", 120)); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := store.RecordRun(testRecord("bob", 80)); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Player != "bob" || runs[1].Player != "ada" {
		t.Errorf("Runs not newest-first: %s, %s", runs[0].Player, runs[1].Player)
	}

	r := runs[1]
	if r.Score != 120 || r.Hits != 8 || r.Misses != 2 || r.MaxStreak != 5 {
		t.Errorf("Run fields lost in round trip: %+v", r)
	}
	if !r.Accuracy.Valid || r.Accuracy.Int64 != 80 {
		t.Errorf("Accuracy = %+v, want 80", r.Accuracy)
	}
	if !r.FastestMs.Valid || r.FastestMs.Int64 != 210 {
		t.Errorf("FastestMs = %+v, want 210", r.FastestMs)
	}
	if !r.AvgMs.Valid || r.AvgMs.Float64 != 345.5 {
		t.Errorf("AvgMs = %+v, want 345.5", r.AvgMs)
	}
	if r.PlayedAt.IsZero() {
		t.Error("PlayedAt should survive the round trip")
	}
}

func TestRecordRunNullableStats(t *testing.T) {
	store := openTestStore(t)

	// A run with no attempts has nil statistics.
	rec := engine.RunRecord{
		Summary: engine.Summary{Player: "ada", Mode: "normal"},
	}
	if err := store.RecordRun(rec); err != nil {
		t.Fatalf("RecordRun() with nil stats failed: %v", err)
	}

	runs, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].Accuracy.Valid || runs[0].FastestMs.Valid || runs[0].AvgMs.Valid {
		t.Errorf("Nil statistics should round-trip as NULL: %+v", runs[0])
	}
}

func TestRunHistoryCap(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < historyCap+10; i++ {
		if err := store.RecordRun(testRecord("ada", i)); err != nil {
			t.Fatalf("RecordRun() failed at %d: %v", i, err)
		}
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != historyCap {
		t.Errorf("History should cap at %d runs, got %d", historyCap, n)
	}

	// The survivors are the newest entries.
	runs, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if runs[0].Score != historyCap+9 {
		t.Errorf("Newest run score = %d, want %d", runs[0].Score, historyCap+9)
	}
}

func TestRecentRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		store.RecordRun(testRecord("ada", i))
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Default limit should be 20, got %d runs", len(runs))
	}
}
