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
	_, err = store.SaveScore("runner", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("runner", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("runner", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different mode
	_, err = store.SaveScore("runner_endless", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for the campaign
	scores, err := store.TopScores("runner", 10)
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

	// Retrieve top scores for endless
	endlessScores, err := store.TopScores("runner_endless", 10)
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
		store.SaveScore("runner", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("runner", 3)
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
	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("runner", 100)
	store.SaveScore("runner", 300)
	store.SaveScore("runner", 200)

	high, err = store.HighScore("runner")
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

	store.SaveScore("runner", 100)
	store.SaveScore("runner", 200)
	store.SaveScore("runner_endless", 300)

	// Clear only campaign scores
	err = store.ClearScores("runner")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Campaign should be empty
	campaignScores, _ := store.TopScores("runner", 10)
	if len(campaignScores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaignScores))
	}

	// Endless should still have scores
	endlessScores, _ := store.TopScores("runner_endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing the campaign")
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
		store.SaveScore("runner", i*10)
	}

	scores, err := store.AllScores("runner")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveRun(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveRun(RunEntry{
		GameID:       "runner",
		Player:       "ada",
		Score:        1234,
		LevelReached: 7,
		Victory:      true,
		Duration:     5400,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive run id, got %d", id)
	}

	runs, err := store.RecentRuns("runner", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	run := runs[0]
	if run.Player != "ada" {
		t.Errorf("Expected player ada, got %q", run.Player)
	}
	if run.Score != 1234 {
		t.Errorf("Expected score 1234, got %d", run.Score)
	}
	if run.LevelReached != 7 {
		t.Errorf("Expected level 7, got %d", run.LevelReached)
	}
	if !run.Victory {
		t.Error("Victory flag should survive the round trip")
	}
	if run.Duration != 5400 {
		t.Errorf("Expected duration 5400 ticks, got %d", run.Duration)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreRecentRunsOrderAndLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(RunEntry{GameID: "runner", Score: (i + 1) * 10, Duration: 60})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("runner", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Newest first; same-timestamp rows fall back to id order
	if runs[0].ID <= runs[1].ID || runs[1].ID <= runs[2].ID {
		t.Errorf("Runs not ordered newest first: ids %d, %d, %d", runs[0].ID, runs[1].ID, runs[2].ID)
	}
	if runs[0].Score != 50 {
		t.Errorf("Expected most recent run score 50, got %d", runs[0].Score)
	}
}

func TestStoreTopRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunEntry{GameID: "runner", Score: 300})
	store.SaveRun(RunEntry{GameID: "runner", Score: 900})
	store.SaveRun(RunEntry{GameID: "runner", Score: 600})
	store.SaveRun(RunEntry{GameID: "runner_endless", Score: 5000})

	runs, err := store.TopRuns("runner", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 900 || runs[1].Score != 600 {
		t.Errorf("Runs not sorted by score: got %d, %d", runs[0].Score, runs[1].Score)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunEntry{GameID: "runner", Player: "ada", Score: 100})
	store.SaveRun(RunEntry{GameID: "runner_endless", Player: "ada", Score: 900})
	store.SaveRun(RunEntry{GameID: "runner", Player: "lin", Score: 300})
	store.SaveRun(RunEntry{GameID: "runner", Score: 50}) // anonymous local run

	runs, err := store.PlayerRuns("ada", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for ada, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Player != "ada" {
			t.Errorf("PlayerRuns returned run for %q", r.Player)
		}
	}
}

func TestStoreBestRun(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	best, err := store.BestRun("runner")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best run for empty table, got %+v", best)
	}

	store.SaveRun(RunEntry{GameID: "runner", Score: 100, LevelReached: 2})
	store.SaveRun(RunEntry{GameID: "runner", Score: 700, LevelReached: 9, Victory: true})
	store.SaveRun(RunEntry{GameID: "runner", Score: 300, LevelReached: 4})
	store.SaveRun(RunEntry{GameID: "runner_endless", Score: 9000})

	best, err = store.BestRun("runner")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best run")
	}
	if best.Score != 700 {
		t.Errorf("Expected best score 700, got %d", best.Score)
	}
	if !best.Victory {
		t.Error("Best run should be the victorious one")
	}
}

func TestStoreVictoryCount(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunEntry{GameID: "runner", Score: 100, Victory: true})
	store.SaveRun(RunEntry{GameID: "runner", Score: 200})
	store.SaveRun(RunEntry{GameID: "runner", Score: 300, Victory: true})
	store.SaveRun(RunEntry{GameID: "runner_endless", Score: 400, Victory: true})

	count, err := store.VictoryCount("runner")
	if err != nil {
		t.Fatalf("VictoryCount() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 victories, got %d", count)
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("runner", 100)
	store.SaveScore("runner", 200)
	store.SaveScore("runner", 300)

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("Expected total 600, got %d", stats.TotalScore)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("runner", 100)
	store.SaveScore("runner", 250)
	store.SaveScore("runner_endless", 900)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 modes, got %d", len(all))
	}
	if all["runner"].GamesCount != 2 {
		t.Errorf("Expected 2 campaign games, got %d", all["runner"].GamesCount)
	}
	if all["runner"].HighScore != 250 {
		t.Errorf("Expected campaign high score 250, got %d", all["runner"].HighScore)
	}
	if all["runner_endless"].HighScore != 900 {
		t.Errorf("Expected endless high score 900, got %d", all["runner_endless"].HighScore)
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
