package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRunRoundTrip(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		GameID:   "blockfall",
		Score:    4200,
		Lines:    31,
		Level:    3,
		Duration: 95 * time.Second,
		Player:   "alice",
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveRun() should return a row ID")
	}

	scores, err := store.TopScores("blockfall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	if scores[0].Run != run {
		t.Errorf("stored run = %+v, expected %+v", scores[0].Run, run)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveScoreDefaultsPlayer(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("blockfall", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, _ := store.TopScores("blockfall", 1)
	if len(scores) != 1 || scores[0].Player != "local" {
		t.Errorf("expected a local player entry, got %+v", scores)
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 500, 300, 200, 400} {
		store.SaveScore("blockfall", s)
	}
	store.SaveScore("blockfall_endless", 900)

	scores, err := store.TopScores("blockfall", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("blockfall", 0)
	if len(all) != 5 {
		t.Errorf("default limit should return all 5 scores, got %d", len(all))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "blockfall", Score: 100, Player: "first"})
	store.SaveRun(Run{GameID: "blockfall", Score: 100, Player: "second"})

	scores, _ := store.TopScores("blockfall", 10)
	if len(scores) != 2 || scores[0].Player != "first" {
		t.Errorf("earlier run should win ties, got %+v", scores)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "blockfall", Score: 100, Player: "bob"})
	store.SaveRun(Run{GameID: "blockfall_endless", Score: 700, Player: "bob"})
	store.SaveRun(Run{GameID: "blockfall", Score: 900, Player: "carol"})

	scores, err := store.PlayerScores("bob", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 700 || scores[0].GameID != "blockfall_endless" {
		t.Errorf("unexpected player scores: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("blockfall", 100)
	store.SaveScore("blockfall", 300)
	store.SaveScore("blockfall", 200)

	high, err = store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blockfall", 100)
	store.SaveScore("blockfall", 200)
	store.SaveScore("blockfall_endless", 300)

	if err := store.ClearScores("blockfall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("blockfall", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("blockfall_endless", 10); len(scores) != 1 {
		t.Errorf("Other modes should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "blockfall", Score: 100, Lines: 4, Level: 0, Duration: 30 * time.Second})
	store.SaveRun(Run{GameID: "blockfall", Score: 300, Lines: 12, Level: 1, Duration: 90 * time.Second})
	store.SaveRun(Run{GameID: "blockfall_endless", Score: 50})

	stats, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("unexpected score stats: %+v", stats)
	}
	if stats.TotalLines != 16 || stats.BestLevel != 1 || stats.PlayTime != 2*time.Minute {
		t.Errorf("unexpected progress stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty game stats should be zero, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["blockfall_endless"].HighScore != 50 {
		t.Errorf("unexpected all-games stats: %+v", all)
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

	store, err := Open("~/.blockfall/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".blockfall", "scores.db")); err != nil {
		t.Errorf("database should be created under HOME: %v", err)
	}
}
