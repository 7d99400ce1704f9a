package storage

import (
	"fmt"
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

func saveRound(t *testing.T, store *Store, size, moves int, d time.Duration) {
	t.Helper()
	_, err := store.SaveRound(RoundRecord{
		RoundID:  fmt.Sprintf("r-%d-%d-%d", size, moves, d),
		Size:     size,
		Moves:    moves,
		Duration: d,
		Content:  "gradient",
	})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
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

	saveRound(t, store, 4, 120, 90*time.Second)
	saveRound(t, store, 4, 80, 2*time.Minute)
	saveRound(t, store, 4, 200, 30*time.Second)
	saveRound(t, store, 3, 25, 10*time.Second)

	rounds, err := store.TopRounds(4, 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Fewest moves first
	if rounds[0].Moves != 80 || rounds[1].Moves != 120 || rounds[2].Moves != 200 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
	if rounds[0].Duration != 2*time.Minute {
		t.Errorf("Expected duration 2m, got %v", rounds[0].Duration)
	}
	if rounds[0].Content != "gradient" {
		t.Errorf("Expected content gradient, got %q", rounds[0].Content)
	}

	all, err := store.TopRounds(0, 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(all) != 4 || all[0].Size != 3 {
		t.Errorf("Expected the 3x3 round to lead all sizes, got %v", all)
	}
}

func TestStoreTopRoundsTieBreak(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, 4, 50, 40*time.Second)
	saveRound(t, store, 4, 50, 20*time.Second)

	rounds, err := store.TopRounds(4, 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if rounds[0].Duration != 20*time.Second {
		t.Errorf("Expected faster round first, got %v", rounds[0].Duration)
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveRound(t, store, 4, (i+1)*100, time.Second)
	}

	rounds, err := store.TopRounds(4, 3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	if len(rounds) != 3 {
		t.Errorf("Expected 3 rounds with limit, got %d", len(rounds))
	}
}

func TestStoreDuplicateRoundID(t *testing.T) {
	store := openTestStore(t)

	r := RoundRecord{RoundID: "same", Size: 3, Moves: 10, Duration: time.Second}
	if _, err := store.SaveRound(r); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound(r); err == nil {
		t.Error("Expected an error saving the same round twice")
	}
}

func TestStoreRoundByID(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRound(RoundRecord{RoundID: "abc", Size: 5, Moves: 300, Duration: time.Minute, Player: "ana"})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	r, err := store.RoundByID("abc")
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if r == nil || r.Size != 5 || r.Player != "ana" {
		t.Errorf("Unexpected round: %+v", r)
	}

	missing, err := store.RoundByID("nope")
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown round, got %+v", missing)
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestMoves(4)
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for no rounds, got %d", best)
	}

	saveRound(t, store, 4, 100, time.Second)
	saveRound(t, store, 4, 60, time.Second)
	saveRound(t, store, 4, 90, time.Second)

	best, err = store.BestMoves(4)
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 60 {
		t.Errorf("Expected best of 60, got %d", best)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, 4, 100, time.Second)
	saveRound(t, store, 4, 200, time.Second)
	saveRound(t, store, 3, 30, time.Second)

	if err := store.ClearRounds(4); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	four, _ := store.TopRounds(4, 10)
	if len(four) != 0 {
		t.Errorf("Expected 0 rounds of size 4 after clear, got %d", len(four))
	}

	three, _ := store.TopRounds(3, 10)
	if len(three) != 1 {
		t.Errorf("Size 3 rounds should not be affected by clearing size 4")
	}
}

func TestStoreSizeStats(t *testing.T) {
	store := openTestStore(t)

	saveRound(t, store, 4, 100, 30*time.Second)
	saveRound(t, store, 4, 50, 60*time.Second)
	saveRound(t, store, 3, 20, 5*time.Second)

	stats, err := store.GetSizeStats(4)
	if err != nil {
		t.Fatalf("GetSizeStats() failed: %v", err)
	}
	if stats.Solved != 2 || stats.BestMoves != 50 || stats.AvgMoves != 75 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.BestTime != 30*time.Second || stats.TotalTime != 90*time.Second {
		t.Errorf("Unexpected times: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}

	empty, err := store.GetSizeStats(9)
	if err != nil {
		t.Fatalf("GetSizeStats() failed: %v", err)
	}
	if empty.Solved != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	all, err := store.GetAllSizeStats()
	if err != nil {
		t.Fatalf("GetAllSizeStats() failed: %v", err)
	}
	if len(all) != 2 || all[3].Solved != 1 {
		t.Errorf("Unexpected all stats: %v", all)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveRound(t, store, 3, 10+i, time.Second)
	}

	recent, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(recent))
	}
	// Same-second inserts fall back to id order
	if recent[0].Moves != 14 {
		t.Errorf("Expected newest round first, got %d moves", recent[0].Moves)
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
