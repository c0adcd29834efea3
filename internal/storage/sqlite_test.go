package storage

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRun(Run{GridLength: 4, Score: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := b.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("second store sees %d runs, want 0", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Seed: 1, GridLength: 4, Score: 100, MaxTile: 16, Turns: 30},
		{Seed: 2, GridLength: 4, Score: 50, MaxTile: 8, Turns: 20},
		{Seed: 3, GridLength: 4, Score: 200, MaxTile: 32, Turns: 50, GameOver: true},
		{Seed: 4, GridLength: 3, Score: 100, MaxTile: 32, Turns: 25, Moves: "ULDR"},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	wantSeeds := []int64{3, 4, 1, 2}
	for i, seed := range wantSeeds {
		if top[i].Seed != seed {
			t.Errorf("top[%d].Seed = %d, want %d", i, top[i].Seed, seed)
		}
	}
	if !top[0].GameOver {
		t.Error("GameOver flag was not stored")
	}
	if top[1].Moves != "ULDR" || top[1].GridLength != 3 {
		t.Errorf("top[1] = %+v", top[1])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	limited, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("TopRuns(2) returned %d runs", len(limited))
	}
}

func TestRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Seed: 9, GridLength: 5, Score: 64, MaxTile: 16, Turns: 12})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() returned an empty ID")
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil")
	}
	if run.ID != id || run.Seed != 9 || run.GridLength != 5 || run.Score != 64 {
		t.Errorf("RunByID() = %+v", run)
	}

	missing, err := store.RunByID("no-such-run")
	if err != nil {
		t.Fatalf("RunByID(missing) failed: %v", err)
	}
	if missing != nil {
		t.Errorf("RunByID(missing) = %+v, want nil", missing)
	}
}

func TestSaveRunGeneratesUniqueIDs(t *testing.T) {
	store := openTestStore(t)

	seen := make(map[string]bool)
	for range 20 {
		id, err := store.SaveRun(Run{GridLength: 4})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate ID %s", id)
		}
		seen[id] = true
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty ledger failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", empty)
	}

	for _, run := range []Run{
		{GridLength: 4, Score: 100, MaxTile: 16, Turns: 10},
		{GridLength: 4, Score: 300, MaxTile: 64, Turns: 30},
	} {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, want 2", stats.Runs)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestTile != 64 {
		t.Errorf("BestTile = %d, want 64", stats.BestTile)
	}
	if stats.TotalTurns != 40 {
		t.Errorf("TotalTurns = %d, want 40", stats.TotalTurns)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}
