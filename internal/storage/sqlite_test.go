package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/nibbles/internal/core"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveReplay(Replay{Variant: "nibbles", Frames: []Frame{{}}})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.Replay(id); err != nil {
		t.Errorf("Replay() after reopen failed: %v", err)
	}
}

func sampleFrames() []Frame {
	start := core.NewMultiInputFrame()
	start.System.Set(core.ActionStart2)

	turn := core.NewMultiInputFrame()
	turn.Press(core.Player1, core.ActionUp)
	spin := core.NewInputFrame()
	spin.SetSpinner(-1.25)
	spin.Set(core.ActionB)
	turn.SetPlayer(core.Player2, spin)

	return []Frame{FrameOf(start), FrameOf(core.NewMultiInputFrame()), FrameOf(turn)}
}

func TestSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)

	in := Replay{
		Variant:    "nibbles",
		Seed:       42,
		Speed:      70,
		Players:    2,
		StartLevel: 3,
		FieldHash:  0xdeadbeefcafef00d,
		Config:     "speed: 70\n",
		Frames:     sampleFrames(),
	}
	id, err := store.SaveReplay(in)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("id = %q, expected a uuid", id)
	}

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got.Variant != "nibbles" || got.Seed != 42 || got.Speed != 70 || got.Players != 2 || got.StartLevel != 3 {
		t.Errorf("metadata = %+v", got)
	}
	if got.FieldHash != in.FieldHash {
		t.Errorf("FieldHash = %x, expected %x", got.FieldHash, in.FieldHash)
	}
	if got.Ticks != 3 || len(got.Frames) != 3 {
		t.Fatalf("Ticks = %d, frames = %d, expected 3", got.Ticks, len(got.Frames))
	}
	if got.Config != in.Config {
		t.Errorf("Config = %q, expected %q", got.Config, in.Config)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	first := got.Frames[0].Input()
	if !first.System.Has(core.ActionStart2) {
		t.Error("frame 0 lost the start button")
	}
	third := got.Frames[2].Input()
	if !third.Player(core.Player1).Has(core.ActionUp) {
		t.Error("frame 2 lost player 1 up")
	}
	p2 := third.Player(core.Player2)
	if !p2.Has(core.ActionB) || !p2.HasSpinner || p2.Spinner != -1.25 {
		t.Errorf("player 2 = %+v, expected B and spinner -1.25", p2)
	}
	if third.Player(core.Player1).HasSpinner {
		t.Error("player 1 should have no spinner reading")
	}
}

func TestReplayByPrefix(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(Replay{ID: "abc-123", Variant: "nibbles", Frames: sampleFrames()})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if _, err := store.SaveReplay(Replay{ID: "abd-456", Variant: "nibbles", Frames: sampleFrames()}); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.Replay("abc")
	if err != nil {
		t.Fatalf("Replay(prefix) failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %q, expected %q", got.ID, id)
	}

	if _, err := store.Replay("ab"); err == nil {
		t.Error("ambiguous prefix should fail")
	}
	if _, err := store.Replay("zzz"); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("Replay(missing) error = %v, expected ErrReplayNotFound", err)
	}
}

func TestRecentReplays(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"r1", "r2", "r3"} {
		if _, err := store.SaveReplay(Replay{ID: id, Variant: "nibbles-classic", Frames: sampleFrames()}); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	list, err := store.RecentReplays(2)
	if err != nil {
		t.Fatalf("RecentReplays() failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, expected 2", len(list))
	}
	// Same-second inserts fall back to insertion order.
	if list[0].ID != "r3" || list[1].ID != "r2" {
		t.Errorf("order = %s, %s, expected r3, r2", list[0].ID, list[1].ID)
	}
	if list[0].Frames != nil {
		t.Error("listing should not load frames")
	}
	if list[0].Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", list[0].Ticks)
	}
}

func TestDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(Replay{Variant: "nibbles", Frames: sampleFrames()})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.Replay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("Replay() after delete error = %v, expected ErrReplayNotFound", err)
	}
	if err := store.DeleteReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("second DeleteReplay() error = %v, expected ErrReplayNotFound", err)
	}
}

func TestDuplicateID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveReplay(Replay{ID: "same", Frames: sampleFrames()}); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if _, err := store.SaveReplay(Replay{ID: "same", Frames: sampleFrames()}); err == nil {
		t.Error("saving a duplicate id should fail")
	}
}
