package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"purrhaven/internal/app/ports"
	"purrhaven/internal/domain/gamestate"
)

func testPayload(version int64) gamestate.SavePayload {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return gamestate.InitialState(now).ToPayload(now, version)
}

func TestSaveRepo_LoadMissing(t *testing.T) {
	repo := NewSaveRepo(NewStore())
	if _, err := repo.Load(context.Background(), "nobody"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestSaveRepo_CreateRequiresZeroVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewSaveRepo(NewStore())

	if err := repo.SaveWithVersion(ctx, "p1", testPayload(1), 3); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("create with stale version: err = %v, want conflict", err)
	}
	if err := repo.SaveWithVersion(ctx, "p1", testPayload(1), 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Version != 1 {
		t.Fatalf("version = %d, want 1", got.Version)
	}
}

func TestSaveRepo_VersionConflict(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	store.SeedSave("p1", testPayload(2))
	repo := NewSaveRepo(store)

	if err := repo.SaveWithVersion(ctx, "p1", testPayload(3), 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if err := repo.SaveWithVersion(ctx, "p1", testPayload(3), 2); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestJournalRepo_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewJournalRepo(store)

	if _, err := repo.ListByPlayerID(ctx, "p1", 10); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("empty journal: err = %v, want not found", err)
	}

	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	err := repo.Append(ctx, "p1", []ports.MilestoneRecord{
		{Type: "achievement.unlocked", OccurredAt: at},
		{Type: "decor.purchased", OccurredAt: at.Add(time.Minute)},
		{Type: "day.completed", OccurredAt: at.Add(2 * time.Minute)},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := repo.ListByPlayerID(ctx, "p1", 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Type != "day.completed" || got[1].Type != "decor.purchased" {
		t.Fatalf("order wrong: %s, %s", got[0].Type, got[1].Type)
	}
}

func TestTxManager_SerializesWork(t *testing.T) {
	store := NewStore()
	tx := NewTxManager(store)

	calls := 0
	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Fatalf("RunInTx err=%v calls=%d", err, calls)
	}

	boom := errors.New("rollback")
	if err := tx.RunInTx(context.Background(), func(ctx context.Context) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
