package inmemory

import (
	"testing"

	"purrhaven/internal/app/ports"
)

var _ ports.SessionMetrics = (*Recorder)(nil)

func TestRecorder_Snapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordAction("feed")
	r.RecordAction("feed")
	r.RecordAction("pet")
	r.RecordPathBlocked()
	r.RecordPersist(true)
	r.RecordPersist(false)

	snap := r.Snapshot()
	if snap.ActionTotal != 3 {
		t.Fatalf("action total = %d, want 3", snap.ActionTotal)
	}
	if snap.ByAction["feed"] != 2 || snap.ByAction["pet"] != 1 {
		t.Fatalf("by-action counts wrong: %v", snap.ByAction)
	}
	if snap.PathBlocked != 1 {
		t.Fatalf("path blocked = %d, want 1", snap.PathBlocked)
	}
	if snap.PersistTotal != 2 || snap.PersistFailure != 1 {
		t.Fatalf("persist counts = %d/%d, want 2/1", snap.PersistTotal, snap.PersistFailure)
	}
}

func TestRecorder_SnapshotIsolation(t *testing.T) {
	r := NewRecorder()
	r.RecordAction("play")

	snap := r.Snapshot()
	snap.ByAction["play"] = 99

	if got := r.Snapshot().ByAction["play"]; got != 1 {
		t.Fatalf("snapshot must copy counters, got %d", got)
	}
}
