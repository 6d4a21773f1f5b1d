package inmemory

import "sync"

type Snapshot struct {
	ActionTotal    uint64            `json:"action_total"`
	ByAction       map[string]uint64 `json:"by_action"`
	PathBlocked    uint64            `json:"path_blocked"`
	PersistTotal   uint64            `json:"persist_total"`
	PersistFailure uint64            `json:"persist_failure"`
}

// Recorder counts care actions, blocked path requests, and persistence
// outcomes. Exposed read-only through the admin metrics endpoint.
type Recorder struct {
	mu             sync.Mutex
	byAction       map[string]uint64
	pathBlocked    uint64
	persistTotal   uint64
	persistFailure uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
	}
}

func (r *Recorder) RecordAction(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byAction[kind]++
}

func (r *Recorder) RecordPathBlocked() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pathBlocked++
}

func (r *Recorder) RecordPersist(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.persistTotal++
	if !success {
		r.persistFailure++
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		PathBlocked:    r.pathBlocked,
		PersistTotal:   r.persistTotal,
		PersistFailure: r.persistFailure,
		ByAction:       make(map[string]uint64, len(r.byAction)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
		out.ActionTotal += v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
