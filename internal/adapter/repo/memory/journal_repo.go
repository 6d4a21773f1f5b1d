package memory

import (
	"context"

	"purrhaven/internal/app/ports"
)

type JournalRepo struct {
	store *Store
}

func NewJournalRepo(store *Store) JournalRepo {
	return JournalRepo{store: store}
}

func (r JournalRepo) Append(_ context.Context, playerID string, records []ports.MilestoneRecord) error {
	if len(records) == 0 {
		return nil
	}
	r.store.milestones[playerID] = append(r.store.milestones[playerID], records...)
	return nil
}

func (r JournalRepo) ListByPlayerID(_ context.Context, playerID string, limit int) ([]ports.MilestoneRecord, error) {
	all := r.store.milestones[playerID]
	if len(all) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]ports.MilestoneRecord, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
