package memory

import (
	"context"

	"purrhaven/internal/app/ports"
	"purrhaven/internal/domain/gamestate"
)

type SaveRepo struct {
	store *Store
}

func NewSaveRepo(store *Store) SaveRepo {
	return SaveRepo{store: store}
}

func (r SaveRepo) Load(_ context.Context, playerID string) (gamestate.SavePayload, error) {
	payload, ok := r.store.saves[playerID]
	if !ok {
		return gamestate.SavePayload{}, ports.ErrNotFound
	}
	return payload, nil
}

func (r SaveRepo) SaveWithVersion(_ context.Context, playerID string, payload gamestate.SavePayload, expectedVersion int64) error {
	current, ok := r.store.saves[playerID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.saves[playerID] = payload
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.saves[playerID] = payload
	return nil
}
