package saveload

import (
	"context"
	"errors"
	"time"

	"purrhaven/internal/app/ports"
	"purrhaven/internal/domain/gameclock"
	"purrhaven/internal/domain/gamestate"
	"purrhaven/internal/domain/pet"
)

// UseCase restores and persists save slots. Missing, corrupt, or
// version-mismatched records fall back to a freshly initialized state;
// there is no partial recovery or migration.
type UseCase struct {
	Repo ports.SaveRepository
	Now  func() time.Time
}

type LoadResult struct {
	State gamestate.GameState
	// OfflineMinutes is the capped catch-up budget, surfaced
	// separately from the state for one-time application.
	OfflineMinutes float64
	Version        int64
	Fresh          bool
}

func (u UseCase) Load(ctx context.Context, playerID string) (LoadResult, error) {
	now := u.now()
	fresh := LoadResult{State: gamestate.InitialState(now), Fresh: true}

	payload, err := u.Repo.Load(ctx, playerID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) || errors.Is(err, ports.ErrCorruptSave) {
			return fresh, nil
		}
		return LoadResult{}, err
	}
	if payload.SaveVersion != gamestate.SaveVersion {
		return fresh, nil
	}

	state := payload.GameState
	state.CatProfile.BreedID = pet.BreedByID(state.CatProfile.BreedID).ID
	state.CatProfile.GrowthStage = pet.StageForAge(state.CatProfile.AgeDays)

	return LoadResult{
		State:          state,
		OfflineMinutes: gameclock.OfflineMinutes(payload.LastSavedAt, now),
		Version:        payload.Version,
	}, nil
}

// Save writes the state under the next storage version and returns it.
func (u UseCase) Save(ctx context.Context, playerID string, state gamestate.GameState, currentVersion int64) (int64, error) {
	next := currentVersion + 1
	payload := state.ToPayload(u.now(), next)
	if err := u.Repo.SaveWithVersion(ctx, playerID, payload, currentVersion); err != nil {
		return currentVersion, err
	}
	return next, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
