package ports

import (
	"context"

	"purrhaven/internal/domain/gamestate"
)

// SaveRepository persists one save slot per player. SaveWithVersion
// uses optimistic concurrency: expectedVersion 0 creates, otherwise the
// stored version must match or ErrConflict is returned.
type SaveRepository interface {
	Load(ctx context.Context, playerID string) (gamestate.SavePayload, error)
	SaveWithVersion(ctx context.Context, playerID string, payload gamestate.SavePayload, expectedVersion int64) error
}
