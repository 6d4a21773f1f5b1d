package memory

import (
	"sync"

	"purrhaven/internal/app/ports"
	"purrhaven/internal/domain/gamestate"
)

// Store is the in-process backing for every memory repo. The repos do
// not lock it themselves; callers serialize access through TxManager,
// matching the way the gorm adapters rely on the surrounding
// transaction.
type Store struct {
	mu         sync.Mutex
	saves      map[string]gamestate.SavePayload
	milestones map[string][]ports.MilestoneRecord
}

func NewStore() *Store {
	return &Store{
		saves:      make(map[string]gamestate.SavePayload),
		milestones: make(map[string][]ports.MilestoneRecord),
	}
}

// SeedSave installs a payload directly, bypassing version checks.
func (s *Store) SeedSave(playerID string, payload gamestate.SavePayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[playerID] = payload
}
