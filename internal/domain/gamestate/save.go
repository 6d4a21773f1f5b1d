package gamestate

import "time"

// SaveVersion is the schema tag. A mismatched save is discarded, never
// migrated.
const SaveVersion = 1

// SavePayload is the versioned record written to storage. Version is
// the optimistic-concurrency counter, distinct from the schema tag.
type SavePayload struct {
	GameState
	SaveVersion int       `json:"saveVersion"`
	LastSavedAt time.Time `json:"lastSavedAt"`
	Version     int64     `json:"-"`
}

func (s GameState) ToPayload(now time.Time, version int64) SavePayload {
	return SavePayload{
		SaveVersion: SaveVersion,
		GameState:   s,
		LastSavedAt: now,
		Version:     version,
	}
}
