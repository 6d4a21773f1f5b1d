package ports

import (
	"context"
	"time"
)

// MilestoneRecord is one progression fact worth keeping outside the
// mutable save slot: an unlocked achievement, a purchase, a finished
// day. The journal is append-only.
type MilestoneRecord struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload,omitempty"`
}

type MilestoneJournal interface {
	Append(ctx context.Context, playerID string, records []MilestoneRecord) error
	// ListByPlayerID returns newest-first records, ErrNotFound when
	// the player has none yet.
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]MilestoneRecord, error)
}
