package gormrepo

import "time"

// PlayerSave is one save slot row. The simulation state travels as a
// JSON document; only the fields storage needs to reason about get
// their own columns.
type PlayerSave struct {
	PlayerID    string `gorm:"primaryKey"`
	SaveVersion int
	Payload     []byte `gorm:"type:jsonb"`
	LastSavedAt time.Time
	Version     int64
}

func (PlayerSave) TableName() string { return "player_saves" }

type MilestoneEvent struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	PlayerID   string
	Type       string
	OccurredAt time.Time
	Payload    []byte `gorm:"type:jsonb"`
}

func (MilestoneEvent) TableName() string { return "milestone_events" }
