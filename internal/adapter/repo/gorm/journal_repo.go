package gormrepo

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"purrhaven/internal/app/ports"
)

type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepo {
	return JournalRepo{db: db}
}

func (r JournalRepo) Append(ctx context.Context, playerID string, records []ports.MilestoneRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]MilestoneEvent, 0, len(records))
	for _, rec := range records {
		b, _ := json.Marshal(rec.Payload)
		rows = append(rows, MilestoneEvent{
			PlayerID:   playerID,
			Type:       rec.Type,
			OccurredAt: rec.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r JournalRepo) ListByPlayerID(ctx context.Context, playerID string, limit int) ([]ports.MilestoneRecord, error) {
	rows := []MilestoneEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where(&MilestoneEvent{PlayerID: playerID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.MilestoneRecord, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, ports.MilestoneRecord{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
