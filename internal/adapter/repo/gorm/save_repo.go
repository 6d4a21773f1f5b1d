package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"purrhaven/internal/app/ports"
	"purrhaven/internal/domain/gamestate"
)

type SaveRepo struct {
	db *gorm.DB
}

func NewSaveRepo(db *gorm.DB) SaveRepo {
	return SaveRepo{db: db}
}

func (r SaveRepo) Load(ctx context.Context, playerID string) (gamestate.SavePayload, error) {
	var m PlayerSave
	if err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gamestate.SavePayload{}, ports.ErrNotFound
		}
		return gamestate.SavePayload{}, err
	}

	var payload gamestate.SavePayload
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return gamestate.SavePayload{}, ports.ErrCorruptSave
	}
	payload.SaveVersion = m.SaveVersion
	payload.LastSavedAt = m.LastSavedAt
	payload.Version = m.Version
	return payload, nil
}

func (r SaveRepo) SaveWithVersion(ctx context.Context, playerID string, payload gamestate.SavePayload, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)

	doc, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		m := PlayerSave{
			PlayerID:    playerID,
			SaveVersion: payload.SaveVersion,
			Payload:     doc,
			LastSavedAt: payload.LastSavedAt,
			Version:     payload.Version,
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		return nil
	}

	res := db.Model(&PlayerSave{}).
		Where("player_id = ? AND version = ?", playerID, expectedVersion).
		Updates(map[string]any{
			"save_version":  payload.SaveVersion,
			"payload":       doc,
			"last_saved_at": payload.LastSavedAt,
			"version":       payload.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
