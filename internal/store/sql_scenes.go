// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sketchwell/collabsync/models"
)

// sceneRepository is the SQL implementation of [SceneStore]. One row per
// room; every upsert fully replaces the previous snapshot.
type sceneRepository struct {
	db *DB
}

// NewSceneRepository constructs a [SceneStore] backed by db.
func NewSceneRepository(db *DB) SceneStore {
	return &sceneRepository{db: db}
}

func (r *sceneRepository) GetScene(ctx context.Context, roomID string) (models.SceneRecord, error) {
	query, args, err := r.db.builder.
		Select("id", "scene_version", "ciphertext", "iv").
		From("scenes").
		Where("id = ?", roomID).
		ToSql()
	if err != nil {
		return models.SceneRecord{}, fmt.Errorf("build get scene query: %w", err)
	}

	var record models.SceneRecord
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&record.RoomID, &record.SceneVersion, &record.Ciphertext, &record.IV); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SceneRecord{}, ErrSceneNotFound
		}
		return models.SceneRecord{}, fmt.Errorf("get scene %s: %w", roomID, err)
	}

	return record, nil
}

func (r *sceneRepository) UpsertScene(ctx context.Context, record models.SceneRecord) error {
	query, args, err := r.db.builder.
		Insert("scenes").
		Columns("id", "scene_version", "ciphertext", "iv", "updated_at").
		Values(record.RoomID, record.SceneVersion, record.Ciphertext, record.IV, time.Now().UTC()).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			scene_version = excluded.scene_version,
			ciphertext = excluded.ciphertext,
			iv = excluded.iv,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert scene query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.db.logger.Err(err).
			Str("room_id", record.RoomID).
			Bool("retryable", r.db.classifier.Classify(err) == Retryable).
			Msg("upsert scene failed")
		return fmt.Errorf("upsert scene %s: %w", record.RoomID, err)
	}

	return nil
}
