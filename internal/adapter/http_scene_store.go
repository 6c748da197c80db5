package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sketchwell/collabsync/internal/store"
	"github.com/sketchwell/collabsync/models"
)

type httpSceneStore struct {
	client *Client
}

// NewHTTPSceneStore returns a [store.SceneStore] that reads and writes
// scene records through the storage server API.
func NewHTTPSceneStore(client *Client) store.SceneStore {
	return &httpSceneStore{client: client}
}

func (h *httpSceneStore) GetScene(ctx context.Context, roomID string) (models.SceneRecord, error) {
	resp, err := h.client.request().
		SetContext(ctx).
		SetPathParam("roomID", roomID).
		Get("/api/v2/scenes/{roomID}")
	if err != nil {
		return models.SceneRecord{}, fmt.Errorf("get scene request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.SceneRecord{}, store.ErrSceneNotFound
		}
		return models.SceneRecord{}, err
	}

	var record models.SceneRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.SceneRecord{}, fmt.Errorf("decode scene response: %w", err)
	}
	return record, nil
}

func (h *httpSceneStore) UpsertScene(ctx context.Context, record models.SceneRecord) error {
	resp, err := h.client.request().
		SetContext(ctx).
		SetPathParam("roomID", record.RoomID).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put("/api/v2/scenes/{roomID}")
	if err != nil {
		return fmt.Errorf("upsert scene request: %w", err)
	}

	return mapHTTPError(resp)
}
