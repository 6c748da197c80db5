// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sketchwell/collabsync/internal/crypto"
	"github.com/sketchwell/collabsync/internal/logger"
	"github.com/sketchwell/collabsync/internal/reconcile"
	"github.com/sketchwell/collabsync/internal/store"
	"github.com/sketchwell/collabsync/models"
)

// sceneSyncService is the private implementation of [SceneSyncService].
//
// No mutual exclusion is enforced across saves to the same room: two
// connections can both read the same prior record and each write a
// reconciled result, the second overwriting the first. The merge being
// convergent for non-conflicting edits is what keeps that race benign.
type sceneSyncService struct {
	scenes     store.SceneStore
	cipher     crypto.SceneCipher
	reconciler reconcile.Reconciler
	cache      *VersionCache
	logger     *logger.Logger
}

// NewSceneSyncService constructs a [SceneSyncService]. cache is shared
// process-wide so every service instance sees the same per-connection
// versions.
func NewSceneSyncService(
	scenes store.SceneStore,
	cipher crypto.SceneCipher,
	reconciler reconcile.Reconciler,
	cache *VersionCache,
	log *logger.Logger,
) SceneSyncService {
	return &sceneSyncService{
		scenes:     scenes,
		cipher:     cipher,
		reconciler: reconciler,
		cache:      cache,
		logger:     log.WithComponent("scene-sync"),
	}
}

// IsSceneSynced implements [SceneSyncService].
func (s *sceneSyncService) IsSceneSynced(portal *models.Portal, elements []models.Element) bool {
	if !portal.InRoom() {
		return true
	}

	cached, ok := s.cache.Get(portal.SocketID)
	return ok && cached == s.reconciler.SceneVersion(elements)
}

// SaveScene implements [SceneSyncService].
func (s *sceneSyncService) SaveScene(ctx context.Context, portal *models.Portal, elements []models.Element, appState models.AppState) ([]models.Element, error) {
	if !portal.InRoom() || s.IsSceneSynced(portal, elements) {
		return nil, ErrSaveNotNeeded
	}

	reconciled := elements

	record, err := s.scenes.GetScene(ctx, portal.RoomID)
	switch {
	case errors.Is(err, store.ErrSceneNotFound):
		// First writer for this room: store the input as-is, no merge.
	case err != nil:
		return nil, fmt.Errorf("fetch scene %s: %w", portal.RoomID, err)
	default:
		remote, err := s.decryptElements(record, portal.RoomKey)
		if err != nil {
			return nil, err
		}
		remote = s.reconciler.FilterSyncable(s.reconciler.Restore(remote))

		// The merge may resurrect elements the syncable filter would
		// reject, so filter its output again.
		merged := s.reconciler.Reconcile(elements, remote, appState)
		reconciled = s.reconciler.FilterSyncable(merged)
	}

	payload, err := json.Marshal(reconciled)
	if err != nil {
		return nil, fmt.Errorf("serialize scene %s: %w", portal.RoomID, err)
	}
	ciphertext, iv, err := s.cipher.Encrypt(portal.RoomKey, payload)
	if err != nil {
		return nil, fmt.Errorf("encrypt scene %s: %w", portal.RoomID, err)
	}

	version := s.reconciler.SceneVersion(reconciled)
	err = s.scenes.UpsertScene(ctx, models.SceneRecord{
		RoomID:       portal.RoomID,
		SceneVersion: version,
		Ciphertext:   ciphertext,
		IV:           iv,
	})
	if err != nil {
		return nil, fmt.Errorf("store scene %s: %w", portal.RoomID, err)
	}

	s.cache.Set(portal.SocketID, reconciled)
	s.logger.Debug().
		Str("room_id", portal.RoomID).
		Int64("scene_version", int64(version)).
		Int("elements", len(reconciled)).
		Msg("scene saved")

	return reconciled, nil
}

// LoadScene implements [SceneSyncService].
func (s *sceneSyncService) LoadScene(ctx context.Context, roomID, roomKey string, portal *models.Portal) ([]models.Element, error) {
	record, err := s.scenes.GetScene(ctx, roomID)
	if err != nil {
		if errors.Is(err, store.ErrSceneNotFound) {
			return nil, ErrSceneNotFound
		}
		return nil, fmt.Errorf("fetch scene %s: %w", roomID, err)
	}

	elements, err := s.decryptElements(record, roomKey)
	if err != nil {
		return nil, err
	}
	elements = s.reconciler.FilterSyncable(s.reconciler.Restore(elements))

	// Prime the cache so the next local edit is compared against the
	// just-loaded baseline without another round trip.
	if portal != nil && portal.SocketID != "" {
		s.cache.Set(portal.SocketID, elements)
	}

	return elements, nil
}

func (s *sceneSyncService) decryptElements(record models.SceneRecord, roomKey string) ([]models.Element, error) {
	plaintext, err := s.cipher.Decrypt(record.IV, record.Ciphertext, roomKey)
	if err != nil {
		return nil, fmt.Errorf("decrypt scene %s: %w", record.RoomID, err)
	}

	var elements []models.Element
	if err = json.Unmarshal(plaintext, &elements); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", record.RoomID, err)
	}
	return elements, nil
}
