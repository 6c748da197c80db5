package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/sketchwell/collabsync/models"
)

// SceneSyncService keeps a locally edited scene and its remote encrypted
// snapshot convergent. Saves are optimistic: the remote record is fetched
// and merged before every write, and a per-connection version cache skips
// writes that are already known to be redundant.
type SceneSyncService interface {
	// IsSceneSynced reports whether a save for portal can be skipped:
	// either the portal is not joined to a room, or the cached version for
	// its connection equals the current version of elements. It is a fast
	// negative gate, not a correctness guarantee — the cache may be stale
	// if another connection wrote the room in the meantime.
	IsSceneSynced(portal *models.Portal, elements []models.Element) bool

	// SaveScene reconciles elements with the current remote snapshot and
	// writes the merged result back. When the room context is incomplete
	// or the scene is already synced it performs no remote calls and
	// returns ErrSaveNotNeeded. On success it returns the reconciled
	// elements the caller should adopt as its new local state. Any
	// fetch/decrypt/merge/write failure fails the whole save; nothing is
	// partially committed.
	SaveScene(ctx context.Context, portal *models.Portal, elements []models.Element, appState models.AppState) ([]models.Element, error)

	// LoadScene fetches and decrypts the snapshot for roomID. A room that
	// was never saved yields ErrSceneNotFound, which is a state, not a
	// failure. When portal is non-nil the version cache is primed with the
	// loaded elements so the next save can compare against this baseline
	// without a round trip.
	LoadScene(ctx context.Context, roomID, roomKey string, portal *models.Portal) ([]models.Element, error)
}

// AssetTransferService moves content-addressed binary assets between the
// editor and the blob store in batches. Items are independent: each is
// attempted concurrently and failures are reported per item, never as a
// failure of the batch.
type AssetTransferService interface {
	// SaveFiles uploads each asset to prefix/id, overwriting any existing
	// blob. It returns the ids that were stored and the ids that failed.
	SaveFiles(ctx context.Context, prefix string, files []models.FileAsset) (saved, errored []models.FileID)

	// LoadFiles fetches, decompresses and decrypts the requested assets.
	// Duplicate ids are collapsed before dispatch so each id incurs one
	// fetch. Any fetch or decode failure marks that id as errored without
	// affecting the others.
	LoadFiles(ctx context.Context, prefix, decryptionKey string, ids []models.FileID) ([]models.LoadedFileAsset, []models.FileID)
}
