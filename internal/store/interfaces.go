package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/sketchwell/collabsync/models"
)

// SceneStore is the durable key-value store for encrypted scene snapshots,
// keyed by room id. Implementations: SQL repositories (Postgres/SQLite),
// the in-memory store, and the HTTP adapter in internal/adapter.
type SceneStore interface {
	// GetScene returns the current record for roomID, or ErrSceneNotFound
	// when the room has never been written.
	GetScene(ctx context.Context, roomID string) (models.SceneRecord, error)

	// UpsertScene fully replaces the record for record.RoomID.
	UpsertScene(ctx context.Context, record models.SceneRecord) error
}

// PutOptions control how a blob is stored.
type PutOptions struct {
	ContentType  string
	CacheSeconds int
	// Upsert allows overwriting an existing blob at the same path. When
	// false a conflicting put fails with ErrObjectExists.
	Upsert bool
}

// Object is a stored blob together with its serving attributes.
type Object struct {
	Data         []byte
	ContentType  string
	CacheSeconds int
}

// BlobStore is the content-addressed object store for binary assets.
// Objects are immutable: a re-upload with Upsert replaces the blob
// wholesale, never patches it.
type BlobStore interface {
	// PutObject stores data at path.
	PutObject(ctx context.Context, path string, data []byte, opts PutOptions) error

	// GetObject returns the blob at path, or ErrObjectNotFound.
	GetObject(ctx context.Context, path string) (Object, error)

	// PublicURL resolves the URL from which the blob at path can be
	// fetched without further authentication.
	PublicURL(path string) string
}
