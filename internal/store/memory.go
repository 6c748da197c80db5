package store

import (
	"context"
	"strings"
	"sync"

	"github.com/sketchwell/collabsync/models"
)

// memorySceneStore is an in-process SceneStore used in tests and for
// single-binary deployments without a database.
type memorySceneStore struct {
	mu     sync.RWMutex
	scenes map[string]models.SceneRecord
}

// NewMemorySceneStore constructs an empty in-memory [SceneStore].
func NewMemorySceneStore() SceneStore {
	return &memorySceneStore{scenes: make(map[string]models.SceneRecord)}
}

func (s *memorySceneStore) GetScene(_ context.Context, roomID string) (models.SceneRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.scenes[roomID]
	if !ok {
		return models.SceneRecord{}, ErrSceneNotFound
	}
	return record, nil
}

func (s *memorySceneStore) UpsertScene(_ context.Context, record models.SceneRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenes[record.RoomID] = record
	return nil
}

// memoryBlobStore is an in-process BlobStore. PublicURL joins the
// configured base URL with the object path, so tests can point it at an
// httptest server.
type memoryBlobStore struct {
	baseURL string

	mu      sync.RWMutex
	objects map[string]Object
}

// NewMemoryBlobStore constructs an empty in-memory [BlobStore] whose
// public URLs are rooted at baseURL.
func NewMemoryBlobStore(baseURL string) BlobStore {
	return &memoryBlobStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string]Object),
	}
}

func (s *memoryBlobStore) PutObject(_ context.Context, path string, data []byte, opts PutOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[path]; ok && !opts.Upsert {
		return ErrObjectExists
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[path] = Object{
		Data:         buf,
		ContentType:  opts.ContentType,
		CacheSeconds: opts.CacheSeconds,
	}
	return nil
}

func (s *memoryBlobStore) GetObject(_ context.Context, path string) (Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	object, ok := s.objects[path]
	if !ok {
		return Object{}, ErrObjectNotFound
	}
	return object, nil
}

func (s *memoryBlobStore) PublicURL(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}
