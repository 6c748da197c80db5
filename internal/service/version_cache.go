package service

import (
	"sync"

	"github.com/sketchwell/collabsync/internal/reconcile"
	"github.com/sketchwell/collabsync/models"
)

// VersionCache remembers the scene version last synced per connection so
// redundant saves can be skipped. It is keyed by the stable socket id
// rather than the connection object, so entries simply become unreachable
// when a connection closes. Entries are only ever created or overwritten;
// staleness is tolerated (another connection's write does not invalidate
// them) because the cache is an optimization, not a correctness guarantee.
type VersionCache struct {
	reconciler reconcile.Reconciler

	mu       sync.RWMutex
	versions map[string]models.SceneVersion
}

// NewVersionCache constructs an empty [VersionCache] that computes
// versions with reconciler.
func NewVersionCache(reconciler reconcile.Reconciler) *VersionCache {
	return &VersionCache{
		reconciler: reconciler,
		versions:   make(map[string]models.SceneVersion),
	}
}

// Get returns the last-synced version for socketID.
func (c *VersionCache) Get(socketID string) (models.SceneVersion, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.versions[socketID]
	return v, ok
}

// Set records the version of elements as last-synced for socketID.
// elements are only read, never mutated.
func (c *VersionCache) Set(socketID string, elements []models.Element) {
	v := c.reconciler.SceneVersion(elements)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[socketID] = v
}
