package service

import (
	"testing"

	"github.com/sketchwell/collabsync/internal/reconcile"
	"github.com/sketchwell/collabsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCache_MissForUnknownSocket(t *testing.T) {
	cache := NewVersionCache(reconcile.NewReconciler())

	_, ok := cache.Get("unknown")
	assert.False(t, ok)
}

func TestVersionCache_SetComputesSceneVersion(t *testing.T) {
	cache := NewVersionCache(reconcile.NewReconciler())

	cache.Set("sock-1", []models.Element{
		{ID: "a", Version: 2},
		{ID: "b", Version: 3},
	})

	v, ok := cache.Get("sock-1")
	require.True(t, ok)
	assert.Equal(t, models.SceneVersion(5), v)
}

func TestVersionCache_OverwritePerSocket(t *testing.T) {
	cache := NewVersionCache(reconcile.NewReconciler())

	cache.Set("sock-1", []models.Element{{ID: "a", Version: 1}})
	cache.Set("sock-1", []models.Element{{ID: "a", Version: 4}})
	cache.Set("sock-2", []models.Element{{ID: "a", Version: 1}})

	v1, _ := cache.Get("sock-1")
	v2, _ := cache.Get("sock-2")
	assert.Equal(t, models.SceneVersion(4), v1)
	assert.Equal(t, models.SceneVersion(1), v2)
}

func TestVersionCache_DoesNotMutateElements(t *testing.T) {
	cache := NewVersionCache(reconcile.NewReconciler())

	elements := []models.Element{{ID: "a", Version: 7, Index: "a0"}}
	snapshot := elements[0]
	cache.Set("sock-1", elements)

	assert.Equal(t, snapshot, elements[0])
}
