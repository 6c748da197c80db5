package service

import (
	"errors"

	"github.com/sketchwell/collabsync/internal/store"
)

var (
	// ErrSaveNotNeeded is returned by SaveScene when nothing was written:
	// the portal is not joined to a room, the room context is incomplete,
	// or the scene is already synced for this connection. It signals a
	// no-op, not a failure.
	ErrSaveNotNeeded = errors.New("scene save not needed")

	// ErrSceneNotFound is returned by LoadScene for a room that has never
	// been saved. Distinct from an empty scene.
	ErrSceneNotFound = store.ErrSceneNotFound
)
