package store

import "errors"

var (
	// ErrSceneNotFound is returned when no record exists for a room. It is
	// a sentinel, not a failure: a room that has never been saved is a
	// normal state distinct from an empty scene.
	ErrSceneNotFound = errors.New("scene not found")

	// ErrObjectNotFound is returned when no blob exists at the requested
	// path.
	ErrObjectNotFound = errors.New("object not found")

	// ErrObjectExists is returned by PutObject when the path is occupied
	// and overwrite was not requested.
	ErrObjectExists = errors.New("object already exists")
)
