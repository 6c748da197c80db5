package server

import (
	"github.com/sketchwell/collabsync/internal/config"
	"github.com/sketchwell/collabsync/internal/logger"
	"github.com/sketchwell/collabsync/internal/store"
)

// Handler serves the storage API: encrypted scene snapshots and binary
// asset blobs. It never sees plaintext; decryption happens on clients.
type Handler struct {
	scenes store.SceneStore
	blobs  store.BlobStore
	auth   config.Auth

	logger *logger.Logger
}

func NewHandler(scenes store.SceneStore, blobs store.BlobStore, auth config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		scenes: scenes,
		blobs:  blobs,
		auth:   auth,
		logger: logger,
	}
}
