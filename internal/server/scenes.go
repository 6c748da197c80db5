package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sketchwell/collabsync/internal/logger"
	"github.com/sketchwell/collabsync/internal/store"
	"github.com/sketchwell/collabsync/models"
)

func (h *Handler) getScene(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	roomID := chi.URLParam(r, "roomID")

	record, err := h.scenes.GetScene(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, store.ErrSceneNotFound) {
			http.Error(w, "scene not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("room_id", roomID).Msg("error loading scene")
		http.Error(w, "error loading scene", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(record); err != nil {
		log.Err(err).Str("room_id", roomID).Msg("error encoding scene response")
	}
}

func (h *Handler) putScene(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	roomID := chi.URLParam(r, "roomID")

	var record models.SceneRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("invalid scene JSON")
		http.Error(w, "invalid scene JSON", http.StatusBadRequest)
		return
	}
	// The path owns the room id; a mismatching body is rejected rather
	// than silently rerouted.
	if record.RoomID == "" {
		record.RoomID = roomID
	}
	if record.RoomID != roomID {
		http.Error(w, "room id mismatch", http.StatusBadRequest)
		return
	}
	if len(record.Ciphertext) == 0 || len(record.IV) == 0 {
		http.Error(w, "empty ciphertext or iv", http.StatusBadRequest)
		return
	}

	if err := h.scenes.UpsertScene(r.Context(), record); err != nil {
		log.Err(err).Str("room_id", roomID).Msg("error storing scene")
		http.Error(w, "error storing scene", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
