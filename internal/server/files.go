package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sketchwell/collabsync/internal/logger"
	"github.com/sketchwell/collabsync/internal/store"
)

// maxBlobSize caps a single uploaded asset at 32 MiB.
const maxBlobSize = 32 << 20

func (h *Handler) putFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	path := chi.URLParam(r, "*")
	if path == "" {
		http.Error(w, "empty object path", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBlobSize+1))
	if err != nil {
		log.Err(err).Str("path", path).Msg("error reading object body")
		http.Error(w, "error reading object body", http.StatusBadRequest)
		return
	}
	if len(data) > maxBlobSize {
		http.Error(w, "object too large", http.StatusRequestEntityTooLarge)
		return
	}

	opts := store.PutOptions{
		ContentType:  r.Header.Get("Content-Type"),
		CacheSeconds: parseMaxAge(r.Header.Get("Cache-Control")),
		Upsert:       r.Header.Get("If-None-Match") != "*",
	}

	if err = h.blobs.PutObject(r.Context(), path, data, opts); err != nil {
		if errors.Is(err, store.ErrObjectExists) {
			http.Error(w, "object exists", http.StatusConflict)
			return
		}
		log.Err(err).Str("path", path).Msg("error storing object")
		http.Error(w, "error storing object", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	path := chi.URLParam(r, "*")

	object, err := h.blobs.GetObject(r.Context(), path)
	if err != nil {
		if errors.Is(err, store.ErrObjectNotFound) {
			http.Error(w, "object not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("path", path).Msg("error loading object")
		http.Error(w, "error loading object", http.StatusInternalServerError)
		return
	}

	if object.ContentType != "" {
		w.Header().Set("Content-Type", object.ContentType)
	}
	if object.CacheSeconds > 0 {
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(object.CacheSeconds))
	}
	if _, err = w.Write(object.Data); err != nil {
		log.Err(err).Str("path", path).Msg("error writing object response")
	}
}

func parseMaxAge(cacheControl string) int {
	for _, directive := range strings.Split(cacheControl, ",") {
		directive = strings.TrimSpace(directive)
		if value, ok := strings.CutPrefix(directive, "max-age="); ok {
			seconds, err := strconv.Atoi(value)
			if err != nil {
				return 0
			}
			return seconds
		}
	}
	return 0
}
