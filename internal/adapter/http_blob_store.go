package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sketchwell/collabsync/internal/store"
)

type httpBlobStore struct {
	client *Client
}

// NewHTTPBlobStore returns a [store.BlobStore] that stores binary assets
// through the storage server API. Create-only puts are expressed with
// "If-None-Match: *"; the server answers 409 when the blob already
// exists.
func NewHTTPBlobStore(client *Client) store.BlobStore {
	return &httpBlobStore{client: client}
}

func (h *httpBlobStore) PutObject(ctx context.Context, path string, data []byte, opts store.PutOptions) error {
	req := h.client.request().
		SetContext(ctx).
		SetHeader("Content-Type", opts.ContentType).
		SetBody(data)
	if opts.CacheSeconds > 0 {
		req.SetHeader("Cache-Control", "public, max-age="+strconv.Itoa(opts.CacheSeconds))
	}
	if !opts.Upsert {
		req.SetHeader("If-None-Match", "*")
	}

	resp, err := req.Put("/api/v2/files/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return fmt.Errorf("put object request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrConflict) {
			return store.ErrObjectExists
		}
		return err
	}
	return nil
}

func (h *httpBlobStore) GetObject(ctx context.Context, path string) (store.Object, error) {
	resp, err := h.client.request().
		SetContext(ctx).
		Get("/api/v2/files/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return store.Object{}, fmt.Errorf("get object request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return store.Object{}, store.ErrObjectNotFound
		}
		return store.Object{}, err
	}

	return store.Object{
		Data:         resp.Body(),
		ContentType:  resp.Header().Get("Content-Type"),
		CacheSeconds: parseMaxAge(resp.Header().Get("Cache-Control")),
	}, nil
}

func (h *httpBlobStore) PublicURL(path string) string {
	return h.client.BaseURL() + "/api/v2/files/" + strings.TrimLeft(path, "/")
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
