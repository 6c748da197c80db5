// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sketchwell/collabsync/internal/crypto"
	"github.com/sketchwell/collabsync/internal/logger"
	"github.com/sketchwell/collabsync/internal/store"
	"github.com/sketchwell/collabsync/models"
)

// blobCacheSeconds is the public cache lifetime uploads are tagged with.
// Blobs are content-addressed, so a long-lived cache is safe.
const blobCacheSeconds = 31536000 // one year

// assetTransferService is the private implementation of
// [AssetTransferService]. All per-item work is dispatched concurrently and
// joined with a WaitGroup; results are collected under a mutex. No
// throttling is applied here, the store and transport own their
// concurrency limits.
type assetTransferService struct {
	blobs   store.BlobStore
	codec   crypto.BinaryFileCodec
	fetcher *resty.Client
	logger  *logger.Logger
}

// NewAssetTransferService constructs an [AssetTransferService] that
// uploads through blobs and fetches public URLs with fetcher.
func NewAssetTransferService(
	blobs store.BlobStore,
	codec crypto.BinaryFileCodec,
	fetcher *resty.Client,
	log *logger.Logger,
) AssetTransferService {
	if fetcher == nil {
		fetcher = resty.New().SetTimeout(30 * time.Second)
	}
	return &assetTransferService{
		blobs:   blobs,
		codec:   codec,
		fetcher: fetcher,
		logger:  log.WithComponent("asset-transfer"),
	}
}

// SaveFiles implements [AssetTransferService].
func (s *assetTransferService) SaveFiles(ctx context.Context, prefix string, files []models.FileAsset) (saved, errored []models.FileID) {
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, file := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := s.blobs.PutObject(ctx, path.Join(prefix, string(file.ID)), file.Buffer, store.PutOptions{
				ContentType:  models.DefaultMimeType,
				CacheSeconds: blobCacheSeconds,
				Upsert:       true,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Err(err).Str("file_id", string(file.ID)).Msg("file upload failed")
				errored = append(errored, file.ID)
				return
			}
			saved = append(saved, file.ID)
		}()
	}

	wg.Wait()
	return saved, errored
}

// LoadFiles implements [AssetTransferService].
func (s *assetTransferService) LoadFiles(ctx context.Context, prefix, decryptionKey string, ids []models.FileID) ([]models.LoadedFileAsset, []models.FileID) {
	unique := dedupe(ids)

	var mu sync.Mutex
	var wg sync.WaitGroup
	loaded := make([]models.LoadedFileAsset, 0, len(unique))
	var errored []models.FileID

	for _, id := range unique {
		wg.Add(1)
		go func() {
			defer wg.Done()

			asset, err := s.loadOne(ctx, prefix, decryptionKey, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Err(err).Str("file_id", string(id)).Msg("file download failed")
				errored = append(errored, id)
				return
			}
			loaded = append(loaded, asset)
		}()
	}

	wg.Wait()
	return loaded, errored
}

func (s *assetTransferService) loadOne(ctx context.Context, prefix, decryptionKey string, id models.FileID) (models.LoadedFileAsset, error) {
	url := s.blobs.PublicURL(path.Join(prefix, string(id)))

	resp, err := s.fetcher.R().SetContext(ctx).Get(url)
	if err != nil {
		return models.LoadedFileAsset{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode() >= 400 {
		return models.LoadedFileAsset{}, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode())
	}

	payload, meta, err := s.codec.DecodeBinaryFile(decryptionKey, resp.Body())
	if err != nil {
		return models.LoadedFileAsset{}, fmt.Errorf("decode file %s: %w", id, err)
	}

	now := time.Now()
	// Metadata is best-effort: a blob without it still loads.
	created := now
	if meta.Created > 0 {
		created = time.UnixMilli(meta.Created)
	}
	mimeType := meta.MimeType
	if mimeType == "" {
		mimeType = models.DefaultMimeType
	}

	return models.LoadedFileAsset{
		ID:            id,
		MimeType:      mimeType,
		DataURL:       string(payload),
		Created:       created,
		LastRetrieved: now,
	}, nil
}

func dedupe(ids []models.FileID) []models.FileID {
	seen := make(map[models.FileID]struct{}, len(ids))
	out := make([]models.FileID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
