package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sketchwell/collabsync/internal/crypto"
	"github.com/sketchwell/collabsync/internal/logger"
	"github.com/sketchwell/collabsync/internal/mock"
	"github.com/sketchwell/collabsync/internal/store"
	"github.com/sketchwell/collabsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// blobServer serves a memory blob store over httptest and counts fetches
// per path.
type blobServer struct {
	store store.BlobStore

	mu      sync.Mutex
	fetches map[string]int
}

func newBlobServer(t *testing.T) (*blobServer, store.BlobStore) {
	t.Helper()

	bs := &blobServer{fetches: make(map[string]int)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path[1:] // strip leading slash

		bs.mu.Lock()
		bs.fetches[path]++
		bs.mu.Unlock()

		object, err := bs.store.GetObject(r.Context(), path)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", object.ContentType)
		_, _ = w.Write(object.Data)
	}))
	t.Cleanup(srv.Close)

	bs.store = store.NewMemoryBlobStore(srv.URL)
	return bs, bs.store
}

func (b *blobServer) fetchCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fetches[path]
}

func newTransferSvc(blobs store.BlobStore) AssetTransferService {
	codec := crypto.NewBinaryFileCodec(crypto.NewSceneCipher())
	return NewAssetTransferService(blobs, codec, nil, logger.Nop())
}

// ── SaveFiles ────────────────────────────────────────────────────────────────

func TestSaveFiles_BatchIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blobs := mock.NewMockBlobStore(ctrl)
	svc := NewAssetTransferService(blobs, crypto.NewBinaryFileCodec(crypto.NewSceneCipher()), nil, logger.Nop())

	blobs.EXPECT().PutObject(gomock.Any(), "rooms/r1/ok1", gomock.Any(), gomock.Any()).Return(nil)
	blobs.EXPECT().PutObject(gomock.Any(), "rooms/r1/fail2", gomock.Any(), gomock.Any()).
		Return(errors.New("quota exceeded"))
	blobs.EXPECT().PutObject(gomock.Any(), "rooms/r1/ok3", gomock.Any(), gomock.Any()).Return(nil)

	saved, errored := svc.SaveFiles(context.Background(), "rooms/r1", []models.FileAsset{
		{ID: "ok1", Buffer: []byte("1")},
		{ID: "fail2", Buffer: []byte("2")},
		{ID: "ok3", Buffer: []byte("3")},
	})

	assert.ElementsMatch(t, []models.FileID{"ok1", "ok3"}, saved)
	assert.Equal(t, []models.FileID{"fail2"}, errored)
}

func TestSaveFiles_UploadsAllowOverwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blobs := mock.NewMockBlobStore(ctrl)
	svc := NewAssetTransferService(blobs, crypto.NewBinaryFileCodec(crypto.NewSceneCipher()), nil, logger.Nop())

	blobs.EXPECT().PutObject(gomock.Any(), "files/f", []byte("payload"), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ []byte, opts store.PutOptions) error {
			assert.True(t, opts.Upsert)
			assert.Positive(t, opts.CacheSeconds)
			return nil
		})

	saved, errored := svc.SaveFiles(context.Background(), "files", []models.FileAsset{
		{ID: "f", Buffer: []byte("payload")},
	})
	assert.Equal(t, []models.FileID{"f"}, saved)
	assert.Empty(t, errored)
}

func TestSaveFiles_EmptyBatch(t *testing.T) {
	svc := newTransferSvc(store.NewMemoryBlobStore("http://unused"))

	saved, errored := svc.SaveFiles(context.Background(), "rooms/r1", nil)
	assert.Empty(t, saved)
	assert.Empty(t, errored)
}

// ── LoadFiles ────────────────────────────────────────────────────────────────

func encodeAsset(t *testing.T, key string, payload []byte, meta models.BinaryFileMetadata) []byte {
	t.Helper()
	blob, err := crypto.NewBinaryFileCodec(crypto.NewSceneCipher()).EncodeBinaryFile(key, payload, meta)
	require.NoError(t, err)
	return blob
}

func TestLoadFiles_RoundTrip(t *testing.T) {
	_, blobs := newBlobServer(t)
	svc := newTransferSvc(blobs)
	ctx := context.Background()
	key := mustRoomKey()

	created := time.Now().Add(-time.Hour).Truncate(time.Millisecond)
	blob := encodeAsset(t, key, []byte("data:image/png;base64,AAAA"), models.BinaryFileMetadata{
		MimeType: "image/png",
		Created:  created.UnixMilli(),
	})

	saved, errored := svc.SaveFiles(ctx, "rooms/r1", []models.FileAsset{{ID: "x", Buffer: blob}})
	require.Equal(t, []models.FileID{"x"}, saved)
	require.Empty(t, errored)

	loaded, loadErrored := svc.LoadFiles(ctx, "rooms/r1", key, []models.FileID{"x"})
	require.Empty(t, loadErrored)
	require.Len(t, loaded, 1)

	asset := loaded[0]
	assert.Equal(t, models.FileID("x"), asset.ID)
	assert.Equal(t, "image/png", asset.MimeType)
	assert.Equal(t, "data:image/png;base64,AAAA", asset.DataURL)
	assert.Equal(t, created.UnixMilli(), asset.Created.UnixMilli())
	assert.WithinDuration(t, time.Now(), asset.LastRetrieved, time.Minute)
}

func TestLoadFiles_DeduplicatesRequestedIDs(t *testing.T) {
	srv, blobs := newBlobServer(t)
	svc := newTransferSvc(blobs)
	ctx := context.Background()
	key := mustRoomKey()

	for _, id := range []string{"x", "y"} {
		blob := encodeAsset(t, key, []byte(id), models.BinaryFileMetadata{})
		require.NoError(t, blobs.PutObject(ctx, "rooms/r1/"+id, blob, store.PutOptions{Upsert: true}))
	}

	loaded, errored := svc.LoadFiles(ctx, "rooms/r1", key, []models.FileID{"x", "x", "y"})
	assert.Empty(t, errored)
	assert.Len(t, loaded, 2)

	assert.Equal(t, 1, srv.fetchCount("rooms/r1/x"))
	assert.Equal(t, 1, srv.fetchCount("rooms/r1/y"))
}

func TestLoadFiles_PartialFailure(t *testing.T) {
	_, blobs := newBlobServer(t)
	svc := newTransferSvc(blobs)
	ctx := context.Background()
	key := mustRoomKey()

	blob := encodeAsset(t, key, []byte("present"), models.BinaryFileMetadata{})
	require.NoError(t, blobs.PutObject(ctx, "rooms/r1/x", blob, store.PutOptions{Upsert: true}))

	// y is never uploaded: the fetch returns 404.
	loaded, errored := svc.LoadFiles(ctx, "rooms/r1", key, []models.FileID{"x", "y"})

	require.Len(t, loaded, 1)
	assert.Equal(t, models.FileID("x"), loaded[0].ID)
	assert.Equal(t, []models.FileID{"y"}, errored)
}

func TestLoadFiles_DecodeFailureIsolated(t *testing.T) {
	_, blobs := newBlobServer(t)
	svc := newTransferSvc(blobs)
	ctx := context.Background()
	key := mustRoomKey()

	good := encodeAsset(t, key, []byte("good"), models.BinaryFileMetadata{})
	require.NoError(t, blobs.PutObject(ctx, "rooms/r1/good", good, store.PutOptions{Upsert: true}))
	// Garbage that cannot be decrypted.
	require.NoError(t, blobs.PutObject(ctx, "rooms/r1/bad", []byte("not a valid container"), store.PutOptions{Upsert: true}))

	loaded, errored := svc.LoadFiles(ctx, "rooms/r1", key, []models.FileID{"good", "bad"})

	require.Len(t, loaded, 1)
	assert.Equal(t, models.FileID("good"), loaded[0].ID)
	assert.Equal(t, []models.FileID{"bad"}, errored)
}

func TestLoadFiles_MissingMetadataFallsBack(t *testing.T) {
	_, blobs := newBlobServer(t)
	svc := newTransferSvc(blobs)
	ctx := context.Background()
	key := mustRoomKey()

	blob := encodeAsset(t, key, []byte("payload"), models.BinaryFileMetadata{})
	require.NoError(t, blobs.PutObject(ctx, "rooms/r1/x", blob, store.PutOptions{Upsert: true}))

	loaded, errored := svc.LoadFiles(ctx, "rooms/r1", key, []models.FileID{"x"})
	require.Empty(t, errored)
	require.Len(t, loaded, 1)

	assert.Equal(t, models.DefaultMimeType, loaded[0].MimeType)
	assert.WithinDuration(t, time.Now(), loaded[0].Created, time.Minute)
}
