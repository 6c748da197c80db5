// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sketchwell/collabsync/internal/config"
	"github.com/sketchwell/collabsync/internal/logger"
	"github.com/sketchwell/collabsync/internal/store"
	"github.com/sketchwell/collabsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(auth config.Auth) *Handler {
	return NewHandler(store.NewMemorySceneStore(), store.NewMemoryBlobStore("http://test"), auth, logger.Nop())
}

func newTestServer(t *testing.T, auth config.Auth) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newTestHandler(auth).Init())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestScenes_PutThenGet(t *testing.T) {
	srv := newTestServer(t, config.Auth{})

	record := models.SceneRecord{
		RoomID:       "room-1",
		SceneVersion: 5,
		Ciphertext:   []byte("ciphertext"),
		IV:           []byte("iv-bytes-12b"),
	}

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/v2/scenes/room-1", record)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v2/scenes/room-1", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.SceneRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, record, got)
}

func TestScenes_GetMissing(t *testing.T) {
	srv := newTestServer(t, config.Auth{})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v2/scenes/unknown", nil)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestScenes_PutInvalidJSON(t *testing.T) {
	srv := newTestServer(t, config.Auth{})

	resp, err := http.Post(srv.URL+"/api/v2/scenes/room-1", "application/json", strings.NewReader("{broken"))
	require.NoError(t, err)
	_ = resp.Body.Close()
	// POST is not routed at all
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/v2/scenes/room-1", strings.NewReader("{broken"))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScenes_PutRoomIDMismatch(t *testing.T) {
	srv := newTestServer(t, config.Auth{})

	record := models.SceneRecord{RoomID: "other-room", Ciphertext: []byte("c"), IV: []byte("i")}
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/v2/scenes/room-1", record)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScenes_PutEmptyCiphertext(t *testing.T) {
	srv := newTestServer(t, config.Auth{})

	record := models.SceneRecord{RoomID: "room-1", SceneVersion: 1}
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/v2/scenes/room-1", record)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScenes_PutFillsRoomIDFromPath(t *testing.T) {
	srv := newTestServer(t, config.Auth{})

	record := models.SceneRecord{Ciphertext: []byte("c"), IV: []byte("i")}
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/v2/scenes/room-1", record)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v2/scenes/room-1", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.SceneRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "room-1", got.RoomID)
}
