package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/sketchwell/collabsync/internal/auth"
	"github.com/sketchwell/collabsync/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_OpenWithoutSignKey(t *testing.T) {
	srv := newTestServer(t, config.Auth{})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v2/scenes/room-1", nil)
	_ = resp.Body.Close()

	// not 401: the request reached the handler
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAuth_RejectsMissingToken(t *testing.T) {
	srv := newTestServer(t, config.Auth{
		TokenSignKey: "secret",
		TokenIssuer:  "collabsync",
	})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v2/scenes/room-1", nil)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_AcceptsValidToken(t *testing.T) {
	srv := newTestServer(t, config.Auth{
		TokenSignKey: "secret",
		TokenIssuer:  "collabsync",
	})

	token, err := auth.NewToken("collabsync", "sock-1", time.Hour, "secret")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v2/scenes/room-1", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAuth_RejectsWrongKey(t *testing.T) {
	srv := newTestServer(t, config.Auth{
		TokenSignKey: "secret",
		TokenIssuer:  "collabsync",
	})

	token, err := auth.NewToken("collabsync", "sock-1", time.Hour, "other-secret")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v2/scenes/room-1", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_BlobDownloadsStayOpen(t *testing.T) {
	srv := newTestServer(t, config.Auth{
		TokenSignKey: "secret",
		TokenIssuer:  "collabsync",
	})

	resp, err := http.Get(srv.URL + "/api/v2/files/rooms/r1/x")
	require.NoError(t, err)
	_ = resp.Body.Close()

	// 404, not 401: downloads skip the auth middleware
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
