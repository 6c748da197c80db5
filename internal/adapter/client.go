// SPDX-License-Identifier: Apache-2.0

// Package adapter provides remote implementations of the store
// interfaces, backed by the HTTP API served by cmd/storaged.
//
// [NewHTTPSceneStore] and [NewHTTPBlobStore] satisfy [store.SceneStore]
// and [store.BlobStore] respectively, so the sync services run unchanged
// against a local database or a remote storage server. Transport errors
// are mapped by mapHTTPError to the sentinel values in errors.go; the
// "missing" cases are additionally translated to the store package
// sentinels so that [errors.Is] checks work across the wire.
package adapter

import (
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sketchwell/collabsync/internal/auth"
	"github.com/sketchwell/collabsync/internal/config"
	"github.com/sketchwell/collabsync/internal/logger"
)

// tokenRefreshMargin is how long before expiry a cached bearer token is
// reminted.
const tokenRefreshMargin = time.Minute

// Client is the shared HTTP transport for the storage adapters. When the
// configuration carries a token sign key, every request is authenticated
// with a self-issued HS256 bearer token.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  *logger.Logger

	signKey       string
	tokenIssuer   string
	tokenDuration time.Duration

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient constructs the shared transport for [NewHTTPSceneStore] and
// [NewHTTPBlobStore].
func NewClient(cfg config.ClientConfig, log *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(cfg.RequestTimeout),
		baseURL:       baseURL,
		logger:        log.WithComponent("http-adapter"),
		signKey:       cfg.TokenSignKey,
		tokenIssuer:   "collabsync",
		tokenDuration: time.Hour,
	}
}

// BaseURL returns the root of the storage server API without a trailing
// slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) request() *resty.Request {
	req := c.http.R()
	if c.signKey == "" {
		return req
	}

	token, err := c.bearerToken()
	if err != nil {
		c.logger.Err(err).Msg("mint bearer token")
		return req
	}
	return req.SetHeader("Authorization", "Bearer "+token)
}

func (c *Client) bearerToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenRefreshMargin)) {
		return c.token, nil
	}

	token, err := auth.NewToken(c.tokenIssuer, "storage-client", c.tokenDuration, c.signKey)
	if err != nil {
		return "", err
	}
	c.token = token
	c.tokenExpiry = time.Now().Add(c.tokenDuration)
	return token, nil
}
