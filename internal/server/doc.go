// SPDX-License-Identifier: Apache-2.0

// Package server implements the HTTP transport of the storage backend.
//
// It exposes two resource families under /api/v2: scene records (JSON,
// one encrypted snapshot per room) and binary asset blobs (raw bytes
// addressed by path). Tracing, request logging, and optional
// bearer-token authentication are handled as middleware before requests
// reach the store layer. Blob downloads are served without credentials
// so that public URLs remain fetchable by any room participant.
package server
