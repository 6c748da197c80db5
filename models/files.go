package models

import "time"

// FileID identifies a binary asset by content address.
type FileID string

// FileAsset is a binary asset queued for upload: the encoded (compressed
// and encrypted) payload plus its content id.
type FileAsset struct {
	ID     FileID
	Buffer []byte
}

// BinaryFileMetadata travels inside the encoded blob alongside the
// payload. Created is a unix-millisecond timestamp.
type BinaryFileMetadata struct {
	MimeType string `json:"mimeType,omitempty"`
	Created  int64  `json:"created,omitempty"`
}

// LoadedFileAsset is a downloaded and decoded binary asset ready for the
// editor.
type LoadedFileAsset struct {
	ID            FileID
	MimeType      string
	DataURL       string
	Created       time.Time
	LastRetrieved time.Time
}

// DefaultMimeType is assumed when the encoded blob carries no metadata.
const DefaultMimeType = "application/octet-stream"
