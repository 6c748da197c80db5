package models

import "encoding/json"

// SceneVersion is a monotonically non-decreasing summary of an element
// set's content. It is an ordering scalar, not a vector clock: two
// divergent histories may collide on the same value, which is why a save
// against an existing record always goes through reconciliation.
type SceneVersion int64

const (
	// FileStatusPending marks an image element whose binary payload has not
	// been persisted yet. Pending elements are excluded from sync.
	FileStatusPending = "pending"
	// FileStatusSaved marks an image element whose binary payload is stored.
	FileStatusSaved = "saved"
)

// Element is a single drawable unit of a scene. The sync core only reads
// the identity, versioning and ordering fields; geometry and styling live
// in Data and pass through untouched.
type Element struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Version      int64           `json:"version"`
	VersionNonce int64           `json:"versionNonce"`
	IsDeleted    bool            `json:"isDeleted"`
	Index        string          `json:"index,omitempty"`
	Status       string          `json:"status,omitempty"`
	FileID       string          `json:"fileId,omitempty"`
	Updated      int64           `json:"updated,omitempty"`
	Data         json.RawMessage `json:"data,omitempty"`
}

// AppState carries the slice of editor state the reconciler consults.
// Only the identity of the element currently being edited matters to the
// merge; everything else stays in the editing application.
type AppState struct {
	EditingElementID string `json:"editing_element_id,omitempty"`
}
