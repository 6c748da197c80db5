package models

// SceneRecord is the encrypted snapshot of a room's scene as persisted
// remotely. SceneVersion describes the plaintext elements Ciphertext
// decrypts to. Each upsert fully replaces the previous record for the
// room; there is no delta log.
type SceneRecord struct {
	RoomID       string       `json:"id"`
	SceneVersion SceneVersion `json:"scene_version"`
	Ciphertext   []byte       `json:"ciphertext"`
	IV           []byte       `json:"iv"`
}

// Portal is the connection context of one editor joined to a collaboration
// room. RoomKey is the symmetric room secret shared among participants
// out-of-band; it never leaves the client.
type Portal struct {
	SocketID string
	RoomID   string
	RoomKey  string
	Open     bool
}

// InRoom reports whether the portal is joined to a synchronized room,
// i.e. it has an open socket, a room id and a room key.
func (p *Portal) InRoom() bool {
	return p != nil && p.Open && p.SocketID != "" && p.RoomID != "" && p.RoomKey != ""
}
