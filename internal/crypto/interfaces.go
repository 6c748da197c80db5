package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/sketchwell/collabsync/models"

// SceneCipher encrypts and decrypts serialized scene payloads with a room
// key. The room key is an opaque base64url string shared among a room's
// participants out-of-band; it is used only locally and never persisted
// remotely. The IV travels with the ciphertext in the scene record, the
// key does not.
type SceneCipher interface {
	// Encrypt encrypts plaintext with the room key and returns the
	// ciphertext together with the freshly generated IV.
	Encrypt(key string, plaintext []byte) (ciphertext, iv []byte, err error)

	// Decrypt reverses Encrypt. It fails if the key is wrong or the
	// ciphertext was tampered with (authentication-tag mismatch).
	Decrypt(iv, ciphertext []byte, key string) ([]byte, error)
}

// BinaryFileCodec packs binary asset payloads into the self-describing
// container stored in the blob store: metadata and payload are framed,
// compressed, then encrypted with the room key.
type BinaryFileCodec interface {
	// EncodeBinaryFile frames payload with meta, compresses and encrypts
	// the result.
	EncodeBinaryFile(key string, payload []byte, meta models.BinaryFileMetadata) ([]byte, error)

	// DecodeBinaryFile reverses EncodeBinaryFile. A container without
	// metadata decodes to a zero-value BinaryFileMetadata, not an error.
	DecodeBinaryFile(key string, blob []byte) ([]byte, models.BinaryFileMetadata, error)
}
