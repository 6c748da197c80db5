// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// roomKeyLen is the raw room key length in bytes (AES-128).
const roomKeyLen = 16

// sceneCipher is the private implementation of [SceneCipher].
type sceneCipher struct{}

// NewSceneCipher constructs an AES-GCM [SceneCipher]. Room keys are
// 128-bit secrets encoded with unpadded base64url, matching the format in
// which room keys are embedded in invitation links.
func NewSceneCipher() SceneCipher {
	return &sceneCipher{}
}

// Encrypt implements [SceneCipher]. It decodes the base64url room key,
// generates a random 12-byte IV and seals plaintext with AES-GCM. The IV
// is returned separately because the scene record persists it as its own
// field next to the ciphertext.
func (c *sceneCipher) Encrypt(key string, plaintext []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, fmt.Errorf("generate iv: %w", err)
	}

	return gcm.Seal(nil, iv, plaintext, nil), iv, nil
}

// Decrypt implements [SceneCipher]. An error here almost always means the
// caller holds a different room key than the one the record was written
// with, or the record was corrupted in transit.
func (c *sceneCipher) Decrypt(iv, ciphertext []byte, key string) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("bad iv length %d", len(iv))
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt scene: %w", err)
	}
	return plaintext, nil
}

func newGCM(key string) (cipher.AEAD, error) {
	raw, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("decode room key: %w", err)
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// GenerateRoomKey returns a fresh random room key: 16 bytes from the OS
// CSPRNG, encoded with unpadded base64url so it can be embedded in a room
// invitation link fragment.
func GenerateRoomKey() (string, error) {
	raw := make([]byte, roomKeyLen)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DeriveRoomKey derives a room key from a passphrase and salt using
// Argon2id with the OWASP-recommended parameters (1 iteration, 64 MiB,
// 4 threads). Used for passphrase-protected rooms where the key is not
// random but must still be a valid AES-128 secret.
func DeriveRoomKey(passphrase string, salt []byte) string {
	raw := argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, roomKeyLen)
	return base64.RawURLEncoding.EncodeToString(raw)
}
