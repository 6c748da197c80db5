package crypto

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sketchwell/collabsync/models"
)

// binaryFileCodec is the private implementation of [BinaryFileCodec].
//
// Container layout before compression:
//
//	uint32 (big endian) — length of the metadata JSON
//	metadata JSON       — models.BinaryFileMetadata, may be empty
//	payload             — raw asset bytes
//
// The framed buffer is gzip-compressed, then sealed with the room key.
// The sealed blob is iv ‖ ciphertext: unlike scene records, blobs are a
// single opaque object, so the IV is prepended instead of stored apart.
type binaryFileCodec struct {
	cipher SceneCipher
}

// NewBinaryFileCodec constructs a [BinaryFileCodec] on top of the given
// scene cipher so assets and scenes share one key format.
func NewBinaryFileCodec(cipher SceneCipher) BinaryFileCodec {
	return &binaryFileCodec{cipher: cipher}
}

// EncodeBinaryFile implements [BinaryFileCodec].
func (c *binaryFileCodec) EncodeBinaryFile(key string, payload []byte, meta models.BinaryFileMetadata) ([]byte, error) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal file metadata: %w", err)
	}

	framed := make([]byte, 0, 4+len(metaJSON)+len(payload))
	framed = binary.BigEndian.AppendUint32(framed, uint32(len(metaJSON)))
	framed = append(framed, metaJSON...)
	framed = append(framed, payload...)

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(framed); err != nil {
		return nil, fmt.Errorf("compress file: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress file: %w", err)
	}

	ciphertext, iv, err := c.cipher.Encrypt(key, compressed.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encrypt file: %w", err)
	}

	return append(iv, ciphertext...), nil
}

// DecodeBinaryFile implements [BinaryFileCodec]. A zero metadata length is
// valid and yields a zero-value BinaryFileMetadata.
func (c *binaryFileCodec) DecodeBinaryFile(key string, blob []byte) ([]byte, models.BinaryFileMetadata, error) {
	var meta models.BinaryFileMetadata

	// The IV is the fixed-size GCM nonce prepended by EncodeBinaryFile.
	const ivLen = 12
	if len(blob) < ivLen {
		return nil, meta, fmt.Errorf("blob too short")
	}
	iv, ciphertext := blob[:ivLen], blob[ivLen:]

	compressed, err := c.cipher.Decrypt(iv, ciphertext, key)
	if err != nil {
		return nil, meta, fmt.Errorf("decrypt file: %w", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, meta, fmt.Errorf("decompress file: %w", err)
	}
	framed, err := io.ReadAll(zr)
	if err != nil {
		return nil, meta, fmt.Errorf("decompress file: %w", err)
	}
	if err := zr.Close(); err != nil {
		return nil, meta, fmt.Errorf("decompress file: %w", err)
	}

	if len(framed) < 4 {
		return nil, meta, fmt.Errorf("malformed file container")
	}
	metaLen := binary.BigEndian.Uint32(framed[:4])
	if int(metaLen) > len(framed)-4 {
		return nil, meta, fmt.Errorf("malformed file container: metadata length %d exceeds body", metaLen)
	}

	metaJSON := framed[4 : 4+metaLen]
	payload := framed[4+metaLen:]

	if metaLen > 0 {
		if err := json.Unmarshal(metaJSON, &meta); err != nil {
			return nil, models.BinaryFileMetadata{}, fmt.Errorf("unmarshal file metadata: %w", err)
		}
	}

	return payload, meta, nil
}
