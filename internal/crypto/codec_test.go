package crypto

import (
	"bytes"
	"testing"

	"github.com/sketchwell/collabsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryFileCodec_RoundTrip(t *testing.T) {
	codec := NewBinaryFileCodec(NewSceneCipher())
	key, err := GenerateRoomKey()
	require.NoError(t, err)

	payload := bytes.Repeat([]byte("data:image/png;base64,AAAA"), 100)
	meta := models.BinaryFileMetadata{MimeType: "image/png", Created: 1700000000000}

	blob, err := codec.EncodeBinaryFile(key, payload, meta)
	require.NoError(t, err)
	// Compression should win on the repetitive payload.
	assert.Less(t, len(blob), len(payload))

	gotPayload, gotMeta, err := codec.DecodeBinaryFile(key, blob)
	require.NoError(t, err)
	assert.Equal(t, payload, gotPayload)
	assert.Equal(t, meta, gotMeta)
}

func TestBinaryFileCodec_EmptyMetadata(t *testing.T) {
	codec := NewBinaryFileCodec(NewSceneCipher())
	key, err := GenerateRoomKey()
	require.NoError(t, err)

	blob, err := codec.EncodeBinaryFile(key, []byte("payload"), models.BinaryFileMetadata{})
	require.NoError(t, err)

	gotPayload, gotMeta, err := codec.DecodeBinaryFile(key, blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), gotPayload)
	assert.Zero(t, gotMeta.Created)
	assert.Empty(t, gotMeta.MimeType)
}

func TestBinaryFileCodec_WrongKeyFails(t *testing.T) {
	codec := NewBinaryFileCodec(NewSceneCipher())
	key, err := GenerateRoomKey()
	require.NoError(t, err)
	otherKey, err := GenerateRoomKey()
	require.NoError(t, err)

	blob, err := codec.EncodeBinaryFile(key, []byte("payload"), models.BinaryFileMetadata{})
	require.NoError(t, err)

	_, _, err = codec.DecodeBinaryFile(otherKey, blob)
	assert.Error(t, err)
}

func TestBinaryFileCodec_TruncatedBlobFails(t *testing.T) {
	codec := NewBinaryFileCodec(NewSceneCipher())
	key, err := GenerateRoomKey()
	require.NoError(t, err)

	_, _, err = codec.DecodeBinaryFile(key, []byte{1, 2, 3})
	assert.Error(t, err)
}
