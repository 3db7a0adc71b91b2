package filestorage

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimt/campushub/internal/pkg/apperrors"
)

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/png;base64,aGVsbG8="))
	assert.False(t, IsDataURI("https://example.com/uploads/avatars/a.png"))
	assert.False(t, IsDataURI(""))
	assert.False(t, IsDataURI("/uploads/avatars/a.png"))
}

func TestDecodeDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("hello"))

	data, mimeType, err := decodeDataURI("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, "image/png", mimeType)
}

func TestDecodeDataURIErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "missing prefix", input: "image/png;base64,aGVsbG8="},
		{name: "missing comma", input: "data:image/png;base64"},
		{name: "unsupported encoding", input: "data:image/png;base32,aGVsbG8="},
		{name: "invalid base64", input: "data:image/png;base64,not_base64!!!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := decodeDataURI(tc.input)
			assert.ErrorIs(t, err, apperrors.ErrInvalidDataURI)
		})
	}
}

func TestExtForMIME(t *testing.T) {
	assert.Equal(t, ".jpg", extForMIME("image/jpeg"))
	assert.Equal(t, ".png", extForMIME("image/png"))
	assert.Equal(t, ".webp", extForMIME("image/webp"))
	assert.Equal(t, ".pdf", extForMIME("application/pdf"))
	assert.Equal(t, "", extForMIME("application/x-unknown"))
}
