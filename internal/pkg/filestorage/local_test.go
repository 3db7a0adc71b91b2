package filestorage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()

	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return storage
}

func pngDataURI(content string) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(content))
}

func TestSaveDataURIStoresObject(t *testing.T) {
	storage := newTestStorage(t)

	ref, err := storage.SaveDataURI(pngDataURI("fake png bytes"), "avatars")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "http://localhost:8080/uploads/avatars/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	// The object must exist on disk under the folder
	name := ref[strings.LastIndex(ref, "/")+1:]
	data, err := os.ReadFile(filepath.Join(storage.basePath, "avatars", name))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestSaveDataURIPassesThroughDurableReferences(t *testing.T) {
	storage := newTestStorage(t)

	ref, err := storage.SaveDataURI("http://localhost:8080/uploads/avatars/existing.png", "avatars")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/avatars/existing.png", ref)
}

func TestSaveDataURIRejectsMalformedPayload(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.SaveDataURI("data:image/png;base64,%%%", "avatars")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	storage := newTestStorage(t)

	ref, err := storage.SaveDataURI(pngDataURI("to be removed"), "gallery")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ref))

	name := ref[strings.LastIndex(ref, "/")+1:]
	_, err = os.Stat(filepath.Join(storage.basePath, "gallery", name))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteMissingObjectIsNotAnError(t *testing.T) {
	storage := newTestStorage(t)

	assert.NoError(t, storage.Delete("http://localhost:8080/uploads/gallery/gone.png"))
	assert.NoError(t, storage.Delete(""))
}
