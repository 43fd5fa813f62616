package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyDocumentPath, "/docs/js_kb.md"))
	require.NoError(t, store.Set(KeyHeadingLevel, 2))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, "/docs/js_kb.md", store.GetString(KeyDocumentPath))
	assert.Equal(t, 2, store.GetInt(KeyHeadingLevel))
	assert.True(t, store.GetBool("verbose"))
}

func TestConfigStore_MissingKeysReturnZeroValues(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyDataDir, "/var/lib/snipdex"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/snipdex", reloaded.GetString(KeyDataDir))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[kb]\npath = \"/docs/js_kb.md\"\nheading_level = 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/docs/js_kb.md", store.GetString(KeyDocumentPath))
	assert.Equal(t, 3, store.GetInt(KeyHeadingLevel))
}

func TestConfigStore_WrongTypeReturnsZeroValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", 42))
	assert.Empty(t, store.GetString("key"))
	assert.False(t, store.GetBool("key"))
}
