package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "aroma")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_LoadsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[names]
tobacco = ["Vanille", "Erdig"]
general = ["Holz", "Pfeffer"]

[extract]
strict = true

[fetch]
requests_per_second = 2
burst = 4
user_agent = "aroma-test"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Vanille", "Erdig"}, store.GetStringSlice("names.tobacco"))
	assert.Equal(t, []string{"Holz", "Pfeffer"}, store.GetStringSlice("names.general"))
	assert.True(t, store.GetBool("extract.strict"))
	assert.Equal(t, 2.0, store.GetFloat("fetch.requests_per_second"))
	assert.Equal(t, 4, store.GetInt("fetch.burst"))
	assert.Equal(t, "aroma-test", store.GetString("fetch.user_agent"))
}

func TestConfigStore_TypeMismatchReturnsZero(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("fetch.burst", "many"))

	assert.Equal(t, 0, store.GetInt("fetch.burst"))
	assert.Equal(t, 0.0, store.GetFloat("fetch.burst"))
	assert.False(t, store.GetBool("fetch.burst"))
	assert.Nil(t, store.GetStringSlice("fetch.burst"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("names.general", []string{"Holz", "Süß"}))
	require.NoError(t, store1.Set("fetch.burst", 3))
	require.NoError(t, store1.Set("extract.strict", true))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Holz", "Süß"}, store2.GetStringSlice("names.general"))
	assert.Equal(t, 3, store2.GetInt("fetch.burst"))
	assert.True(t, store2.GetBool("extract.strict"))
}

func TestConfigStore_SavesTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("names.tobacco", []string{"Vanille"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[names]")
	assert.NotContains(t, string(data), "names.tobacco")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[names\ngeneral = "), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("names.general")
	assert.False(t, ok)
	require.NoError(t, store.Set("k", "v"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("fetch.burst", i)
		}()
		go func() {
			defer wg.Done()
			_ = store.GetInt("fetch.burst")
		}()
	}
	wg.Wait()
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"names": map[string]any{"general": []any{"A"}},
		"top":   1,
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"names.general": []any{"A"}, "top": 1}, flat)
	assert.Equal(t, nested, nestMap(flat))
}

func TestNestMap_ValueBeatsTable(t *testing.T) {
	got := nestMap(map[string]any{"a": 1, "a.b": 2})

	assert.Equal(t, map[string]any{"a": 1}, got)
}
