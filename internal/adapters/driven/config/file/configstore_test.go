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

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".unitconv", "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("conversion.default_category", "weight")
	require.NoError(t, err)

	val, ok := store.Get("conversion.default_category")
	assert.True(t, ok)
	assert.Equal(t, "weight", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("server.addr", "127.0.0.1:9090"))

	assert.Equal(t, "127.0.0.1:9090", store.GetString("server.addr"))
	assert.Empty(t, store.GetString("missing"))

	require.NoError(t, store.Set("not_a_string", 42))
	assert.Empty(t, store.GetString("not_a_string"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("display.precision", 4))

	assert.Equal(t, 4, store.GetInt("display.precision"))
	assert.Equal(t, 0, store.GetInt("missing"))

	require.NoError(t, store.Set("not_an_int", "four"))
	assert.Equal(t, 0, store.GetInt("not_an_int"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("conversion.strict_temperature", true))

	assert.True(t, store.GetBool("conversion.strict_temperature"))
	assert.False(t, store.GetBool("missing"))

	require.NoError(t, store.Set("not_a_bool", "yes"))
	assert.False(t, store.GetBool("not_a_bool"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("display.precision", 3))
	require.NoError(t, store1.Set("conversion.strict_temperature", false))
	require.NoError(t, store1.Set("conversion.default_category", "volume"))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 3, store2.GetInt("display.precision"))
	assert.False(t, store2.GetBool("conversion.strict_temperature"))
	_, ok := store2.Get("conversion.strict_temperature")
	assert.True(t, ok)
	assert.Equal(t, "volume", store2.GetString("conversion.default_category"))
}

func TestConfigStore_SaveWritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("display.precision", 2))
	require.NoError(t, store.Set("server.addr", "localhost:8080"))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	assert.Contains(t, string(content), "[display]")
	assert.Contains(t, string(content), "[server]")
	assert.NotContains(t, string(content), "display.precision")
}

func TestConfigStore_Load_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[display]\nprecision = 6\n\n[conversion]\nstrict_temperature = false\ndefault_category = \"height\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 6, store.GetInt("display.precision"))
	assert.False(t, store.GetBool("conversion.strict_temperature"))
	assert.Equal(t, "height", store.GetString("conversion.default_category"))
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Load())

	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("display.precision", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("display.precision")
		}()
	}
	wg.Wait()

	_, ok := store.Get("display.precision")
	assert.True(t, ok)
}

func TestConfigStore_OverwriteValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("conversion.default_category", "length"))
	require.NoError(t, store.Set("conversion.default_category", "currency"))

	assert.Equal(t, "currency", store.GetString("conversion.default_category"))
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	_, err := NewConfigStore("/dev/null/cannot/create/dirs")
	assert.Error(t, err)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("[[[ not toml"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save())

	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// A directory at the file path makes WriteFile fail.
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Save())
}

func TestConfigStore_Load_ReadFileError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "value"))

	require.NoError(t, os.Chmod(store.Path(), 0000))
	t.Cleanup(func() { _ = os.Chmod(store.Path(), 0600) })

	assert.Error(t, store.Load())
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"display": map[string]any{"precision": int64(2)},
		"top":     "level",
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{
		"display.precision": int64(2),
		"top":               "level",
	}, flat)
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"display.precision":             2,
		"conversion.strict_temperature": true,
		"conversion.default_category":   "length",
		"top":                           "level",
	}

	nested := nestMap(flat)

	assert.Equal(t, map[string]any{
		"display":    map[string]any{"precision": 2},
		"conversion": map[string]any{"strict_temperature": true, "default_category": "length"},
		"top":        "level",
	}, nested)
	assert.Equal(t, flat, flattenMap(nested, ""))
}

func TestNestMap_LeafCollision(t *testing.T) {
	nested := nestMap(map[string]any{
		"server":      "plain",
		"server.addr": "localhost:8080",
	})

	// Whichever key is visited second cannot nest under the other and stays flat.
	assert.Len(t, nested, 2)
	_, hasServer := nested["server"]
	assert.True(t, hasServer)
}
