package file

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Watch_ReloadsOnWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("display.precision", 2))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	require.NoError(t, store.Watch(ctx, func() { calls.Add(1) }))

	content := []byte("[display]\nprecision = 7\n")
	require.NoError(t, os.WriteFile(store.Path(), content, 0600))

	require.Eventually(t, func() bool {
		return store.GetInt("display.precision") == 7 && calls.Load() > 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestConfigStore_Watch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	require.NoError(t, store.Watch(ctx, func() { calls.Add(1) }))

	require.NoError(t, os.WriteFile(dir+"/other.txt", []byte("x"), 0600))

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestConfigStore_Watch_InvalidContentKeepsOldValues(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("display.precision", 3))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, store.Watch(ctx, nil))
	require.NoError(t, os.WriteFile(store.Path(), []byte("[[[ broken"), 0600))

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 3, store.GetInt("display.precision"))
}

func TestConfigStore_Watch_MissingDirectory(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	store.filePath = "/nonexistent/dir/config.toml"

	err = store.Watch(context.Background(), nil)
	assert.Error(t, err)
}
