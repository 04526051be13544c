package portfolio

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherFiresOnChange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	watched := writeFile(t, dir, "plot.html", "v1")
	writeFile(t, dir, "other.html", "x")

	var calls atomic.Int32
	w, err := Watch([]string{watched}, 20*time.Millisecond, func() { calls.Add(1) }, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte("y"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, calls.Load(), "unrelated file triggered a reload")

	require.NoError(t, os.WriteFile(watched, []byte("v2"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatcherDebounces(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	watched := writeFile(t, t.TempDir(), "plot.html", "v0")
	var calls atomic.Int32
	w, err := Watch([]string{watched}, 100*time.Millisecond, func() { calls.Add(1) }, nil)
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(watched, []byte{byte('a' + i)}, 0o644))
	}
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcherInvalidatesAssetCache(t *testing.T) {
	a := newTestApp(t, nil, WithWatch(true))
	require.NotNil(t, a.watcher)

	first, err := a.assets.Get()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(a.Config.Blog.Asset, []byte("<p>new plot</p>"), 0o644))
	require.Eventually(t, func() bool {
		asset, err := a.assets.Get()
		return err == nil && asset.Hash != first.Hash
	}, 2*time.Second, 20*time.Millisecond)
}
