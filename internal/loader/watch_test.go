package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/internal/loader"
)

func TestWatcher_DebouncedReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "campus.dot")
	require.NoError(t, os.WriteFile(path, []byte(campusDOT), 0o600))

	var calls atomic.Int32
	log, _ := test.NewNullLogger()
	w, err := loader.NewWatcher(path, 50*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// A burst of writes collapses into one reload.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(campusDOT), 0o600))
	}
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	// Changes to sibling files are ignored.
	time.Sleep(200 * time.Millisecond)
	before := calls.Load()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.dot"), []byte("x"), 0o600))
	time.Sleep(200 * time.Millisecond)
	require.Equal(t, before, calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_ReloadErrorIsLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus.dot")
	require.NoError(t, os.WriteFile(path, []byte(campusDOT), 0o600))

	log, hook := test.NewNullLogger()
	w, err := loader.NewWatcher(path, 20*time.Millisecond, func(context.Context) error {
		return loader.ErrSyntax
	}, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("A -> B\n"), 0o600))
	require.Eventually(t, func() bool {
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.WarnLevel && e.Message == "reload failed" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewWatcher_EmptyPath(t *testing.T) {
	_, err := loader.NewWatcher("", 0, nil, nil)
	require.ErrorIs(t, err, loader.ErrEmptyPath)
}
