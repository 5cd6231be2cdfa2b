package loader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/internal/loader"
)

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus.dot")
	require.NoError(t, os.WriteFile(path, []byte(campusDOT), 0o600))

	src := loader.FileSource{Path: path}
	edges, err := src.Edges(context.Background())
	require.NoError(t, err)
	require.Len(t, edges, 4)
	require.Equal(t, "file:"+path, src.Describe())
}

func TestFileSource_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := loader.FileSource{}.Edges(ctx)
	require.ErrorIs(t, err, loader.ErrEmptyPath)

	_, err = loader.FileSource{Path: filepath.Join(t.TempDir(), "missing.dot")}.Edges(ctx)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.dot")
	require.NoError(t, os.WriteFile(bad, []byte("A -> B\n"), 0o600))
	_, err = loader.FileSource{Path: bad}.Edges(ctx)
	require.ErrorIs(t, err, loader.ErrSyntax)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = loader.FileSource{Path: bad}.Edges(cancelled)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReaderSource_Reusable(t *testing.T) {
	src, err := loader.NewReaderSource("inline", strings.NewReader(campusDOT))
	require.NoError(t, err)

	first, err := src.Edges(context.Background())
	require.NoError(t, err)
	second, err := src.Edges(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, "reader:inline", src.Describe())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReaderSource_ReadError(t *testing.T) {
	_, err := loader.NewReaderSource("broken", failingReader{})
	require.ErrorContains(t, err, "disk on fire")
}

func TestStaticSource_Copies(t *testing.T) {
	src := loader.StaticSource{{From: "A", To: "B", Weight: 1}}
	edges, err := src.Edges(context.Background())
	require.NoError(t, err)
	edges[0].Weight = 99
	require.Equal(t, 1.0, src[0].Weight)
}
