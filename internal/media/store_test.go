package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStoreSave(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root)

	path, err := store.Save(context.Background(), "cat.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "posts/"))
	require.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))
}

func TestDiskStoreIgnoresHostileFilename(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root)

	path, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	abs, err := filepath.Abs(filepath.Join(root, filepath.FromSlash(path)))
	require.NoError(t, err)
	rootAbs, err := filepath.Abs(root)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(abs, rootAbs), "stored file must stay under the media root")
}

func TestDiskStoreUniqueNames(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	a, err := store.Save(context.Background(), "same.jpg", strings.NewReader("one"))
	require.NoError(t, err)
	b, err := store.Save(context.Background(), "same.jpg", strings.NewReader("two"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
