//go:build unit

package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := New(root, "/static/uploads/pets/")
	require.NoError(t, err)

	t.Run("保存と削除", func(t *testing.T) {
		url, err := store.Save(ctx, "owner_1_dog.png", strings.NewReader("png-bytes"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "/static/uploads/pets/owner_1_dog.png", url)

		data, err := os.ReadFile(filepath.Join(root, "owner_1_dog.png"))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))

		require.NoError(t, store.Remove(ctx, url))
		_, err = os.Stat(filepath.Join(root, "owner_1_dog.png"))
		assert.True(t, os.IsNotExist(err))

		assert.NoError(t, store.Remove(ctx, url), "removing twice is fine")
	})

	t.Run("同じキーの上書きNG", func(t *testing.T) {
		_, err := store.Save(ctx, "dup.png", strings.NewReader("a"), "")
		require.NoError(t, err)
		_, err = store.Save(ctx, "dup.png", strings.NewReader("b"), "")
		assert.Error(t, err)
	})

	t.Run("ルート外へのキーNG", func(t *testing.T) {
		for _, key := range []string{"../escape.png", "/etc/passwd", "  "} {
			_, err := store.Save(ctx, key, strings.NewReader("x"), "")
			assert.Error(t, err, key)
		}
	})

	t.Run("他のストアのURLは無視", func(t *testing.T) {
		assert.NoError(t, store.Remove(ctx, "https://cdn.example.com/pets/a.png"))
	})

	t.Run("一時ファイルが残らない", func(t *testing.T) {
		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), e.Name())
		}
	})
}
