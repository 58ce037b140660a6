package authors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAuthorDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"mehdi.json": `{"name": "Mehdi Benadda", "url": "https://mbenadda.com", "email": "hello@mbenadda.com"}`,
		"guest.json": `{"id": "guest", "name": "Guest Writer"}`,
		"notes.txt":  "not an author record",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("Should load one record per JSON file", func(t *testing.T) {
		d, err := Load(writeAuthorDir(t), "mehdi")
		require.NoError(t, err)
		assert.Equal(t, 2, d.Len())
	})

	t.Run("Should key records by file name when the record has no id", func(t *testing.T) {
		d, err := Load(writeAuthorDir(t), "mehdi")
		require.NoError(t, err)

		author, ok := d.Resolve("mehdi")
		require.True(t, ok)
		assert.Equal(t, "mehdi", author.ID)
		assert.Equal(t, "Mehdi Benadda", author.Name)
	})

	t.Run("Should fail when the default author is missing", func(t *testing.T) {
		_, err := Load(writeAuthorDir(t), "ghost")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("Should fail on an unreadable directory", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing"), "mehdi")
		require.Error(t, err)
	})

	t.Run("Should fail on an invalid record", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))

		_, err := Load(dir, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.json")
	})
}

func TestResolve(t *testing.T) {
	t.Run("Should resolve a known id directly", func(t *testing.T) {
		d, err := Load(writeAuthorDir(t), "mehdi")
		require.NoError(t, err)

		author, ok := d.Resolve("guest")
		require.True(t, ok)
		assert.Equal(t, "Guest Writer", author.Name)
		assert.True(t, d.Known("guest"))
	})

	t.Run("Should fall back to the default for unknown or empty ids", func(t *testing.T) {
		d, err := Load(writeAuthorDir(t), "mehdi")
		require.NoError(t, err)

		for _, id := range []string{"", "nobody"} {
			author, ok := d.Resolve(id)
			require.True(t, ok, id)
			assert.Equal(t, "Mehdi Benadda", author.Name)
		}
		assert.False(t, d.Known("nobody"))
	})
}
