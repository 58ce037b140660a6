package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenadda/mbenadda.com/internal/authors"
	"github.com/mbenadda/mbenadda.com/internal/config"
	"github.com/mbenadda/mbenadda.com/internal/content"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func corpusFixture(t *testing.T) (*config.Config, *authors.Directory) {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		BlogPostDir:           filepath.Join(root, "posts"),
		BlogAuthorDir:         filepath.Join(root, "authors"),
		BlogAuthorID:          "mehdi",
		PostDefaultCategoryID: "default",
	}

	writeFile(t, filepath.Join(cfg.BlogAuthorDir, "mehdi.json"),
		`{"name": "Mehdi Benadda"}`)

	writeFile(t, filepath.Join(cfg.BlogPostDir, "older-post.md"),
		"---\nauthor: mehdi\ntitle: Older post\ndate: \"2018-04-19\"\ncategory: default\ntags:\n  - typescript\n---\n\nAn older piece of writing.\n")
	writeFile(t, filepath.Join(cfg.BlogPostDir, "2020", "newer-post.md"),
		"---\nauthor: ghost\ntitle: Newer post\ndate: \"2020-01-02\"\ntags:\n  - typescript\n  - go\n---\n\nA newer piece of writing.\n")
	writeFile(t, filepath.Join(cfg.BlogPostDir, "untitled-draft.md"),
		"---\nauthor: mehdi\n---\n\nNo title, no date.\n")
	writeFile(t, filepath.Join(cfg.BlogPostDir, "notes.txt"),
		"not markdown, must be ignored")

	dir, err := authors.Load(cfg.BlogAuthorDir, cfg.BlogAuthorID)
	require.NoError(t, err)
	return cfg, dir
}

func TestLoad(t *testing.T) {
	t.Run("Should discover Markdown files recursively, newest first", func(t *testing.T) {
		cfg, dir := corpusFixture(t)

		c, err := Load(cfg, dir)
		require.NoError(t, err)
		require.Len(t, c.Posts, 3)
		assert.Equal(t, "Newer post", c.Posts[0].Meta.Title)
		assert.Equal(t, "Older post", c.Posts[1].Meta.Title)
	})

	t.Run("Should sort undated posts last", func(t *testing.T) {
		cfg, dir := corpusFixture(t)

		c, err := Load(cfg, dir)
		require.NoError(t, err)
		assert.Equal(t, "Untitled Draft", c.Posts[2].Meta.Title)
	})

	t.Run("Should title the untitled from the file name and slug every post", func(t *testing.T) {
		cfg, dir := corpusFixture(t)

		c, err := Load(cfg, dir)
		require.NoError(t, err)
		assert.Equal(t, "Untitled Draft", c.Posts[2].Meta.Title)
		assert.Equal(t, "untitled-draft", c.Posts[2].Slug)
		assert.Equal(t, "newer-post", c.Posts[0].Slug)
	})

	t.Run("Should apply the default category", func(t *testing.T) {
		cfg, dir := corpusFixture(t)

		c, err := Load(cfg, dir)
		require.NoError(t, err)
		for _, post := range c.Posts {
			assert.Equal(t, "default", post.Meta.Category, post.SourcePath)
		}
	})

	t.Run("Should fall back to the default author for unknown ids", func(t *testing.T) {
		cfg, dir := corpusFixture(t)

		c, err := Load(cfg, dir)
		require.NoError(t, err)
		assert.Equal(t, "mehdi", c.Posts[0].AuthorID) // authored by "ghost"
		assert.Equal(t, "mehdi", c.Posts[1].AuthorID)
	})

	t.Run("Should group posts by category and tag", func(t *testing.T) {
		cfg, dir := corpusFixture(t)

		c, err := Load(cfg, dir)
		require.NoError(t, err)
		assert.Len(t, c.ByCategory["default"], 3)
		assert.Len(t, c.ByTag["typescript"], 2)
		assert.Len(t, c.ByTag["go"], 1)
	})

	t.Run("Should abort on a malformed post and name the file", func(t *testing.T) {
		cfg, dir := corpusFixture(t)
		badPath := filepath.Join(cfg.BlogPostDir, "broken.md")
		writeFile(t, badPath, "---\ntitle: unterminated\n\nbody without a closing delimiter\n")

		_, err := Load(cfg, dir)
		require.Error(t, err)
		var fmErr *content.MalformedFrontMatterError
		require.ErrorAs(t, err, &fmErr)
		assert.Equal(t, badPath, fmErr.Path)
	})

	t.Run("Should fail when the post directory does not exist", func(t *testing.T) {
		cfg, dir := corpusFixture(t)
		cfg.BlogPostDir = filepath.Join(cfg.BlogPostDir, "nope")

		_, err := Load(cfg, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestDisplayCategory(t *testing.T) {
	t.Run("Should title-case category ids", func(t *testing.T) {
		assert.Equal(t, "Default", DisplayCategory("default"))
		assert.Equal(t, "Static Typing", DisplayCategory("static-typing"))
	})
}
