// Package corpus discovers and assembles every post under the configured
// post directory.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mbenadda/mbenadda.com/internal/authors"
	"github.com/mbenadda/mbenadda.com/internal/config"
	"github.com/mbenadda/mbenadda.com/internal/content"
	"github.com/mbenadda/mbenadda.com/internal/model"
)

// Corpus holds the assembled posts, newest first, plus the category and tag
// groupings the generator builds its archive pages from.
type Corpus struct {
	Posts      []*model.Post
	ByCategory map[string][]*model.Post
	ByTag      map[string][]*model.Post
}

var titleCaser = cases.Title(language.English)

// Load walks cfg.BlogPostDir for Markdown files and assembles the corpus.
// The first malformed file aborts the load with its path in the error.
func Load(cfg *config.Config, dir *authors.Directory) (*Corpus, error) {
	if _, err := os.Stat(cfg.BlogPostDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("post directory '%s' not found", cfg.BlogPostDir)
	}

	c := &Corpus{
		ByCategory: make(map[string][]*model.Post),
		ByTag:      make(map[string][]*model.Post),
	}

	walkErr := filepath.WalkDir(cfg.BlogPostDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		post, err := loadFile(path, cfg, dir)
		if err != nil {
			return err
		}
		c.Posts = append(c.Posts, post)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	// Newest first; undated posts sink to the bottom.
	sort.Slice(c.Posts, func(i, j int) bool {
		ti, iok := c.Posts[i].Meta.Time()
		tj, jok := c.Posts[j].Meta.Time()
		if !iok {
			return false
		}
		if !jok {
			return true
		}
		return ti.After(tj)
	})

	for _, post := range c.Posts {
		c.ByCategory[post.Meta.Category] = append(c.ByCategory[post.Meta.Category], post)
		for _, tag := range post.Meta.Tags {
			c.ByTag[tag] = append(c.ByTag[tag], post)
		}
	}
	return c, nil
}

func loadFile(path string, cfg *config.Config, dir *authors.Directory) (*model.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	meta, body, err := content.Parse(raw)
	if err != nil {
		var fmErr *content.MalformedFrontMatterError
		if errors.As(err, &fmErr) {
			fmErr.Path = path
		}
		return nil, err
	}

	if meta.Title == "" {
		// Same fallback the site uses for untitled pages: the file name,
		// de-hyphenated and title-cased.
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		meta.Title = titleCaser.String(strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " "))
	}
	if meta.Category == "" {
		meta.Category = cfg.PostDefaultCategoryID
	}
	authorID := meta.Author
	if dir == nil || !dir.Known(authorID) {
		authorID = cfg.BlogAuthorID
	}

	words, excerpt := content.Analyze(body)

	return &model.Post{
		Meta:       meta,
		Body:       string(body),
		SourcePath: path,
		Slug:       slug.Make(meta.Title),
		AuthorID:   authorID,
		WordCount:  words,
		Excerpt:    excerpt,
	}, nil
}

// DisplayCategory renders a category id the way archive pages caption it.
func DisplayCategory(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "-", " "))
}
