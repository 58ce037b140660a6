package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/mbenadda/mbenadda.com/internal/content"
	"github.com/mbenadda/mbenadda.com/internal/model"
)

var (
	newAuthor   string
	newCategory string
	newTags     []string
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Scaffolds a new post with well-formed front matter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		meta := model.PostMeta{
			Author:   newAuthor,
			Title:    title,
			Date:     time.Now().Format("2006-01-02"),
			Category: newCategory,
			Tags:     newTags,
		}
		if meta.Author == "" {
			meta.Author = siteConfig.BlogAuthorID
		}
		if meta.Category == "" {
			meta.Category = siteConfig.PostDefaultCategoryID
		}

		out, err := content.Encode(meta, []byte("\n"))
		if err != nil {
			return err
		}

		path := filepath.Join(siteConfig.BlogPostDir, slug.Make(title)+".md")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("post file '%s' already exists", path)
		}
		if err := os.MkdirAll(siteConfig.BlogPostDir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create post directory '%s': %w", siteConfig.BlogPostDir, err)
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("failed to write post file '%s': %w", path, err)
		}

		logger.Info("Created post", "path", path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newAuthor, "author", "", "author id (default is the configured blogAuthorId)")
	newCmd.Flags().StringVar(&newCategory, "category", "", "category id (default is postDefaultCategoryID)")
	newCmd.Flags().StringSliceVar(&newTags, "tags", nil, "comma-separated tags")
	rootCmd.AddCommand(newCmd)
}
