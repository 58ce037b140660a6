package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mbenadda/mbenadda.com/internal/authors"
	"github.com/mbenadda/mbenadda.com/internal/config"
	"github.com/mbenadda/mbenadda.com/internal/corpus"
)

var watchMode bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the configuration, author directory, and every post",
	Long: `The check command loads the site configuration, the author directory,
and every Markdown post, and verifies the contract the static-site generator
expects: well-formed YAML front matter, parseable dates, resolvable author
ids, and cover images that exist. Any malformed input fails the check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCheck(siteConfig); err != nil {
			if !watchMode {
				return err
			}
			logger.Error("Corpus check failed", "err", err)
		}
		if watchMode {
			return watchCorpus(siteConfig)
		}
		return nil
	},
}

func runCheck(cfg *config.Config) error {
	dir, err := authors.Load(cfg.BlogAuthorDir, cfg.BlogAuthorID)
	if err != nil {
		return err
	}
	c, err := corpus.Load(cfg, dir)
	if err != nil {
		return err
	}

	for _, post := range c.Posts {
		if post.Meta.Author != "" && !dir.Known(post.Meta.Author) {
			logger.Warn("Unknown author id, falling back to default",
				"post", post.SourcePath, "author", post.Meta.Author, "fallback", cfg.BlogAuthorID)
		}
		if post.Meta.Date == "" {
			logger.Warn("Post has no date and will sort last", "post", post.SourcePath)
		}
		if post.Meta.Cover != "" {
			coverPath := filepath.Join(filepath.Dir(post.SourcePath), post.Meta.Cover)
			if _, err := os.Stat(coverPath); os.IsNotExist(err) {
				return fmt.Errorf("post '%s' references missing cover '%s'", post.SourcePath, post.Meta.Cover)
			}
		}
	}

	logger.Info("Corpus check passed",
		"posts", len(c.Posts), "authors", dir.Len(),
		"categories", len(c.ByCategory), "tags", len(c.ByTag))
	return nil
}

// watchCorpus re-runs the check whenever the content or author directories
// change. Events are debounced so editors that write in bursts trigger a
// single run.
func watchCorpus(cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	done := make(chan error, 1)
	go func() {
		var checkTimer *time.Timer
		debounceDuration := 500 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					done <- nil
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					logger.Debug("Change detected", "path", event.Name, "op", event.Op.String())

					// New subdirectories are not watched automatically.
					if event.Has(fsnotify.Create) && isDir(event.Name) {
						if err := watcher.Add(event.Name); err != nil {
							logger.Error("Failed to watch new directory", "path", event.Name, "err", err)
						}
					}

					if checkTimer != nil {
						checkTimer.Stop()
					}
					checkTimer = time.AfterFunc(debounceDuration, func() {
						logger.Info("Re-checking corpus")
						if err := runCheck(cfg); err != nil {
							logger.Error("Corpus check failed", "err", err)
						}
					})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					done <- nil
					return
				}
				logger.Error("Watcher error", "err", err)
			}
		}
	}()

	for _, rootPath := range []string{cfg.BlogPostDir, cfg.BlogAuthorDir} {
		if _, statErr := os.Stat(rootPath); os.IsNotExist(statErr) {
			logger.Warn("Directory not found, not watching", "path", rootPath)
			continue
		}
		walkErr := filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				logger.Error("Error walking watch path", "path", path, "err", err)
				return nil
			}
			if d.IsDir() {
				if watchErr := watcher.Add(path); watchErr != nil {
					logger.Error("Failed to watch directory", "path", path, "err", watchErr)
				}
			}
			return nil
		})
		if walkErr != nil {
			logger.Error("Error setting up watch", "path", rootPath, "err", walkErr)
		}
	}

	logger.Info("Watching for changes", "posts", cfg.BlogPostDir, "authors", cfg.BlogAuthorDir)
	logger.Info("Press Ctrl+C to stop")
	return <-done
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	checkCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "re-run the check when content changes")
	rootCmd.AddCommand(checkCmd)
}
