// Package authors loads the author directory: one JSON record per author,
// keyed by id.
package authors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbenadda/mbenadda.com/internal/model"
)

// Directory resolves author ids against the loaded records. A post whose
// author id is absent or unknown resolves to the configured fallback.
type Directory struct {
	byID     map[string]model.Author
	fallback string
}

// Load reads every *.json record under dir. fallbackID names the default
// author and must resolve, otherwise the corpus has no usable byline.
func Load(dir, fallbackID string) (*Directory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read author directory '%s': %w", dir, err)
	}

	d := &Directory{byID: make(map[string]model.Author), fallback: fallbackID}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read author file '%s': %w", path, err)
		}
		var author model.Author
		if err := json.Unmarshal(data, &author); err != nil {
			return nil, fmt.Errorf("failed to decode author file '%s': %w", path, err)
		}
		if author.ID == "" {
			author.ID = strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		}
		d.byID[author.ID] = author
	}

	if fallbackID != "" {
		if _, ok := d.byID[fallbackID]; !ok {
			return nil, fmt.Errorf("default author '%s' not found in '%s'", fallbackID, dir)
		}
	}
	return d, nil
}

// Resolve returns the author for id, falling back to the default when id is
// empty or unknown. ok is false only when the fallback itself is missing.
func (d *Directory) Resolve(id string) (model.Author, bool) {
	if author, ok := d.byID[id]; ok {
		return author, true
	}
	author, ok := d.byID[d.fallback]
	return author, ok
}

// Known reports whether id resolves on its own, without the fallback.
func (d *Directory) Known(id string) bool {
	_, ok := d.byID[id]
	return ok
}

// Len is the number of loaded author records.
func (d *Directory) Len() int { return len(d.byID) }
