package model

import "time"

// dateLayouts are the date formats accepted in a post header, tried in order.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// PostMeta is the YAML front-matter header of a blog post.
type PostMeta struct {
	Author   string   `yaml:"author,omitempty"`
	Title    string   `yaml:"title"`
	Cover    string   `yaml:"cover,omitempty"`
	Date     string   `yaml:"date,omitempty"`
	Category string   `yaml:"category,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

// Time parses the header date. ok is false when the date is absent or does
// not match any accepted layout.
func (m PostMeta) Time() (time.Time, bool) {
	if m.Date == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, m.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Post is a single content document discovered in the corpus: its parsed
// header, its raw Markdown body, and the metadata derived from both.
type Post struct {
	Meta       PostMeta
	Body       string
	SourcePath string
	Slug       string
	AuthorID   string // resolved, with the configured fallback applied
	WordCount  int
	Excerpt    string
}

// ReadingMinutes estimates reading time at 200 words per minute, never
// reporting less than a minute.
func (p *Post) ReadingMinutes() int {
	minutes := (p.WordCount + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Author is a record from the author directory. The file name provides the
// id when the record itself carries none.
type Author struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}
