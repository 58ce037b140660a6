// Package content implements the contract a post file must satisfy: a YAML
// front-matter header between "---" delimiters, followed by a Markdown body.
package content

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	yaml "gopkg.in/yaml.v2"

	"github.com/mbenadda/mbenadda.com/internal/model"
)

// MalformedFrontMatterError reports a content file whose header is missing,
// unterminated, or not valid YAML. It always aborts the load.
type MalformedFrontMatterError struct {
	Path string
	Err  error
}

func (e *MalformedFrontMatterError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed front matter: %v", e.Err)
	}
	return fmt.Sprintf("%s: malformed front matter: %v", e.Path, e.Err)
}

func (e *MalformedFrontMatterError) Unwrap() error { return e.Err }

// Parse splits raw into its front-matter header and body. A file without a
// complete, well-formed header is rejected rather than treated as headerless.
func Parse(raw []byte) (model.PostMeta, []byte, error) {
	var meta model.PostMeta
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &meta)
	if err != nil {
		return model.PostMeta{}, nil, &MalformedFrontMatterError{Err: err}
	}
	if meta.Date != "" {
		if _, ok := meta.Time(); !ok {
			return model.PostMeta{}, nil, &MalformedFrontMatterError{
				Err: fmt.Errorf("unrecognized date %q, use YYYY-MM-DD or RFC3339", meta.Date),
			}
		}
	}
	return meta, body, nil
}

// Encode reassembles a content file from its header and body. The result
// parses back to the same (metadata, body) pair.
func Encode(meta model.PostMeta, body []byte) ([]byte, error) {
	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n")
	buf.Write(body)
	return buf.Bytes(), nil
}
