// Package render maps a document's extension to a body and content type.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
)

var ErrUnsupportedType = errors.New("unsupported document type")

type Renderer struct {
	md goldmark.Markdown
}

func New() *Renderer {
	return &Renderer{md: goldmark.New()}
}

// Render produces the response body and content type for a document.
// Unknown extensions are unreachable through validated creation but are
// rejected explicitly rather than guessed at.
func (r *Renderer) Render(name string, content []byte) ([]byte, string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return content, "text/plain", nil
	case ".md":
		var buf bytes.Buffer
		if err := r.md.Convert(content, &buf); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "text/html; charset=utf-8", nil
	case ".jpg":
		return content, "image/jpeg", nil
	default:
		return nil, "", fmt.Errorf("%s: %w", name, ErrUnsupportedType)
	}
}
