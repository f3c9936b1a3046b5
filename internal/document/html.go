package document

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// RenderHTML converts an assembled markdown document to HTML. The markdown
// output itself is never affected; this is a secondary export format.
func RenderHTML(doc string) ([]byte, error) {
	md := goldmark.New()

	var buf bytes.Buffer
	if err := md.Convert([]byte(doc), &buf); err != nil {
		return nil, fmt.Errorf("convert document to HTML: %w", err)
	}
	return buf.Bytes(), nil
}
