// Package trafilatura provides a go-trafilatura implementation of
// docgrab.Extractor. It is the last resort in the extraction chain,
// trading precision for recall on pages the other strategies miss.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docgrab"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docgrab.Extractor at compile time.
var _ docgrab.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docgrab.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docgrab.Errorf(docgrab.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EEXTRACT, "trafilatura extraction failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, docgrab.Errorf(docgrab.EINTERNAL, "failed to render content node: %v", err)
		}
	}

	return &docgrab.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
