// Package readability provides a go-readability implementation of
// docgrab.Extractor. It uses text-density heuristics to find the main
// content when selector-based extraction comes up empty.
package readability

import (
	"strings"

	"github.com/fwojciec/docgrab"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docgrab.Extractor at compile time.
var _ docgrab.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EEXTRACT, "readability extraction failed: %v", err)
	}

	return &docgrab.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
