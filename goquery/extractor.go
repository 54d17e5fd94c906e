// Package goquery provides selector-based implementations of
// docgrab.Extractor and docgrab.Cleaner.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docgrab"
)

// contentSelectors is the prioritized list of main-content containers.
// "div.content" leads because Microsoft Learn wraps article bodies in it;
// the rest cover conventional documentation layouts. The first selector
// that matches a region with visible text wins.
var contentSelectors = []string{
	"div.content",
	"main .content",
	"article",
	"main",
	"[role='main']",
	"#main-content",
}

// Ensure Extractor implements docgrab.Extractor at compile time.
var _ docgrab.Extractor = (*Extractor)(nil)

// Extractor locates the main content region of an HTML page using a
// prioritized list of CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content region.
// The page title is taken from the first h1 element; pages without a
// heading yield an empty title, not an error.
func (e *Extractor) Extract(rawHTML string) (*docgrab.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docgrab.Errorf(docgrab.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())

	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}

		// Microsoft Learn pages nest several matches; the last one is
		// the article body.
		region := sel.Last()
		if strings.TrimSpace(region.Text()) == "" {
			continue
		}

		contentHTML, err := goquery.OuterHtml(region)
		if err != nil {
			return nil, docgrab.Errorf(docgrab.EINTERNAL, "failed to render content region: %v", err)
		}

		return &docgrab.ExtractResult{
			Title:       title,
			ContentHTML: contentHTML,
		}, nil
	}

	return nil, docgrab.Errorf(docgrab.EEXTRACT, "no main content region found")
}
