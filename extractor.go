package docgrab

import "strings"

// ExtractResult holds the main content located in an HTML page.
type ExtractResult struct {
	// Title is the page's primary heading. May be empty when the page
	// has no usable heading.
	Title string

	// ContentHTML is the located main content region as HTML.
	// Surrounding chrome (nav, footer, sidebar) is excluded, but the
	// region itself is otherwise untouched.
	ContentHTML string
}

// Extractor locates the main content region of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content region.
	// Returns EEXTRACT when no region with visible text can be located.
	Extract(html string) (*ExtractResult, error)
}

// FallbackExtractor tries each extractor in order and returns the first
// result whose content has visible text. Errors from individual extractors
// are not fatal; they simply advance the chain.
type FallbackExtractor []Extractor

// Extract implements Extractor.
func (fe FallbackExtractor) Extract(html string) (*ExtractResult, error) {
	for _, e := range fe {
		result, err := e.Extract(html)
		if err != nil {
			continue
		}
		if strings.TrimSpace(result.ContentHTML) == "" {
			continue
		}
		return result, nil
	}
	return nil, Errorf(EEXTRACT, "no extractor located a main content region")
}
