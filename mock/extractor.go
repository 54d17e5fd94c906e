package mock

import "github.com/fwojciec/docgrab"

var _ docgrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docgrab.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docgrab.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docgrab.ExtractResult, error) {
	return e.ExtractFn(html)
}
