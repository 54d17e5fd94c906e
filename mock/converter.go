package mock

import "github.com/fwojciec/docgrab"

var _ docgrab.Converter = (*Converter)(nil)

// Converter is a mock implementation of docgrab.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
