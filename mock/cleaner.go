package mock

import "github.com/fwojciec/docgrab"

var _ docgrab.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of docgrab.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (string, error)
}

func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanFn(html)
}
