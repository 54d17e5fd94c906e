package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docgrab.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, maxResults int) ([]docgrab.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, maxResults int) ([]docgrab.SearchResult, error) {
	return s.SearchFn(ctx, query, maxResults)
}
