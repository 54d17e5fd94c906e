package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docgrab"
)

// Ensure LoggingSearchService implements docgrab.SearchService.
var _ docgrab.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with debug logging.
type LoggingSearchService struct {
	next   docgrab.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next docgrab.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Search(ctx context.Context, query string, maxResults int) (results []docgrab.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("documentation search",
			"query", query,
			"max_results", maxResults,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, maxResults)
}
