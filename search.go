package docgrab

import "context"

// SearchResult describes a single hit returned by a documentation search
// endpoint. It carries just enough to fetch and label the underlying page.
type SearchResult struct {
	// Title is the endpoint's display title for the hit.
	Title string

	// URL locates the full article.
	URL string

	// Description is the endpoint's summary snippet, when provided.
	Description string

	// LastUpdated is the endpoint's last-modified stamp, verbatim.
	LastUpdated string
}

// SearchService queries a documentation search endpoint.
type SearchService interface {
	// Search returns up to maxResults hits for query, in the endpoint's
	// relevance order. Returns EINVALID if maxResults is out of range,
	// ENETWORK if the endpoint cannot be reached, and EAPI if it responds
	// with a non-success status or a malformed body.
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}
