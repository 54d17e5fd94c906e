package docgrab

import "context"

// Article is one documentation page reduced to its readable core.
type Article struct {
	// Title is the page heading, or the search hit's title when the page
	// has none. May be empty.
	Title string `json:"title"`

	// Content is the main article body as markdown.
	Content string `json:"content"`

	// Reference is the URL the article was fetched from.
	Reference string `json:"reference"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Reference == "" {
		return Errorf(EINVALID, "article reference required")
	}
	if a.Content == "" {
		return Errorf(EINVALID, "article content required")
	}
	return nil
}

// ResultSet is the aggregate output of a grab run. Articles holds the
// successfully processed pages in search-result order; failed pages are
// simply absent.
type ResultSet struct {
	Articles []*Article `json:"articles"`
}

// ResultWriter persists a completed result set.
type ResultWriter interface {
	// WriteResultSet writes the set to its destination, replacing any
	// previous content atomically.
	WriteResultSet(ctx context.Context, set *ResultSet) error
}
