package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docgrab"
)

// removeSelectors lists elements dropped outright during cleaning.
// Images are removed entirely rather than replaced with placeholders.
var removeSelectors = []string{
	"nav",
	"header",
	"footer",
	"aside",
	"script",
	"style",
	"noscript",
	"img",
	"picture",
	"svg",
	"figure",
	".advertisement",
	".ad-banner",
	".ad-container",
	".tabGroup", // Microsoft Learn tabbed chrome
}

// Ensure Cleaner implements docgrab.Cleaner at compile time.
var _ docgrab.Cleaner = (*Cleaner)(nil)

// Cleaner scrubs a located content region before markdown conversion.
// It removes non-content elements and unwraps links that point away from
// the configured hosts: the link text survives, the target is dropped.
// Relative links carry no host and are unwrapped too.
type Cleaner struct {
	keepHosts []string
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithKeepHosts sets the hosts whose link targets survive cleaning.
// A link is kept when its host contains any of the given values.
// With no hosts configured every link is unwrapped.
func WithKeepHosts(hosts ...string) CleanerOption {
	return func(c *Cleaner) {
		c.keepHosts = hosts
	}
}

// NewCleaner creates a new Cleaner.
func NewCleaner(opts ...CleanerOption) *Cleaner {
	c := &Cleaner{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean implements docgrab.Cleaner.
func (c *Cleaner) Clean(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", docgrab.Errorf(docgrab.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", docgrab.Errorf(docgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range removeSelectors {
		doc.Find(selector).Remove()
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if c.keepsTarget(href) {
			return
		}
		inner, err := sel.Html()
		if err != nil {
			inner = sel.Text()
		}
		sel.ReplaceWithHtml(inner)
	})

	if strings.TrimSpace(doc.Text()) == "" {
		return "", docgrab.Errorf(docgrab.EEXTRACT, "no content survived cleaning")
	}

	// The parser wraps fragments in html/body; the body's inner HTML is
	// the cleaned region.
	cleaned, err := doc.Find("body").Html()
	if err != nil {
		return "", docgrab.Errorf(docgrab.EINTERNAL, "failed to render cleaned content: %v", err)
	}

	return cleaned, nil
}

// keepsTarget reports whether a link target survives cleaning.
func (c *Cleaner) keepsTarget(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Host == "" {
		return false
	}
	for _, keep := range c.keepHosts {
		if strings.Contains(u.Host, keep) {
			return true
		}
	}
	return false
}
