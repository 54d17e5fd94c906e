package docgrab

// Cleaner scrubs a located content region before markdown conversion.
type Cleaner interface {
	// Clean removes non-content elements (navigation, scripts, images,
	// promotional blocks) and unwraps links that point outside the
	// documentation host, keeping their text. Returns EEXTRACT when
	// nothing with visible text survives cleaning.
	Clean(html string) (string, error)
}
