package quotes

// ExtractResult holds the quotes extracted from one category page.
type ExtractResult struct {
	// Quotes are the quote blocks found on the page, in document order.
	Quotes []*Quote

	// HasNext reports whether the page links to a following page.
	HasNext bool
}

// Extractor parses page markup into quote records using structural
// selectors. Implementations are coupled to one site layout; the walker
// core is independent of markup structure.
type Extractor interface {
	// Extract processes raw HTML and returns the quotes on the page plus
	// the pagination continuation flag. The pageURL is recorded on each
	// quote as its source page. A quote block missing its text or author
	// is a hard error; the result may still carry the well-formed blocks
	// extracted before the malformed one.
	Extract(html string, pageURL string) (*ExtractResult, error)
}
