package skillcorpus

// LinkExtractor finds skill detail links in a search results page.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the distinct site-relative
	// paths with exactly three segments (owner/repo/skill), sorted
	// lexicographically so output is deterministic regardless of
	// document order.
	ExtractLinks(html string) ([]string, error)
}

// TextExtractor converts one HTML document into plain text.
type TextExtractor interface {
	// ExtractText returns a best-effort plain-text rendition of the
	// page's main readable content. It is a pure function of its input.
	ExtractText(html string) (string, error)
}
