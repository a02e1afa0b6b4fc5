package skillcorpus

import "context"

// IndexRecord summarizes one successfully processed skill page.
type IndexRecord struct {
	// Link is the site-relative path of the skill page.
	Link string

	// TextLen is the length of the extracted text in characters.
	TextLen int
}

// Validate returns an error if the record contains invalid fields.
func (r *IndexRecord) Validate() error {
	if r.Link == "" {
		return Errorf(EINVALID, "index record link required")
	}
	if r.TextLen < 0 {
		return Errorf(EINVALID, "index record text length must not be negative")
	}
	return nil
}

// CorpusStore persists corpus artifacts.
// A page's raw HTML and extracted text are stored separately so the text
// extraction can be re-run against the raw copies later.
type CorpusStore interface {
	// SaveRaw persists the raw HTML of the page at link.
	SaveRaw(ctx context.Context, link, html string) error

	// SaveText persists the extracted text of the page at link.
	SaveText(ctx context.Context, link, text string) error

	// WriteIndex persists the index of processed pages, replacing any
	// previous index.
	WriteIndex(ctx context.Context, records []IndexRecord) error
}
