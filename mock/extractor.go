package mock

import "skillcorpus"

var _ skillcorpus.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of skillcorpus.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	return e.ExtractLinksFn(html)
}

var _ skillcorpus.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of skillcorpus.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
