// Package htmltext converts skill page HTML into plain text using the
// golang.org/x/net/html tokenizer.
package htmltext

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"skillcorpus"
)

// DefaultMinLength is the length below which the structural extraction is
// treated as having missed the page's main content, switching to the
// tag-stripping fallback. The value is an untuned heuristic carried over
// from the previous generation of this tool.
const DefaultMinLength = 200

// suppressed marks elements whose subtree must never contribute text.
var suppressed = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Svg:      true,
}

// blockish marks elements that imply a line break in the flattened output.
var blockish = map[atom.Atom]bool{
	atom.H1:   true,
	atom.H2:   true,
	atom.H3:   true,
	atom.H4:   true,
	atom.P:    true,
	atom.Li:   true,
	atom.Pre:  true,
	atom.Code: true,
	atom.Br:   true,
}

var (
	newlineRuns  = regexp.MustCompile(`\n{3,}`)
	scriptBlocks = regexp.MustCompile(`(?s)<script.*?</script>`)
	styleBlocks  = regexp.MustCompile(`(?s)<style.*?</style>`)
	anyTag       = regexp.MustCompile(`<[^>]+>`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Ensure Extractor implements skillcorpus.TextExtractor at compile time.
var _ skillcorpus.TextExtractor = (*Extractor)(nil)

// Extractor flattens one HTML document into plain text.
//
// The structural path walks the token stream and captures text inside the
// <main> element, approximating paragraph structure with explicit line
// breaks. When that yields less than minLength characters the document is
// assumed not to follow the expected layout, and a lossier strip-all-tags
// fallback runs over the whole document instead.
type Extractor struct {
	minLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinLength overrides the threshold at which the structural result is
// discarded in favor of the fallback. Defaults to DefaultMinLength.
func WithMinLength(n int) Option {
	return func(e *Extractor) {
		e.minLength = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		minLength: DefaultMinLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText returns the readable text of the page. It is a pure function
// of its input and never fails; a page with no recognizable content yields
// an empty string.
func (e *Extractor) ExtractText(doc string) (string, error) {
	txt := mainText(doc)
	if utf8.RuneCountInString(txt) < e.minLength {
		txt = stripTags(doc)
	}
	return txt, nil
}

// mainText implements the structural path: a single pass over the token
// stream tracking whether the walker is inside <main> and how deep it is
// inside suppressed subtrees (script, style, noscript, svg). Text is only
// emitted while inside <main> with no suppressed ancestor.
func mainText(doc string) string {
	z := html.NewTokenizer(strings.NewReader(doc))

	inMain := false
	skip := 0
	var parts []string

	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			// io.EOF or malformed markup; either way emit what we have.
			return flatten(parts)

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			selfClosing := tt == html.SelfClosingTagToken
			if a == atom.Main && !selfClosing {
				inMain = true
			}
			// A self-closing suppressed element has no subtree, so it
			// must not leave the counter raised.
			if inMain && suppressed[a] && !selfClosing {
				skip++
			}
			if inMain && skip == 0 && blockish[a] {
				parts = append(parts, "\n")
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			// Only a close matching a currently-suppressed type may
			// decrement; stray closes must not drive the counter negative.
			if inMain && suppressed[a] && skip > 0 {
				skip--
			}
			if a == atom.Main {
				inMain = false
			}

		case html.TextToken:
			if inMain && skip == 0 {
				if s := strings.TrimSpace(string(z.Text())); s != "" {
					parts = append(parts, s+" ")
				}
			}
		}
	}
}

// flatten joins the accumulated fragments, collapses runs of three or more
// line breaks down to two, and trims the result.
func flatten(parts []string) string {
	txt := strings.Join(parts, "")
	txt = newlineRuns.ReplaceAllString(txt, "\n\n")
	return strings.TrimSpace(txt)
}

// stripTags implements the fallback path: drop script and style blocks
// with their content, strip every remaining tag, and collapse whitespace.
// Lossy, but it always produces something.
func stripTags(doc string) string {
	txt := scriptBlocks.ReplaceAllString(doc, " ")
	txt = styleBlocks.ReplaceAllString(txt, " ")
	txt = anyTag.ReplaceAllString(txt, " ")
	txt = whitespace.ReplaceAllString(txt, " ")
	return strings.TrimSpace(txt)
}
