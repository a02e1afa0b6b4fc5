// Package goquery provides a goquery-based implementation of
// skillcorpus.LinkExtractor for pulling skill detail links out of search
// result pages.
package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"skillcorpus"
)

// skillPathSegments is the number of path segments a skill detail link has:
// owner/repository/skill-name.
const skillPathSegments = 3

// Ensure Extractor implements skillcorpus.LinkExtractor at compile time.
var _ skillcorpus.LinkExtractor = (*Extractor)(nil)

// Extractor finds skill detail links in search result HTML.
// Category roots (fewer segments) and sub-pages (more segments) are
// excluded; only owner/repository/skill paths survive.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses HTML and returns the distinct local href values that
// have exactly three non-empty path segments, sorted lexicographically.
func (e *Extractor) ExtractLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skillcorpus.Errorf(skillcorpus.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	links := []string{}

	doc.Find("[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || !isLocalPath(href) {
			return
		}
		if segmentCount(href) != skillPathSegments {
			return
		}
		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}
		links = append(links, href)
	})

	sort.Strings(links)
	return links, nil
}

// isLocalPath reports whether href is a plain site-relative path: it must
// start with a slash and contain no quote, space, fragment or query
// characters.
func isLocalPath(href string) bool {
	if !strings.HasPrefix(href, "/") {
		return false
	}
	return !strings.ContainsAny(href, "\" #?")
}

// segmentCount returns the number of non-empty path segments in href.
func segmentCount(href string) int {
	n := 0
	for _, seg := range strings.Split(href, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}
