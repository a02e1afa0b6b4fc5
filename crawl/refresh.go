// Package crawl orchestrates the corpus refresh: it fetches the search
// page, extracts the skill links, and processes each linked page in turn.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"skillcorpus"
)

// Refresher sequences a corpus refresh run. All collaborators are
// injected, so the run can be tested without real network or filesystem
// access. Processing is deliberately sequential: links are fetched one at
// a time in sorted order so the output is deterministic.
type Refresher struct {
	Fetcher skillcorpus.Fetcher
	Links   skillcorpus.LinkExtractor
	Text    skillcorpus.TextExtractor
	Store   skillcorpus.CorpusStore

	// BaseURL is the registry origin, e.g. "https://skills.sh".
	// Detail links are resolved by concatenation against it.
	BaseURL string

	// Query is the search term submitted to the registry's search path.
	Query string
}

// Result holds the outcome of a refresh run.
type Result struct {
	// Saved counts pages that were fetched, extracted and indexed.
	Saved int

	// Skipped counts links whose page fetch failed.
	Skipped int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a refresh run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Link      string
	Error     error
}

// ProgressFunc is a callback for reporting refresh progress.
type ProgressFunc func(event ProgressEvent)

// Run refreshes the corpus and returns counts of saved and skipped pages.
//
// A failure to fetch the search page aborts the whole run. A failure to
// fetch an individual skill page only skips that link: no raw file, no
// text file, no index row, and processing continues with the next link.
// Storage and extraction failures abort, since they indicate a broken
// environment rather than a flaky remote page.
func (r *Refresher) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	base := strings.TrimSuffix(r.BaseURL, "/")

	searchHTML, err := r.Fetcher.Fetch(ctx, base+"/?q="+url.QueryEscape(r.Query))
	if err != nil {
		return nil, fmt.Errorf("fetch search page: %w", err)
	}

	links, err := r.Links.ExtractLinks(searchHTML)
	if err != nil {
		return nil, fmt.Errorf("extract links: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(links)})
	}

	result := &Result{}
	var records []skillcorpus.IndexRecord

	for _, link := range links {
		pageHTML, err := r.Fetcher.Fetch(ctx, base+link)
		if err != nil {
			// A page that fails to fetch leaves no trace.
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: result.Saved + result.Skipped,
					Total:     len(links),
					Link:      link,
					Error:     err,
				})
			}
			continue
		}

		if err := r.Store.SaveRaw(ctx, link, pageHTML); err != nil {
			return nil, fmt.Errorf("save raw %s: %w", link, err)
		}

		text, err := r.Text.ExtractText(pageHTML)
		if err != nil {
			return nil, fmt.Errorf("extract text %s: %w", link, err)
		}

		if err := r.Store.SaveText(ctx, link, text); err != nil {
			return nil, fmt.Errorf("save text %s: %w", link, err)
		}

		records = append(records, skillcorpus.IndexRecord{
			Link:    link,
			TextLen: utf8.RuneCountInString(text),
		})
		result.Saved++

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: result.Saved + result.Skipped,
				Total:     len(links),
				Link:      link,
			})
		}
	}

	if err := r.Store.WriteIndex(ctx, records); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: result.Saved + result.Skipped,
			Total:     len(links),
		})
	}

	return result, nil
}
