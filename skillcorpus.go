// Package skillcorpus refreshes a local research corpus of skill pages.
// It queries a skill registry's search page, extracts the result links,
// fetches each linked page, extracts its readable text, and persists the
// raw HTML, the text, and a tab-separated index to disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package skillcorpus
