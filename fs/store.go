// Package fs provides file-based storage for the skill corpus.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"skillcorpus"
)

// Subdirectory and file names under the corpus base directory.
const (
	rawDir    = "raw"
	textDir   = "text"
	indexFile = "index.tsv"
)

// Slug converts a skill link to a filesystem-safe identifier.
// Example: /acme/widgets/typegen → acme__widgets__typegen
func Slug(link string) string {
	s := strings.Trim(link, "/")
	s = strings.ReplaceAll(s, "/", "__")
	return strings.ReplaceAll(s, ":", "-")
}

// Ensure Store implements skillcorpus.CorpusStore at compile time.
var _ skillcorpus.CorpusStore = (*Store)(nil)

// Store writes corpus artifacts under a base directory: raw HTML to raw/,
// extracted text to text/, and the index to index.tsv at the root.
// Directories are created on demand.
type Store struct {
	baseDir string
}

// NewStore creates a new Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// SaveRaw persists the raw HTML of the page at link verbatim.
func (s *Store) SaveRaw(ctx context.Context, link, html string) error {
	return s.write(rawDir, Slug(link)+".html", html)
}

// SaveText persists the extracted text of the page at link.
func (s *Store) SaveText(ctx context.Context, link, text string) error {
	return s.write(textDir, Slug(link)+".txt", text)
}

// WriteIndex writes one tab-separated row per record plus a trailing
// newline. Zero records produce a file holding a single newline.
func (s *Store) WriteIndex(ctx context.Context, records []skillcorpus.IndexRecord) error {
	var b strings.Builder
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rec.Link)
		b.WriteString("\t")
		b.WriteString(strconv.Itoa(rec.TextLen))
	}
	b.WriteString("\n")

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.baseDir, indexFile), []byte(b.String()), 0644)
}

func (s *Store) write(subdir, name, content string) error {
	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
}
