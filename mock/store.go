package mock

import (
	"context"

	"skillcorpus"
)

var _ skillcorpus.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is a mock implementation of skillcorpus.CorpusStore.
type CorpusStore struct {
	SaveRawFn    func(ctx context.Context, link, html string) error
	SaveTextFn   func(ctx context.Context, link, text string) error
	WriteIndexFn func(ctx context.Context, records []skillcorpus.IndexRecord) error
}

func (s *CorpusStore) SaveRaw(ctx context.Context, link, html string) error {
	return s.SaveRawFn(ctx, link, html)
}

func (s *CorpusStore) SaveText(ctx context.Context, link, text string) error {
	return s.SaveTextFn(ctx, link, text)
}

func (s *CorpusStore) WriteIndex(ctx context.Context, records []skillcorpus.IndexRecord) error {
	return s.WriteIndexFn(ctx, records)
}
