package search

import (
	"context"

	"github.com/killallgit/searchpro-api/internal/services/duckduckgo"
)

// AnswerFetcher fetches a raw instant answer from the provider
type AnswerFetcher interface {
	Query(ctx context.Context, query string) (*duckduckgo.Answer, error)
}

// WebSearcher produces web results, substituting the fallback set on failure
type WebSearcher interface {
	Search(ctx context.Context, query string) Outcome
}
