package search

import (
	"context"
	"errors"

	"github.com/killallgit/searchpro-api/internal/services/duckduckgo"
)

// ErrNoResults indicates the provider answered but nothing in the answer was usable
var ErrNoResults = errors.New("provider returned no usable results")

const (
	defaultMaxRelatedTopics = 8
	maxTitleLength          = 100
)

// Outcome is the result of a web search. It is either Ok, carrying the
// provider's results, or Degraded, carrying the fallback set and the cause.
type Outcome struct {
	Results []Result
	Cause   error

	degraded bool
}

// Ok wraps results produced by the provider
func Ok(results []Result) Outcome {
	return Outcome{Results: results}
}

// Degraded substitutes the fallback set for query and records why
func Degraded(query string, cause error) Outcome {
	return Outcome{
		Results:  FallbackResults(query),
		Cause:    cause,
		degraded: true,
	}
}

// Degraded reports whether the fallback set was substituted
func (o Outcome) Degraded() bool {
	return o.degraded
}

// WebProducer turns instant answers into results and applies the fallback policy
type WebProducer struct {
	fetcher          AnswerFetcher
	maxRelatedTopics int
	maxResults       int
}

// WebOption configures a WebProducer
type WebOption func(*WebProducer)

// WithMaxRelatedTopics sets how many leading related topics are considered
func WithMaxRelatedTopics(n int) WebOption {
	return func(p *WebProducer) {
		if n >= 0 {
			p.maxRelatedTopics = n
		}
	}
}

// WithMaxResults sets the final result cap. Values above MaxResults are clamped.
func WithMaxResults(n int) WebOption {
	return func(p *WebProducer) {
		if n > 0 && n <= MaxResults {
			p.maxResults = n
		}
	}
}

// NewWebProducer creates a web producer backed by fetcher
func NewWebProducer(fetcher AnswerFetcher, opts ...WebOption) *WebProducer {
	p := &WebProducer{
		fetcher:          fetcher,
		maxRelatedTopics: defaultMaxRelatedTopics,
		maxResults:       MaxResults,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Search queries the provider once. Any failure, or an answer with nothing
// usable in it, yields the fallback set.
func (p *WebProducer) Search(ctx context.Context, query string) Outcome {
	answer, err := p.fetcher.Query(ctx, query)
	if err != nil {
		return Degraded(query, err)
	}
	if answer == nil {
		return Degraded(query, ErrNoResults)
	}

	results := FromAnswer(query, answer, p.maxRelatedTopics)
	if len(results) == 0 {
		return Degraded(query, ErrNoResults)
	}

	if len(results) > p.maxResults {
		results = results[:p.maxResults]
	}
	return Ok(results)
}

// FromAnswer maps an instant answer to results: the abstract first, if any,
// then up to maxRelated related topics.
func FromAnswer(query string, answer *duckduckgo.Answer, maxRelated int) []Result {
	var results []Result

	if answer.AbstractText != "" {
		results = append(results, Result{
			Title:   valueOr(answer.Heading, query),
			Snippet: answer.AbstractText,
			URL:     valueOr(answer.AbstractURL, "#"),
			Source:  valueOr(answer.AbstractSource, duckduckgo.ProviderName),
		})
	}

	for _, topic := range answer.Topics(maxRelated) {
		text := *topic.Text
		results = append(results, Result{
			Title:   truncateRunes(text, maxTitleLength),
			Snippet: text,
			URL:     valueOr(topic.FirstURL, "#"),
			Source:  duckduckgo.ProviderName,
		})
	}

	return results
}

// valueOr substitutes def only for an absent key; a present empty string is kept.
func valueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
