package types

import (
	"context"

	"github.com/killallgit/searchpro-api/internal/services/search"
)

// EventHandler answers HTTP-shaped search events
type EventHandler interface {
	Handle(ctx context.Context, event search.Event) search.EventResponse
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	SearchHandler EventHandler
	Provider      ProviderInfo
	Build         BuildInfo
}

// ProviderInfo describes the upstream instant answer provider
type ProviderInfo struct {
	Name    string
	BaseURL string
}

// BuildInfo carries version metadata set at build time
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
}
