package cmd

import (
	"fmt"
	"io"

	"github.com/killallgit/searchpro-api/api/types"
	"github.com/killallgit/searchpro-api/internal/services/duckduckgo"
	"github.com/killallgit/searchpro-api/internal/services/search"
	"github.com/killallgit/searchpro-api/pkg/config"
	"github.com/killallgit/searchpro-api/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// loadConfig initializes configuration for commands that need it
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the logger from config, letting the persistent log flags
// win when they were set explicitly.
func newLogger(cmd *cobra.Command, cfg *config.Config, out io.Writer) zerolog.Logger {
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		JSON:   cfg.Logging.JSON(),
		Output: out,
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		opts.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("json-logs") {
		opts.JSON, _ = flags.GetBool("json-logs")
	}

	return logging.New(opts)
}

// newDependencies wires the provider client, the web producer and the search
// handler.
func newDependencies(cfg *config.Config) *types.Dependencies {
	client := duckduckgo.NewClient(duckduckgo.Config{
		BaseURL:   cfg.Search.BaseURL,
		UserAgent: cfg.Search.UserAgent,
		Timeout:   cfg.Search.Timeout,
	})

	web := search.NewWebProducer(client,
		search.WithMaxRelatedTopics(cfg.Search.MaxRelatedTopics),
		search.WithMaxResults(cfg.Search.MaxResults),
	)

	return &types.Dependencies{
		SearchHandler: search.NewHandler(web),
		Provider: types.ProviderInfo{
			Name:    duckduckgo.ProviderName,
			BaseURL: client.BaseURL(),
		},
		Build: types.BuildInfo{
			Version:   Version,
			GitCommit: GitCommit,
			BuildTime: BuildTime,
		},
	}
}
