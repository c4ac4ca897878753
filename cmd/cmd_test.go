package cmd

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/killallgit/searchpro-api/internal/services/search"
	"github.com/killallgit/searchpro-api/pkg/config"
)

type result struct {
	stdout string
	stderr string
}

// executeCommand runs the root command with fresh flag state and a config
// built only from defaults and environment overrides.
func executeCommand(t *testing.T, ctx context.Context, stdin io.Reader, args ...string) (result, error) {
	t.Helper()

	serverHost, serverPort = "", 0
	eventFile = ""
	searchType = search.TypeWeb

	originalPath := config.DefaultConfigPath
	config.DefaultConfigPath = filepath.Join(t.TempDir(), "settings.yaml")
	config.Reset()
	t.Cleanup(func() {
		config.DefaultConfigPath = originalPath
		config.Reset()
	})

	if ctx == nil {
		ctx = context.Background()
	}

	root := NewRootCmd()
	// Subcommands keep the first context they were run with
	if sub, _, err := root.Find(args); err == nil && sub != root {
		sub.SetContext(ctx)
	}
	root.SetContext(ctx)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(stdin)
	root.SetArgs(args)

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String()}, err
}
