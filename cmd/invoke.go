package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/killallgit/searchpro-api/internal/services/search"
	"github.com/spf13/cobra"
)

var eventFile string

// invokeCmd represents the invoke command
var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Handle a single function-runtime event",
	Long: `Read an HTTP-shaped event as JSON and print the handler's response.

The event carries httpMethod and body fields; the response carries
statusCode, headers, body and isBase64Encoded.

Example:
  echo '{"httpMethod":"POST","body":"{\"query\":\"golang\"}"}' | searchpro-api invoke
  searchpro-api invoke --file event.json`,
	Args: cobra.NoArgs,
	RunE: runInvoke,
}

func init() {
	rootCmd.AddCommand(invokeCmd)

	invokeCmd.Flags().StringVarP(&eventFile, "file", "f", "", "read the event from a file instead of stdin")
}

func runInvoke(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg, cmd.ErrOrStderr())

	var in io.Reader = cmd.InOrStdin()
	if eventFile != "" {
		f, err := os.Open(eventFile)
		if err != nil {
			return fmt.Errorf("failed to open event file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var event search.Event
	if err := json.NewDecoder(in).Decode(&event); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	deps := newDependencies(cfg)
	resp := deps.SearchHandler.Handle(logger.WithContext(cmd.Context()), event)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}
