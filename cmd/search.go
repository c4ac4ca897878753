package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/killallgit/searchpro-api/internal/services/search"
	"github.com/spf13/cobra"
)

var searchType string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a search from the command line",
	Long: `Run a single search and print the JSON response body.

Example:
  searchpro-api search golang
  searchpro-api search "miles davis" --type music`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchType, "type", "t", search.TypeWeb, "search type (web, music, image)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg, cmd.ErrOrStderr())

	body, err := json.Marshal(search.Request{Query: args[0], Type: searchType})
	if err != nil {
		return err
	}

	deps := newDependencies(cfg)
	resp := deps.SearchHandler.Handle(logger.WithContext(cmd.Context()), search.Event{
		HTTPMethod: http.MethodPost,
		Body:       string(body),
	})

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("search failed with status %d: %s", resp.StatusCode, resp.Body)
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Body)
	return nil
}
