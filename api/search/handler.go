package search

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/searchpro-api/api/types"
	searchsvc "github.com/killallgit/searchpro-api/internal/services/search"
	"github.com/rs/zerolog"
)

// Handle bridges a live HTTP request to the search event handler
// @Summary      Search the web, music or images
// @Description  Runs a search for the given query. Web searches query the instant answer provider and fall back to a fixed result set when it fails; music and image searches return templated results.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body searchsvc.Request true "Search parameters"
// @Success      200 {object} searchsvc.Response "Search results"
// @Failure      400 {object} searchsvc.ErrorBody "Query is required"
// @Failure      405 {object} searchsvc.ErrorBody "Method not allowed"
// @Failure      413 {object} types.ErrorResponse "Request body too large"
// @Router       /api/v1/search [post]
func Handle(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.SearchHandler == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error: "Search service not available",
			})
			return
		}

		var body []byte
		if c.Request.Body != nil {
			var err error
			body, err = io.ReadAll(c.Request.Body)
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
						Error: "Request body too large",
					})
					return
				}
				zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("Failed to read request body")
			}
		}

		resp := deps.SearchHandler.Handle(c.Request.Context(), searchsvc.Event{
			HTTPMethod:            c.Request.Method,
			Body:                  string(body),
			Headers:               flatten(c.Request.Header),
			QueryStringParameters: flatten(c.Request.URL.Query()),
		})

		for key, value := range resp.Headers {
			c.Header(key, value)
		}
		c.Status(resp.StatusCode)
		if resp.Body != "" {
			_, _ = c.Writer.WriteString(resp.Body)
		}
	}
}

// flatten keeps the first value of each key, matching the single-value maps of
// a function runtime event.
func flatten(values map[string][]string) map[string]string {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]string, len(values))
	for key, v := range values {
		if len(v) > 0 {
			out[key] = v[0]
		}
	}
	return out
}
