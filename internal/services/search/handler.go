package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/killallgit/searchpro-api/pkg/errors"
	"github.com/rs/zerolog"
)

// CORS header values shared by the handler and the HTTP middleware
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "Content-Type"
	MaxAge       = "86400"
)

const (
	msgQueryRequired    = "Query is required"
	msgMethodNotAllowed = "Method not allowed"
)

// PreflightHeaders returns the headers answered to a CORS preflight request
func PreflightHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  AllowOrigin,
		"Access-Control-Allow-Methods": AllowMethods,
		"Access-Control-Allow-Headers": AllowHeaders,
		"Access-Control-Max-Age":       MaxAge,
	}
}

// Handler dispatches search events to the web, music and image producers
type Handler struct {
	web WebSearcher
}

// NewHandler creates a search handler. web serves every type other than
// music and image.
func NewHandler(web WebSearcher) *Handler {
	return &Handler{web: web}
}

// Handle answers a single event. It never fails: every path ends in a
// well-formed response.
func (h *Handler) Handle(ctx context.Context, event Event) EventResponse {
	// Methods are matched case-sensitively; "post" is not POST.
	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	switch method {
	case http.MethodOptions:
		return EventResponse{
			StatusCode: http.StatusOK,
			Headers:    PreflightHeaders(),
			Body:       "",
		}
	case http.MethodPost:
		return h.dispatch(ctx, event.Body)
	default:
		return EventResponse{
			StatusCode: http.StatusMethodNotAllowed,
			Headers:    map[string]string{"Access-Control-Allow-Origin": AllowOrigin},
			Body:       encode(ErrorBody{Error: msgMethodNotAllowed}),
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, body string) EventResponse {
	req, err := decodeRequest(body)
	if err != nil {
		// An undecodable body is reported the same way as a missing query.
		zerolog.Ctx(ctx).Debug().Err(apperrors.InvalidInputError(err)).Msg("Failed to decode search request body")
	}

	if req.Query == "" {
		zerolog.Ctx(ctx).Debug().Err(apperrors.MissingFieldError("query")).Msg("Rejected search request")
		return jsonResponse(http.StatusBadRequest, ErrorBody{Error: msgQueryRequired})
	}
	if req.Type == "" {
		req.Type = TypeWeb
	}

	return jsonResponse(http.StatusOK, Response{
		Query:   req.Query,
		Type:    req.Type,
		Results: h.Results(ctx, req.Query, req.Type),
	})
}

// Results runs the producer selected by searchType. Unknown types are
// treated as web searches.
func (h *Handler) Results(ctx context.Context, query, searchType string) []Result {
	switch searchType {
	case TypeMusic:
		return MusicResults(query)
	case TypeImage:
		return ImageResults(query)
	}

	outcome := h.web.Search(ctx, query)
	if outcome.Degraded() {
		zerolog.Ctx(ctx).Warn().
			Err(outcome.Cause).
			Str("error_code", string(apperrors.GetCode(outcome.Cause))).
			Str("query", query).
			Msg("Web search degraded to fallback results")
	}

	results := outcome.Results
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// decodeRequest reads the query and type fields independently. A query that
// is not a string counts as missing; a type that is not a string falls back
// to web.
func decodeRequest(body string) (Request, error) {
	var req Request
	if strings.TrimSpace(body) == "" {
		return req, nil
	}

	var fields struct {
		Query json.RawMessage `json:"query"`
		Type  json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return req, err
	}

	if len(fields.Query) > 0 {
		if err := json.Unmarshal(fields.Query, &req.Query); err != nil {
			return Request{}, fmt.Errorf("query: %w", err)
		}
	}
	if len(fields.Type) > 0 {
		_ = json.Unmarshal(fields.Type, &req.Type)
	}
	return req, nil
}

func jsonResponse(status int, v any) EventResponse {
	return EventResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": AllowOrigin,
		},
		Body: encode(v),
	}
}

func encode(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return `{"error":"internal error"}`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
