package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWebSearcher struct {
	mock.Mock
}

func (m *MockWebSearcher) Search(ctx context.Context, query string) Outcome {
	args := m.Called(ctx, query)
	return args.Get(0).(Outcome)
}

func decodeBody(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		event          Event
		setupWeb       func(m *MockWebSearcher)
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, resp EventResponse)
	}{
		{
			name:           "preflight",
			event:          Event{HTTPMethod: http.MethodOptions},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp EventResponse) {
				assert.Empty(t, resp.Body)
				assert.Contains(t, resp.Headers["Access-Control-Allow-Methods"], "POST")
				assert.Equal(t, "Content-Type", resp.Headers["Access-Control-Allow-Headers"])
				assert.Equal(t, "86400", resp.Headers["Access-Control-Max-Age"])
				assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
			},
		},
		{
			name:           "get is rejected",
			event:          Event{HTTPMethod: http.MethodGet},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed",
			checkResponse: func(t *testing.T, resp EventResponse) {
				assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
				assert.NotContains(t, resp.Headers, "Content-Type")
			},
		},
		{
			name:           "missing method defaults to get",
			event:          Event{},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed",
		},
		{
			name:           "delete is rejected",
			event:          Event{HTTPMethod: http.MethodDelete, Body: `{"query":"x"}`},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed",
		},
		{
			name:           "missing query",
			event:          Event{HTTPMethod: http.MethodPost, Body: `{"type":"music"}`},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Query is required",
		},
		{
			name:           "empty query",
			event:          Event{HTTPMethod: http.MethodPost, Body: `{"query":""}`},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Query is required",
		},
		{
			name:           "empty body",
			event:          Event{HTTPMethod: http.MethodPost},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Query is required",
		},
		{
			name:           "invalid json",
			event:          Event{HTTPMethod: http.MethodPost, Body: `{query:`},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Query is required",
		},
		{
			name:           "music search",
			event:          Event{HTTPMethod: http.MethodPost, Body: `{"query":"jazz","type":"music"}`},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp EventResponse) {
				body := decodeBody(t, resp.Body)
				assert.Equal(t, "jazz", body["query"])
				assert.Equal(t, "music", body["type"])
				results := body["results"].([]interface{})
				require.Len(t, results, 5)
				for _, r := range results {
					item := r.(map[string]interface{})
					assert.Contains(t, item["url"], "jazz")
					assert.Equal(t, "YouTube", item["source"])
				}
			},
		},
		{
			name:           "image search",
			event:          Event{HTTPMethod: http.MethodPost, Body: `{"query":"sunset","type":"image"}`},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp EventResponse) {
				body := decodeBody(t, resp.Body)
				results := body["results"].([]interface{})
				require.Len(t, results, 8)
				for _, r := range results {
					assert.NotEmpty(t, r.(map[string]interface{})["thumbnail"])
				}
			},
		},
		{
			name:  "web search defaults type",
			event: Event{HTTPMethod: http.MethodPost, Body: `{"query":"golang"}`},
			setupWeb: func(m *MockWebSearcher) {
				m.On("Search", mock.Anything, "golang").Return(Ok([]Result{
					{Title: "Go", Snippet: "A language", URL: "https://go.dev", Source: "DuckDuckGo"},
				}))
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp EventResponse) {
				var body Response
				require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
				assert.Equal(t, "web", body.Type)
				require.Len(t, body.Results, 1)
				assert.Equal(t, "https://go.dev", body.Results[0].URL)
				assert.Equal(t, "application/json", resp.Headers["Content-Type"])
				assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
				assert.False(t, resp.IsBase64Encoded)
			},
		},
		{
			name:  "unknown type routes to web and is echoed",
			event: Event{HTTPMethod: http.MethodPost, Body: `{"query":"golang","type":"video"}`},
			setupWeb: func(m *MockWebSearcher) {
				m.On("Search", mock.Anything, "golang").Return(Degraded("golang", ErrNoResults))
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp EventResponse) {
				var body Response
				require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
				assert.Equal(t, "video", body.Type)
				assert.Equal(t, FallbackResults("golang"), body.Results)
			},
		},
		{
			name:  "degraded web search still answers ok",
			event: Event{HTTPMethod: http.MethodPost, Body: `{"query":"outage","type":"web"}`},
			setupWeb: func(m *MockWebSearcher) {
				m.On("Search", mock.Anything, "outage").Return(Degraded("outage", errors.New("connection reset")))
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp EventResponse) {
				var body Response
				require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
				assert.Equal(t, FallbackResults("outage"), body.Results)
			},
		},
		{
			name:           "lowercase method is rejected",
			event:          Event{HTTPMethod: "post", Body: `{"query":"a","type":"music"}`},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed",
		},
		{
			name:  "non-string type falls back to web",
			event: Event{HTTPMethod: http.MethodPost, Body: `{"query":"jazz","type":5}`},
			setupWeb: func(m *MockWebSearcher) {
				m.On("Search", mock.Anything, "jazz").Return(Ok([]Result{{Title: "Jazz"}}))
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp EventResponse) {
				var body Response
				require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
				assert.Equal(t, "jazz", body.Query)
				assert.Equal(t, "web", body.Type)
				assert.Equal(t, []Result{{Title: "Jazz"}}, body.Results)
			},
		},
		{
			name:  "null type falls back to web",
			event: Event{HTTPMethod: http.MethodPost, Body: `{"query":"jazz","type":null}`},
			setupWeb: func(m *MockWebSearcher) {
				m.On("Search", mock.Anything, "jazz").Return(Ok([]Result{{Title: "Jazz"}}))
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-string query is rejected",
			event:          Event{HTTPMethod: http.MethodPost, Body: `{"query":42}`},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Query is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			web := new(MockWebSearcher)
			if tt.setupWeb != nil {
				tt.setupWeb(web)
			}

			resp := NewHandler(web).Handle(context.Background(), tt.event)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody(t, resp.Body)["error"])
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
			web.AssertExpectations(t)
		})
	}
}

func TestHandler_StaticPathsAreIdempotent(t *testing.T) {
	web := new(MockWebSearcher)
	web.On("Search", mock.Anything, "q").Return(Degraded("q", ErrNoResults))
	h := NewHandler(web)

	for _, body := range []string{
		`{"query":"q","type":"music"}`,
		`{"query":"q","type":"image"}`,
		`{"query":"q"}`,
	} {
		first := h.Handle(context.Background(), Event{HTTPMethod: http.MethodPost, Body: body})
		second := h.Handle(context.Background(), Event{HTTPMethod: http.MethodPost, Body: body})
		assert.Equal(t, first.Body, second.Body, body)
	}
}

func TestHandler_ResultsCapped(t *testing.T) {
	many := make([]Result, 25)
	web := new(MockWebSearcher)
	web.On("Search", mock.Anything, "big").Return(Ok(many))

	results := NewHandler(web).Results(context.Background(), "big", TypeWeb)
	assert.Len(t, results, MaxResults)
}

func TestHandler_BodyKeepsSpecialCharacters(t *testing.T) {
	resp := NewHandler(new(MockWebSearcher)).Handle(context.Background(), Event{
		HTTPMethod: http.MethodPost,
		Body:       `{"query":"rock & roll","type":"music"}`,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Body, `"query":"rock & roll"`)
	assert.Contains(t, resp.Body, "rock%20%26%20roll")
}
