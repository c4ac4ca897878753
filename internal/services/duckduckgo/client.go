package duckduckgo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/killallgit/searchpro-api/pkg/errors"
)

var (
	// ErrUnexpectedStatus indicates the API answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected status from duckduckgo api")

	// ErrInvalidResponse indicates the API returned a payload that could not be decoded
	ErrInvalidResponse = errors.New("invalid response from duckduckgo api")
)

const (
	// ProviderName is the source label attached to provider results
	ProviderName = "DuckDuckGo"

	DefaultBaseURL   = "https://api.duckduckgo.com"
	DefaultUserAgent = "Mozilla/5.0"
	DefaultTimeout   = 10 * time.Second
)

// Config holds configuration for the DuckDuckGo client
type Config struct {
	BaseURL   string        // Default: https://api.duckduckgo.com
	UserAgent string        // Default: Mozilla/5.0
	Timeout   time.Duration // Default: 10s

	// HTTPClient overrides the client built from Timeout. Tests inject a
	// custom transport through it.
	HTTPClient *http.Client
}

// Client queries the DuckDuckGo instant answer API
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new DuckDuckGo API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
	}
}

// BaseURL returns the endpoint the client queries
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Query fetches the instant answer for a query. A single attempt is made.
func (c *Client) Query(ctx context.Context, query string) (*Answer, error) {
	url := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1", c.baseURL, Escape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalServiceError(ProviderName, fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, apperrors.ExternalServiceError(ProviderName, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)).
			WithDetail("status", resp.StatusCode)
	}

	var answer Answer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, apperrors.BadUpstreamError(ProviderName, fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}

	return &answer, nil
}

// Escape percent-encodes s for use in a URL. Unreserved characters and '/'
// pass through; everything else, including spaces, becomes %XX.
func Escape(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isUnreserved(ch) || ch == '/' {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[ch>>4])
		b.WriteByte(hex[ch&0x0F])
	}
	return b.String()
}

func isUnreserved(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	case ch == '-', ch == '_', ch == '.', ch == '~':
		return true
	}
	return false
}
