package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/searchpro-api/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		deps             *types.Dependencies
		expectedProvider map[string]string
	}{
		{
			name: "provider configured",
			deps: &types.Dependencies{
				Provider: types.ProviderInfo{Name: "DuckDuckGo", BaseURL: "https://api.duckduckgo.com"},
			},
			expectedProvider: map[string]string{
				"status":  "configured",
				"name":    "DuckDuckGo",
				"baseUrl": "https://api.duckduckgo.com",
			},
		},
		{
			name:             "provider not configured",
			deps:             &types.Dependencies{},
			expectedProvider: map[string]string{"status": "not configured"},
		},
		{
			name:             "nil dependencies",
			deps:             nil,
			expectedProvider: map[string]string{"status": "not configured"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			// Execute
			Get(tt.deps)(c)

			// Assert
			assert.Equal(t, http.StatusOK, w.Code)

			var response types.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			assert.Equal(t, "ok", response.Status)
			_, err := time.Parse(time.RFC3339, response.Timestamp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedProvider, response.Provider)
		})
	}
}
