package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/searchpro-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    types.StatusOK,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Provider:  getProviderStatus(deps),
		}

		c.JSON(http.StatusOK, response)
	}
}

// getProviderStatus reports the configured upstream. The provider is not
// probed: a failing provider only degrades web results to the fallback set.
func getProviderStatus(deps *types.Dependencies) map[string]string {
	if deps == nil || deps.Provider.BaseURL == "" {
		return map[string]string{"status": "not configured"}
	}

	return map[string]string{
		"status":  "configured",
		"name":    deps.Provider.Name,
		"baseUrl": deps.Provider.BaseURL,
	}
}
