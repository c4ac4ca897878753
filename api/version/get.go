package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/searchpro-api/api/types"
)

// Name is reported by the version endpoint
const Name = "SearchPro API"

// Get handles version requests
// @Summary      Build information
// @Tags         version
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       /version [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var build types.BuildInfo
		if deps != nil {
			build = deps.Build
		}
		if build.Version == "" {
			build.Version = "dev"
		}

		c.JSON(http.StatusOK, types.VersionResponse{
			Name:      Name,
			Version:   build.Version,
			GitCommit: build.GitCommit,
			BuildTime: build.BuildTime,
		})
	}
}
