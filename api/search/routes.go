package search

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/searchpro-api/api/types"
)

// RegisterRoutes mounts the search handler for every method on path.
// Method handling (405, preflight) belongs to the handler itself.
func RegisterRoutes(router gin.IRoutes, path string, deps *types.Dependencies) {
	router.Any(path, Handle(deps))
}
