package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/searchpro-api/api/health"
	"github.com/killallgit/searchpro-api/api/search"
	"github.com/killallgit/searchpro-api/api/types"
	"github.com/killallgit/searchpro-api/api/version"
	_ "github.com/killallgit/searchpro-api/docs/swagger"
)

// RegisterRoutes registers all API routes. A nil limiter leaves the search
// endpoints unthrottled.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limiter gin.HandlerFunc) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// The function-style entry point answers at the root, the versioned API
	// under /api/v1/search.
	root := engine.Group("/")
	v1 := engine.Group("/api/v1")
	if limiter != nil {
		root.Use(limiter)
		v1.Use(limiter)
	}
	search.RegisterRoutes(root, "/", deps)
	search.RegisterRoutes(v1, "/search", deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error: "The requested endpoint was not found",
			Path:  c.Request.URL.Path,
		})
	}
}
