package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/handtracking3d/handtracking-api/internal/server/docs" // registers the swagger spec
	"github.com/handtracking3d/handtracking-api/internal/server/handlers/api"
	"github.com/handtracking3d/handtracking-api/internal/server/handlers/health"
	"github.com/handtracking3d/handtracking-api/internal/server/middlewares"
)

//go:generate swag init -g routes.go -o docs --outputTypes go,json,yaml --parseInternal

// Annotations for Swagger docs generation. Keep title, description and
// version in sync with the version package.
//
//	@title			HandTracking 3D Pro API
//	@version		1.0.0
//	@description	Backend API for hand tracking app (health check only)
//	@BasePath		/
func SetupRoutes(config *Config) http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	healthH := health.New()

	r.Use(middlewares.Logger())
	r.Use(gin.Recovery())
	r.Use(middlewares.SecureHeaders(config.HTTP.TLSEnabled()))
	r.Use(middlewares.CORS(config.CORS.AllowOrigins))
	r.Use(middlewares.GZIP())
	if config.HTTP.RateLimit != "" {
		r.Use(middlewares.RateLimiter(config.HTTP.RateLimit))
	}

	r.GET("/", healthH.Index)
	r.GET("/api/health", healthH.Health)

	if config.HTTP.Swagger {
		slog.Info("swagger enabled", "path", "/swagger/index.html")
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		api.AbortWithError(c, http.StatusNotFound, api.CodeNotFound, errors.New("not found"))
	})

	r.NoMethod(func(c *gin.Context) {
		api.AbortWithError(c, http.StatusMethodNotAllowed, api.CodeMethodNotAllowed, errors.New("method not allowed"))
	})

	return r.Handler()
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
