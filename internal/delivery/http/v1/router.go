package v1

import (
	"net/http"

	"ggenius-website/config"
	"ggenius-website/docs"
	"ggenius-website/internal/delivery/http/middleware"
	"ggenius-website/internal/domain"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	PageUC    domain.PageUsecase
	ContactUC domain.ContactUsecase
	HealthUC  domain.HealthUsecase
	StatsUC   domain.StatsUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(gin.Recovery())
	if cfg.Debug {
		r.Use(gin.Logger())
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.SecurityHeadersMiddleware(cfg.Debug))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.ErrorHandler(cfg.Debug))

	// Read-only assets
	r.Static("/static", cfg.StaticDir)

	NewPageHandler(r, deps.PageUC)
	NewContactHandler(r, deps.ContactUC, middleware.ContactRateLimitConfig(cfg.ContactRateLimit, cfg.ContactRateWindow()))
	NewPlatformHandler(r, deps.HealthUC, deps.StatsUC)

	// API docs stay out of the public navigation.
	docs.SwaggerInfo.Version = cfg.SiteVersion
	admin := r.Group("/admin")
	admin.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	admin.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
	})

	return r
}
