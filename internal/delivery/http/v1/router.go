package v1

import (
	"enquiry-relay/config"
	"enquiry-relay/internal/delivery/http/middleware"
	"enquiry-relay/internal/domain"
	"enquiry-relay/internal/usecase"
	"enquiry-relay/pkg/metrics"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
	Assets    fs.FS // entry page and /static files; nil disables both
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.HTTPMetrics())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins))
	r.Use(middleware.BodyLimit(deps.Config.PayloadLimit))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	if deps.HealthUC != nil {
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true, "checks": deps.HealthUC.Check(c.Request.Context())})
		})
	}

	NewContactHandler(api, deps.ContactUC)

	r.GET("/metrics", metrics.Handler())
	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Assets != nil {
		if static, err := fs.Sub(deps.Assets, "static"); err == nil {
			r.StaticFS("/static", http.FS(static))
		}
	}

	r.NoRoute(fallbackHandler(loadIndex(deps.Assets)))

	return r
}
