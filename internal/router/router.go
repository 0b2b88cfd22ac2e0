package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"promptpilot/internal/handler"
	"promptpilot/internal/middleware"
	"promptpilot/internal/service"
)

// Handlers bundles all route handlers for Setup.
type Handlers struct {
	Session    *handler.SessionHandler
	Catalog    *handler.CatalogHandler
	Prompt     *handler.PromptHandler
	Suggestion *handler.SuggestionHandler
	Export     *handler.ExportHandler
	Share      *handler.ShareHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(sessionSvc service.SessionService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public session bootstrap
	v1.POST("/sessions", h.Session.Create)

	// Protected routes - require a valid session token
	protected := v1.Group("")
	protected.Use(middleware.SessionMiddleware(sessionSvc))

	// Catalog routes
	protected.GET("/document-types", h.Catalog.ListDocumentTypes)
	protected.POST("/document-types", h.Catalog.CreateDocumentType)
	protected.DELETE("/document-types/:id", h.Catalog.DeleteDocumentType)
	protected.GET("/output-formats", h.Catalog.ListOutputFormats)

	// Prompt routes
	prompts := protected.Group("/prompts")
	prompts.POST("", h.Prompt.Generate)
	prompts.POST("/preview", h.Prompt.Preview)
	prompts.GET("", h.Prompt.List)
	prompts.GET("/export/csv", h.Export.ExportCSV)
	prompts.GET("/export/xlsx", h.Export.ExportXLSX)
	prompts.GET("/:id", h.Prompt.Get)
	prompts.DELETE("/:id", h.Prompt.Delete)
	prompts.POST("/:id/execute", h.Prompt.Execute)
	prompts.GET("/:id/download", h.Prompt.Download)
	prompts.POST("/:id/share", h.Share.Share)

	// Field suggestions
	protected.POST("/suggestions", h.Suggestion.Suggest)

	return r
}
