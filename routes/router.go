package routes

import (
	"healthmate/internal/controllers"
	"healthmate/internal/logger"
	"healthmate/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	FrontendURL string
	Tracing     bool

	// UploadDir is served under UploadURLPrefix when set.
	UploadURLPrefix string
	UploadDir       string

	RequireAuth gin.HandlerFunc

	Account *controllers.AccountController
	Chat    *controllers.ChatController
	Report  *controllers.ReportController
	Vitals  *controllers.VitalsController
	Health  *controllers.HealthController
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	if cfg.Tracing {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	router.Use(
		middleware.RequestLogger(cfg.Log),
		middleware.Recovery(cfg.Log),
		middleware.CORS(cfg.FrontendURL),
	)

	RegisterHealthRoutes(router, cfg.Health)
	RegisterAuthRoutes(router, cfg.Account, cfg.RequireAuth)
	RegisterChatRoutes(router, cfg.Chat, cfg.Report, cfg.RequireAuth)
	RegisterReportRoutes(router, cfg.Report, cfg.RequireAuth)
	RegisterVitalsRoutes(router, cfg.Vitals, cfg.RequireAuth)
	RegisterSwaggerRoutes(router)
	if cfg.UploadDir != "" && cfg.UploadURLPrefix != "" {
		RegisterUploadRoutes(router, cfg.UploadURLPrefix, cfg.UploadDir)
	}
	RegisterNotFound(router)
	return router
}
