package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthmate/database"
	"healthmate/docs"
	"healthmate/internal/auth"
	"healthmate/internal/config"
	"healthmate/internal/controllers"
	"healthmate/internal/extract"
	"healthmate/internal/llm"
	"healthmate/internal/logger"
	"healthmate/internal/middleware"
	"healthmate/internal/observability"
	"healthmate/internal/repository"
	"healthmate/internal/services"
	"healthmate/internal/storage"
	"healthmate/routes"

	"github.com/gin-gonic/gin"
)

const (
	uploadURLPrefix = "/uploads"
	// extracted report text is capped before it is stored
	maxExtractedChars = 50000
	shutdownTimeout   = 10 * time.Second
)

// @title HealthMate API
// @version 1.0
// @description Personal health records, vitals tracking and an AI health assistant.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	envFile, loaded := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		// logger settings come from cfg, so this is the one place stderr is used directly
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		os.Stderr.WriteString("init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()
	if loaded {
		log.Info("loaded env file", "path", envFile)
	} else {
		log.Warn("no .env file found, using process environment")
	}

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	docs.SwaggerInfo.Title = "HealthMate API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:      cfg.OTelEnabled,
		ServiceName:  cfg.OTelServiceName,
		Environment:  cfg.Env,
		Version:      docs.SwaggerInfo.Version,
		OTLPEndpoint: cfg.OTelOTLPEndpoint,
		Insecure:     cfg.OTelInsecure,
	}, log)
	if err != nil {
		log.Fatal("failed to initialise tracing", "error", err)
	}

	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect to database", "driver", cfg.DB.Driver, "error", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to run database migrations", "error", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatal("failed to create token manager", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	reportRepo := repository.NewReportRepository(db)
	vitalsRepo := repository.NewVitalsRepository(db)

	store, err := newFileStore(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialise file storage", "mode", cfg.StorageMode, "error", err)
	}

	var serverLLM llm.Completer
	if client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL); err == nil {
		serverLLM = client
	} else {
		log.Warn("OPENAI_API_KEY not set; assistant replies use the fallback message unless a user key is configured")
	}
	geminiModel := cfg.GeminiModel
	userLLM := func(apiKey string) (llm.Completer, error) {
		return llm.NewGeminiClient(apiKey, geminiModel)
	}

	assistant := services.NewAssistantService(serverLLM, userLLM, log.With("component", "assistant"))
	chatService := services.NewChatService(chatRepo, assistant)
	reportService := services.NewReportService(
		reportRepo,
		store,
		extract.NewPDFExtractor(maxExtractedChars),
		assistant,
		cfg.MaxUploadBytes,
		log.With("component", "reports"),
	)
	statsService := services.NewVitalsStatsService(vitalsRepo)

	responder := controllers.NewResponder(cfg.IsDevelopment(), log)
	routerCfg := routes.RouterConfig{
		Log:         log,
		ServiceName: cfg.OTelServiceName,
		FrontendURL: cfg.FrontendURL,
		Tracing:     cfg.OTelEnabled,
		RequireAuth: middleware.AuthMiddleware(auth.NewVerifier(tokens, userRepo), log),
		Account:     controllers.NewAccountController(userRepo, tokens, responder),
		Chat:        controllers.NewChatController(chatRepo, chatService, responder),
		Report:      controllers.NewReportController(reportRepo, reportService, responder),
		Vitals:      controllers.NewVitalsController(vitalsRepo, statsService, responder),
		Health: controllers.NewHealthController(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
	}
	if cfg.StorageMode == config.StorageLocal {
		routerCfg.UploadURLPrefix = uploadURLPrefix
		routerCfg.UploadDir = cfg.UploadDir
	}

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        routes.NewRouter(routerCfg),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
		ErrorLog:       log.StdLog(),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HealthMate API listening",
			"port", cfg.Port,
			"env", cfg.Env,
			"storage", cfg.StorageMode,
			"docs", "http://localhost:"+cfg.Port+"/swagger/index.html",
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error("server stopped unexpectedly", "error", err)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received, draining connections")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := shutdownTracing(drainCtx); err != nil {
		log.Warn("failed to flush traces", "error", err)
	}
	if err := database.Close(db); err != nil {
		log.Warn("failed to close database", "error", err)
	}
	log.Info("server stopped")
}

func newFileStore(ctx context.Context, cfg *config.Config) (storage.FileStore, error) {
	if cfg.StorageMode == config.StorageGCS {
		return storage.NewGCSStore(ctx, cfg.GCSBucket)
	}
	return storage.NewLocalStore(cfg.UploadDir, uploadURLPrefix)
}
