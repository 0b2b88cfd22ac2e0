package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"promptpilot/internal/config"
	"promptpilot/internal/email/noop"
	"promptpilot/internal/email/ses"
	"promptpilot/internal/handler"
	"promptpilot/internal/llm"
	"promptpilot/internal/llm/claude"
	"promptpilot/internal/llm/gemini"
	"promptpilot/internal/llm/openai"
	"promptpilot/internal/port"
	"promptpilot/internal/repository/postgres"
	"promptpilot/internal/router"
	"promptpilot/internal/service"
	s3storage "promptpilot/internal/storage/s3"
)

func registerProviders() {
	llm.RegisterProvider("gemini", func(cfg *config.LLMConfig, model string) (port.TextCompleter, error) {
		return gemini.NewClient(cfg, model), nil
	})
	llm.RegisterProvider("claude", func(cfg *config.LLMConfig, model string) (port.TextCompleter, error) {
		return claude.NewClient(cfg, model), nil
	})
	llm.RegisterProvider("openai", func(cfg *config.LLMConfig, model string) (port.TextCompleter, error) {
		return openai.NewClient(cfg, model), nil
	})
}

func newEmailSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
	default:
		return noop.NewNoopSender(), nil
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Best effort; production deployments configure the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	runRepo := postgres.NewPromptRunRepo(db)
	docTypeRepo := postgres.NewUserDocTypeRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize completion providers
	registerProviders()
	refiner, err := llm.NewCompleter(&cfg.LLM, cfg.LLM.RefinerModel)
	if err != nil {
		return fmt.Errorf("failed to initialize refiner: %w", err)
	}
	engineer, err := llm.NewCompleter(&cfg.LLM, cfg.LLM.EngineerModel)
	if err != nil {
		return fmt.Errorf("failed to initialize engineer: %w", err)
	}
	executor, err := llm.NewCompleter(&cfg.LLM, "")
	if err != nil {
		return fmt.Errorf("failed to initialize executor: %w", err)
	}

	emailSender, err := newEmailSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	engineerModel := cfg.LLM.EngineerModel
	if engineerModel == "" {
		engineerModel = cfg.LLM.DefaultModel
	}

	// Initialize services
	sessionSvc := service.NewSessionService(cfg.Session)
	catalogSvc := service.NewCatalogService(docTypeRepo)
	promptSvc := service.NewPromptService(service.PromptServiceDeps{
		RunRepo:       runRepo,
		Catalog:       catalogSvc,
		Refiner:       refiner,
		Engineer:      engineer,
		Executor:      executor,
		Storage:       s3Client,
		Bucket:        cfg.S3.Bucket,
		PresignExpiry: cfg.S3.PresignExpiry,
		EngineerModel: engineerModel,
	})
	suggestionSvc, err := service.NewSuggestionService(executor, cfg.Suggest.CacheSize)
	if err != nil {
		return fmt.Errorf("failed to initialize suggestion service: %w", err)
	}
	shareSvc := service.NewShareService(runRepo, emailSender)
	exportSvc := service.NewExportService(runRepo)

	// Initialize handlers
	handlers := router.Handlers{
		Session:    handler.NewSessionHandler(sessionSvc),
		Catalog:    handler.NewCatalogHandler(catalogSvc),
		Prompt:     handler.NewPromptHandler(promptSvc),
		Suggestion: handler.NewSuggestionHandler(suggestionSvc),
		Export:     handler.NewExportHandler(exportSvc),
		Share:      handler.NewShareHandler(shareSvc),
		Health:     handler.NewHealthHandler(db),
	}

	// Setup router
	r := router.Setup(sessionSvc, cfg.CORS.AllowedOrigins, handlers)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
