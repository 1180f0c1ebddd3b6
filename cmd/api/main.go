package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tecnofit-assistant/config"
	_ "tecnofit-assistant/docs" // Swagger docs
	chatRepo "tecnofit-assistant/internal/chat/repository"
	"tecnofit-assistant/internal/chat/usecase"
	"tecnofit-assistant/internal/httpserver"
	"tecnofit-assistant/internal/knowledge"
	"tecnofit-assistant/internal/lead"
	"tecnofit-assistant/internal/router"
	"tecnofit-assistant/internal/telemetry"
	"tecnofit-assistant/pkg/langfuse"
	"tecnofit-assistant/pkg/llmprovider"
	"tecnofit-assistant/pkg/log"
)

// @title       Tecnofit Assistant API
// @description Conversational assistant that routes messages to FAQ, sales, and general branches, with lead capture.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real environments export variables directly.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Tecnofit Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "FAQ knowledge base: %s", cfg.Knowledge.FAQPath)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// 4. Telemetry (optional)
	var tracer telemetry.Tracer = telemetry.NopTracer{}
	if cfg.Langfuse.Enabled() {
		client, lfErr := langfuse.NewClient(langfuse.Config{
			Host:      cfg.Langfuse.Host,
			PublicKey: cfg.Langfuse.PublicKey,
			SecretKey: cfg.Langfuse.SecretKey,
		})
		if lfErr != nil {
			logger.Warnf(ctx, "Langfuse not available (optional): %v", lfErr)
		} else {
			tracer = telemetry.NewLangfuseTracer(client, logger)
			logger.Info(ctx, "Langfuse telemetry enabled")
		}
	} else {
		logger.Info(ctx, "Langfuse telemetry disabled (no credentials)")
	}
	llm := telemetry.NewObservedGenerator(manager, tracer)

	// 5. Chat domain
	semanticRouter := router.New(llm, logger)
	extractor := lead.New(llm, logger)
	faqStore := knowledge.New(cfg.Knowledge.FAQPath, logger)
	repo := chatRepo.NewMemory(cfg.Chat.MaxConversations, parseDuration(cfg.Chat.TTL, chatRepo.DefaultTTL))

	chatUC := usecase.New(logger, llm, semanticRouter, extractor, faqStore, repo, tracer, cfg.Chat.HistoryLimit)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		ChatUseCase: chatUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
