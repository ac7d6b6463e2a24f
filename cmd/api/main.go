package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"book-agent/config"
	_ "book-agent/docs" // Swagger docs
	chatHTTP "book-agent/internal/chat/delivery/http"
	"book-agent/internal/chat/usecase"
	"book-agent/internal/httpserver"
	"book-agent/internal/responder"
	"book-agent/internal/retrieval"
	"book-agent/internal/router"
	"book-agent/pkg/gemini"
	"book-agent/pkg/identity"
	"book-agent/pkg/log"
	"book-agent/pkg/search"
)

// @title       Book Agent API
// @description Conversational question answering grounded in a book collection.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
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

	logger.Info(ctx, "Starting Book Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Search service: %s", cfg.Search.URL)

	// 3. Search credential
	var tokens *identity.Provider
	if cfg.Identity.StaticToken != "" {
		tokens = identity.NewStatic(cfg.Identity.StaticToken)
		logger.Info(ctx, "Using static search credential")
	} else {
		tokens, err = identity.NewAmbient(ctx, cfg.Identity.Audience)
		if err != nil {
			logger.Fatalf(ctx, "No search credential available (set AUTH_TOKEN or provide ambient identity): %v", err)
			return
		}
		logger.Infof(ctx, "Using ambient identity tokens (audience: %s)", cfg.Identity.Audience)
	}

	// 4. Retrieval
	searchClient := search.NewClient(cfg.Search.URL, tokens, time.Duration(cfg.Search.TimeoutSecs)*time.Second)
	retriever := retrieval.New(searchClient, retrieval.Config{
		CacheSize: cfg.Search.CacheSize,
		CacheTTL:  time.Duration(cfg.Search.CacheTTLSecs) * time.Second,
	}, logger)

	// 5. Responder
	var llm responder.Generator
	if cfg.Responder.Mode == responder.ModeLLM {
		llm = gemini.NewClient(cfg.Gemini.APIKey)
	}
	rsp, err := responder.New(cfg.Responder.Mode, llm, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize responder: %v", err)
		return
	}
	logger.Infof(ctx, "Responder mode: %s", rsp.Mode())

	// 6. Conversation store
	repo, availability, err := newConversationStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize conversation store: %v", err)
		return
	}
	if availability.Degraded {
		logger.Errorf(ctx, "Conversation store DEGRADED to %s: %s", availability.Backend, availability.Reason)
	} else {
		logger.Infof(ctx, "Conversation store backend: %s", availability.Backend)
	}

	// 7. Chat domain
	chatUC := usecase.New(logger, router.New(), retriever, rsp, repo, usecase.Limits{
		Direct:   cfg.Search.DirectLimit,
		Generate: cfg.Search.GenerateLimit,
	})
	chatHandler := chatHTTP.New(logger, chatUC)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		ChatHandler:  chatHandler,
		Availability: availability,
		RateLimit:    cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
