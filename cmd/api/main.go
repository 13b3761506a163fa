package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskbuster/config"
	_ "taskbuster/docs" // Swagger docs
	"taskbuster/internal/document"
	"taskbuster/internal/httpserver"
	"taskbuster/internal/intent"
	taskHTTP "taskbuster/internal/task/delivery/http"
	"taskbuster/internal/task/usecase"
	"taskbuster/pkg/hfinference"
	"taskbuster/pkg/log"
	"taskbuster/pkg/mailer"
)

// @title       TaskBuster API
// @description Natural-language task intake: intent resolution and dispatch to summarize, extract, email, chart and analyze actions.
// @version     1
// @host        localhost:5000
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

	logger.Info(ctx, "Starting TaskBuster...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. External clients
	hfClient, err := hfinference.New(hfinference.Config{
		APIToken:      cfg.HuggingFace.APIToken,
		BaseURL:       cfg.HuggingFace.BaseURL,
		ClassifyModel: cfg.HuggingFace.ClassifyModel,
		SummaryModel:  cfg.HuggingFace.SummaryModel,
		Timeout:       cfg.HuggingFace.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Hugging Face client: ", err)
		return
	}

	mail, err := mailer.New(mailer.Config{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		Recipient: cfg.Mail.Recipient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize mailer: ", err)
		return
	}

	// 4. Task domain
	resolver := intent.NewResolver(logger, hfClient, cfg.Intent.ConfidenceThreshold)
	loader := document.NewLoader(logger)
	taskUC := usecase.New(logger, resolver, loader, hfClient, mail)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		TaskHandler:       taskHandler,
		ClientOrigin:      cfg.Client.Origin,
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitWindow:   cfg.RateLimit.Window,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
