package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"broadwaylounge/internal/api"
	"broadwaylounge/internal/config"
	"broadwaylounge/internal/logging"
	"broadwaylounge/internal/service"
	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	logging.Setup()

	cfg, err := config.FromEnv()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	renderer, err := service.NewRenderer(cfg.TemplatesDir)
	if err != nil {
		logging.Fatal("failed to load page templates", "dir", cfg.TemplatesDir, "error", err)
	}

	var sender service.Sender
	switch cfg.Mail.Driver {
	case config.DriverSendGrid:
		sender = service.NewSendGridSender(cfg.Mail)
	default:
		sender = service.NewSMTPSender(cfg.Mail)
		if cfg.Mail.Password == "" {
			slog.Warn("HOST_PASSWORD empty, SMTP AUTH disabled")
		}
	}
	mailSvc := service.NewMailService(sender, cfg.Mail)

	pageHandler := api.NewPageHandler(renderer)
	formHandler := api.NewFormHandler(mailSvc)
	router := api.NewRouter(pageHandler, formHandler, cfg.StaticDir)

	refresh := service.NewRefreshJob(renderer)
	if cfg.TemplateRefresh != "" {
		if err := refresh.Start(cfg.TemplateRefresh); err != nil {
			logging.Fatal("invalid TEMPLATE_REFRESH", "schedule", cfg.TemplateRefresh, "error", err)
		}
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.LoggingHandler(os.Stdout, router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "mail_driver", cfg.Mail.Driver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}

	refresh.Stop()
	// Requests are done; drain whatever mail is still queued.
	mailSvc.Close()
}
