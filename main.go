package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nijaru/yt-comments/comments"
	"github.com/nijaru/yt-comments/config"
	"github.com/nijaru/yt-comments/handlers"
	"github.com/nijaru/yt-comments/logger"
	"github.com/nijaru/yt-comments/middleware"
	"github.com/nijaru/yt-comments/summarize"
	"github.com/sirupsen/logrus"
)

func serveIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "./static/index.html")
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("No .env file loaded")
	}

	cfg := config.LoadConfig()
	if err := config.ValidateConfig(cfg); err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	if err := logger.Init(cfg.LogDir, cfg.Debug); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize logger")
	}

	source, err := comments.NewYouTubeSource(context.Background(), cfg.YouTubeAPIKey)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create YouTube comment source")
	}

	handlers.InitHandlers(
		cfg,
		comments.NewService(source),
		summarize.NewService(summarize.NewGroqClient(cfg.GroqBaseURL), summarize.Config{
			CommentMaxLength: cfg.CommentMaxLength,
			MaxTokens:        cfg.SummaryMaxTokens,
			Temperature:      cfg.SummaryTemperature,
		}),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/", serveIndex)
	mux.HandleFunc("/health", handlers.HealthCheckHandler)
	mux.HandleFunc("/api/analyze", handlers.AnalyzeHandler)
	mux.HandleFunc("/api/report", handlers.ReportHandler)
	mux.HandleFunc("/api/report/export", handlers.ExportHandler)
	mux.HandleFunc("/api/reset", handlers.ResetHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.LoggingMiddleware(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logrus.WithField("port", cfg.ServerPort).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Could not start server")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop

	logrus.Info("Shutting down the server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("Server shutdown failed")
	}
}
