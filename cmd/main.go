package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordrank/internal/config"
	"wordrank/internal/controller"
	"wordrank/internal/handler"
	"wordrank/internal/service/wordfreq"
	"wordrank/internal/util"
	"wordrank/pkg/mcp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	var appConfigPath = flag.String("config", "", "Path to app configuration file")
	var k = flag.Int("k", -1, "Number of words to return (default: app.default_k)")
	var filePath = flag.String("file", "", "Rank the lines of this file, - for stdin")
	var progress = flag.Bool("progress", false, "Show a progress bar while reading -file")
	var serve = flag.Bool("serve", false, "Start the HTTP and MCP servers")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *appConfigPath != "" {
		loaded, err := config.LoadConfig(*appConfigPath)
		if err != nil {
			log.Fatal("Failed to load configuration: ", err)
		}
		cfg = loaded
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Debug("Configuration loaded successfully", zap.Any("config", cfg))

	service := wordfreq.NewWordFreqService(cfg.App.DefaultK, logger)

	switch {
	case *serve:
		if err := runServers(cfg, service, logger); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	case *filePath != "":
		if err := rankFile(service, *filePath, resolveFlagK(service, *k), *progress, os.Stdout); err != nil {
			logger.Fatal("Failed to rank file", zap.String("file", *filePath), zap.Error(err))
		}
	default:
		RunDemo(service, os.Stdout)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(level)
	cfgZap.OutputPaths = cfg.OutputPaths
	return cfgZap.Build()
}

func resolveFlagK(service *wordfreq.WordFreqService, k int) int {
	if k < 0 {
		return service.ResolveK(nil)
	}
	return k
}

func rankFile(service *wordfreq.WordFreqService, path string, k int, progress bool, w io.Writer) error {
	in, err := util.OpenInput(path, progress)
	if err != nil {
		return err
	}
	report, err := service.AnalyzeReader(in, k)
	if closeErr := in.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	for _, wc := range report.Words {
		fmt.Fprintf(w, "%s\t%d\n", wc.Word, wc.Count)
	}
	return nil
}

func runServers(cfg *config.Config, service *wordfreq.WordFreqService, logger *zap.Logger) error {
	wordFreqController := controller.NewWordFreqController(service, cfg, logger)
	router := handler.SetupRouter(wordFreqController, logger)
	mcpServer := mcp.NewWordRankServer(service, cfg, logger)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("Starting server", zap.Int("port", cfg.App.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()
	go func() {
		if err := mcpServer.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown failed", zap.Error(err))
	}
	if err := mcpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("MCP server shutdown failed", zap.Error(err))
	}
	return runErr
}
