package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderalerts/cmd"
	"orderalerts/internal/tracing"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const (
	serviceName     = "order-alerts"
	shutdownTimeout = 10 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.InitTracerProvider(serviceName, configs.JaegerEndpoint)
	if err != nil {
		logger.Error("Failed to initialize tracer provider", "error", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("Failed to shut down tracer provider", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(configs, logger)

	if configs.Scheduled() {
		err = runScheduled(ctx, &app, configs.HTTPPort, logger)
	} else {
		err = app.CreateOrderProcessingJob().Run(ctx)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Order processing failed", "error", err)
		return 1
	}
	return 0
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return configs
}

func runScheduled(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}

	e := app.CreateOpsServer()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "Ops server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		jobManager.StopAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
