package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/webrequest.net/internal/core/services/form"
	"gitlab.com/webrequest.net/internal/core/services/validator"
	http2 "gitlab.com/webrequest.net/internal/http"
	"gitlab.com/webrequest.net/internal/render"
	"gitlab.com/webrequest.net/internal/schedulerengine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Set up graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting website request service", "storage", sysCfg.StorageConfig.Driver)

	// SECONDARY PORTS
	kv, closeStorage, err := setupStorage(ctx, sysCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up storage: %w", err)
	}
	defer closeStorage()

	rules, err := setupRules(sysCfg.FormConfig)
	if err != nil {
		return err
	}
	loc, err := setupLocation(sysCfg.DisplayConfig)
	if err != nil {
		return err
	}

	//services
	validatorSvc := validator.NewValidator(rules, logger)
	store := newSubmissionStore(kv, sysCfg, logger)
	session := form.NewSession(validatorSvc, store, logger, form.WithLatency(sysCfg.FormConfig.SubmitLatency))

	renderer, err := render.NewRenderer(loc)
	if err != nil {
		return err
	}

	drafts := schedulerengine.NewDraftEngine(sysCfg.DraftConfig, session, store, logger)
	if err := drafts.Restore(ctx); err != nil {
		logger.Warn("Failed to restore draft", "error", err)
	}

	//server
	serviceProvider := http2.NewServiceProvider(validatorSvc, store, store, session, renderer)
	httpServer := http2.NewServer(sysCfg.HTTPConfig.Port, sysCfg.HTTPConfig.ServiceName, *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		return err
	}
	if err := httpServer.Start(ctx); err != nil {
		return err
	}
	drafts.Start(ctx)

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	drafts.Wait()

	logger.Info("successfully shutdown server")
	return nil
}
