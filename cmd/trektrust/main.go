// Package main implements the trektrust CLI, the local front-end over the
// verification and review core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trektrust/trektrust-backend/config"
	"github.com/trektrust/trektrust-backend/internal/app/service"
	"github.com/trektrust/trektrust-backend/internal/app/workflow"
	"github.com/trektrust/trektrust-backend/internal/store"
	"github.com/trektrust/trektrust-backend/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "trektrust",
	Short: "Trek completion verification and review marketplace",
	Long: `TrekTrust verifies trek completion certificates and publishes
reviews tied to approved verifications.

Hikers submit certificates, administrators approve or reject them, and
approved hikers post one review per verification.`,
	SilenceUsage: true,
}

// app bundles the wired services for one command invocation.
type app struct {
	store         store.Store
	sessions      *service.SessionService
	verifications *service.VerificationService
	reviews       *service.ReviewService
}

// boot loads configuration, initializes logging and opens the configured
// snapshot store behind the resilient decorator.
func boot() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: true,
	})

	backend, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	st := store.NewResilient(backend)
	engine := workflow.NewEngine()

	return &app{
		store:         st,
		sessions:      service.NewSessionService(st),
		verifications: service.NewVerificationService(st, engine),
		reviews:       service.NewReviewService(st, engine),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close store")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
