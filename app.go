package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"movie-catalog-sync/config"
	"movie-catalog-sync/data_access"
	"movie-catalog-sync/services"
)

// app wires configuration, the store, and the services for one command run.
// Everything is constructed explicitly and passed down; nothing lives in
// package-level state.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	mongodb *data_access.MongoDB

	titleRepo  *data_access.TitleRepository
	ratingRepo *data_access.RatingRepository

	enrichService *services.EnrichService
	reportService *services.ReportService
}

// newApp builds the full dependency graph. Commands that call the metadata
// API pass requireAPIKey so a missing credential fails before any I/O.
func newApp(requireAPIKey bool) (*app, error) {
	cfg := config.Load()

	if requireAPIKey {
		if err := cfg.RequireTMDBKey(); err != nil {
			return nil, err
		}
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	titleRepo := data_access.NewTitleRepository(mongodb, cfg.TitlesCollection)
	ratingRepo := data_access.NewRatingRepository(mongodb, cfg.RatingsCollection)
	tmdbClient := data_access.NewTMDBClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL)

	return &app{
		cfg:           cfg,
		logger:        logger,
		mongodb:       mongodb,
		titleRepo:     titleRepo,
		ratingRepo:    ratingRepo,
		enrichService: services.NewEnrichService(titleRepo, tmdbClient, logger),
		reportService: services.NewReportService(titleRepo, ratingRepo, logger),
	}, nil
}

func (a *app) Close(ctx context.Context) {
	if err := a.mongodb.Close(ctx); err != nil {
		a.logger.Warn("close MongoDB connection", zap.Error(err))
	}
	_ = a.logger.Sync()
}
