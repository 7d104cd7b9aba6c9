package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"movie-catalog-sync/models"
	"movie-catalog-sync/pipeline"
)

// ErrTitleNotFound means the catalog has no matching title; the enrichment
// flow stops before any metadata-API call is made.
var ErrTitleNotFound = errors.New("title not found in catalog")

// ErrNoTMDBMatch means the metadata API returned no search hit.
var ErrNoTMDBMatch = errors.New("no TMDB match for title")

type EnrichService struct {
	titles TitleStore
	tmdb   MetadataAPI
	logger *zap.Logger
}

func NewEnrichService(titles TitleStore, tmdb MetadataAPI, logger *zap.Logger) *EnrichService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrichService{
		titles: titles,
		tmdb:   tmdb,
		logger: logger,
	}
}

// EnrichResult reports what one enrichment wrote.
type EnrichResult struct {
	Title  *models.Title
	TMDBID int64
	Entry  models.ProviderEntry
}

// Enrich looks the title up in the catalog, resolves it against TMDB, and
// writes the region's canonical provider entry back onto the document. The
// update sets only tmdb.id and the one region path, so the operation is
// idempotent.
func (s *EnrichService) Enrich(ctx context.Context, title string, year int, region string) (*EnrichResult, error) {
	// Region keys are uppercase throughout the catalog; TMDB's response map
	// is keyed the same way.
	region = strings.ToUpper(region)

	doc, err := s.titles.FindByTitleAndYear(ctx, title, year)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrTitleNotFound
	}

	match, err := s.tmdb.SearchMovie(ctx, title, year)
	if err != nil {
		return nil, fmt.Errorf("search TMDB for %q (%d): %w", title, year, err)
	}
	if match == nil {
		return nil, ErrNoTMDBMatch
	}

	offer, err := s.tmdb.WatchProviders(ctx, match.ID, region)
	if err != nil {
		return nil, fmt.Errorf("fetch watch providers for tmdb id %d: %w", match.ID, err)
	}

	entry := pipeline.CanonicalProviderEntry(region, offer)
	if err := s.titles.AttachProviders(ctx, doc.ID, match.ID, entry); err != nil {
		return nil, err
	}

	s.logger.Info("catalog record enriched",
		zap.String("title", doc.PrimaryTitle),
		zap.String("tconst", doc.Tconst),
		zap.Int64("tmdb_id", match.ID),
		zap.String("region", region),
	)

	return &EnrichResult{
		Title:  doc,
		TMDBID: match.ID,
		Entry:  entry,
	}, nil
}

// RefreshByTMDBID re-fetches one region's providers and applies them to every
// catalog record already linked to the given TMDB id. Returns the number of
// modified documents.
func (s *EnrichService) RefreshByTMDBID(ctx context.Context, tmdbID int64, region string) (int64, models.ProviderEntry, error) {
	region = strings.ToUpper(region)

	offer, err := s.tmdb.WatchProviders(ctx, tmdbID, region)
	if err != nil {
		return 0, models.ProviderEntry{}, fmt.Errorf("fetch watch providers for tmdb id %d: %w", tmdbID, err)
	}

	entry := pipeline.CanonicalProviderEntry(region, offer)
	modified, err := s.titles.AttachProvidersByTMDBID(ctx, tmdbID, entry)
	if err != nil {
		return 0, models.ProviderEntry{}, err
	}

	s.logger.Info("providers refreshed by tmdb id",
		zap.Int64("tmdb_id", tmdbID),
		zap.String("region", region),
		zap.Int64("modified", modified),
	)
	return modified, entry, nil
}
