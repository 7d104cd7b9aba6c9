package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog-sync/models"
)

// TitleStore is the catalog boundary as the services see it. Implemented by
// data_access.TitleRepository; tests substitute fakes.
type TitleStore interface {
	FindByTitleAndYear(ctx context.Context, title string, year int) (*models.Title, error)
	FindMoviesSince(ctx context.Context, minYear int) ([]models.TitleRow, error)
	AttachProviders(ctx context.Context, id primitive.ObjectID, tmdbID int64, entry models.ProviderEntry) error
	AttachProvidersByTMDBID(ctx context.Context, tmdbID int64, entry models.ProviderEntry) (int64, error)
}

// RatingStore is the optional ratings boundary. Its failures are absorbed by
// callers, never fatal to a report.
type RatingStore interface {
	FindByTconst(ctx context.Context, tconst string) (*models.Rating, error)
	FindAll(ctx context.Context) ([]models.Rating, error)
}

// MetadataAPI is the external movie-metadata boundary (TMDB).
type MetadataAPI interface {
	SearchMovie(ctx context.Context, title string, year int) (*models.TMDBSearchMatch, error)
	WatchProviders(ctx context.Context, movieID int64, region string) (models.TMDBRegionOffer, error)
}
