package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"movie-catalog-sync/models"
	"movie-catalog-sync/pipeline"
)

type ReportService struct {
	titles  TitleStore
	ratings RatingStore
	logger  *zap.Logger
}

func NewReportService(titles TitleStore, ratings RatingStore, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		titles:  titles,
		ratings: ratings,
		logger:  logger,
	}
}

// TitleSummary builds the single-title report row: catalog fields, the
// title's rating if the ratings collection has one, and the normalized
// provider list for the region. A failing ratings collection degrades to an
// absent rating, not an error.
func (s *ReportService) TitleSummary(ctx context.Context, title string, year int, region string) (*models.TitleSummary, error) {
	// Stored provider entries are keyed by uppercase region code.
	region = strings.ToUpper(region)

	doc, err := s.titles.FindByTitleAndYear(ctx, title, year)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrTitleNotFound
	}

	var avgRating *float64
	if doc.Tconst != "" {
		rating, err := s.ratings.FindByTconst(ctx, doc.Tconst)
		if err != nil {
			s.logger.Warn("ratings collection unavailable, continuing without rating",
				zap.String("tconst", doc.Tconst),
				zap.Error(err),
			)
		} else if rating != nil {
			avgRating = rating.AverageRating
		}
	}

	var rawProviders any
	if doc.TMDB != nil {
		rawProviders = doc.TMDB.Providers[region]
	}

	return &models.TitleSummary{
		PrimaryTitle: doc.PrimaryTitle,
		StartYear:    pipeline.CoerceYear(doc.StartYear),
		Genres:       doc.Genres,
		AvgRating:    avgRating,
		Providers:    pipeline.NormalizeProviders(rawProviders),
		Region:       region,
	}, nil
}

// AverageRatingByGenre runs the genre aggregation over all movies released in
// or after minYear. When the ratings collection is unavailable the report is
// computed over an all-absent rating column, which yields no rows rather
// than failing.
func (s *ReportService) AverageRatingByGenre(ctx context.Context, minYear int) (*models.GenreReport, error) {
	titles, err := s.titles.FindMoviesSince(ctx, minYear)
	if err != nil {
		return nil, err
	}

	// Coerce years before aggregating: startYear can still come back as a
	// digit string or sentinel depending on how the dump was loaded.
	rows := make([]models.TitleRow, 0, len(titles))
	for _, t := range titles {
		if y := pipeline.CoerceYear(t.StartYear); y != nil && *y >= minYear {
			rows = append(rows, t)
		}
	}

	ratings, err := s.ratings.FindAll(ctx)
	if err != nil {
		s.logger.Warn("ratings collection unavailable, aggregating without ratings",
			zap.Error(err),
		)
		ratings = nil
	}

	return &models.GenreReport{
		MinYear:    minYear,
		TitleCount: len(rows),
		Rows:       pipeline.AverageRatingByGenre(rows, ratings),
	}, nil
}
