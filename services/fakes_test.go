package services_test

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog-sync/models"
)

// fakeTitleStore backs the services with in-memory documents and records
// attach calls for assertions.
type fakeTitleStore struct {
	titles []models.Title
	rows   []models.TitleRow

	findErr error

	attachedID     primitive.ObjectID
	attachedTMDBID int64
	attachedEntry  *models.ProviderEntry

	bulkTMDBID   int64
	bulkEntry    *models.ProviderEntry
	bulkModified int64
}

func (f *fakeTitleStore) FindByTitleAndYear(_ context.Context, title string, year int) (*models.Title, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.titles {
		doc := &f.titles[i]
		if strings.EqualFold(doc.PrimaryTitle, title) && yearMatches(doc.StartYear, year) {
			return doc, nil
		}
	}
	return nil, nil
}

func yearMatches(v any, year int) bool {
	switch y := v.(type) {
	case int:
		return y == year
	case string:
		return y == strconv.Itoa(year)
	default:
		return false
	}
}

func (f *fakeTitleStore) FindMoviesSince(_ context.Context, minYear int) ([]models.TitleRow, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	// Numeric years honor the bound; oddly-typed years pass through, the
	// way a loosely-typed store would return them.
	var out []models.TitleRow
	for _, row := range f.rows {
		if y, ok := row.StartYear.(int); ok && y < minYear {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeTitleStore) AttachProviders(_ context.Context, id primitive.ObjectID, tmdbID int64, entry models.ProviderEntry) error {
	f.attachedID = id
	f.attachedTMDBID = tmdbID
	f.attachedEntry = &entry
	return nil
}

func (f *fakeTitleStore) AttachProvidersByTMDBID(_ context.Context, tmdbID int64, entry models.ProviderEntry) (int64, error) {
	f.bulkTMDBID = tmdbID
	f.bulkEntry = &entry
	return f.bulkModified, nil
}

// fakeRatingStore optionally fails every call to simulate a missing ratings
// collection.
type fakeRatingStore struct {
	ratings     []models.Rating
	unavailable bool
}

var errCollectionMissing = errors.New("ns not found")

func (f *fakeRatingStore) FindByTconst(_ context.Context, tconst string) (*models.Rating, error) {
	if f.unavailable {
		return nil, errCollectionMissing
	}
	for i := range f.ratings {
		if f.ratings[i].Tconst == tconst {
			return &f.ratings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRatingStore) FindAll(_ context.Context) ([]models.Rating, error) {
	if f.unavailable {
		return nil, errCollectionMissing
	}
	return f.ratings, nil
}

// fakeMetadataAPI scripts the TMDB responses and counts calls so tests can
// prove that a catalog miss never reaches the API.
type fakeMetadataAPI struct {
	match       *models.TMDBSearchMatch
	offer       models.TMDBRegionOffer
	searchErr   error
	providerErr error

	searchCalls   int
	providerCalls int
}

func (f *fakeMetadataAPI) SearchMovie(_ context.Context, _ string, _ int) (*models.TMDBSearchMatch, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.match, nil
}

func (f *fakeMetadataAPI) WatchProviders(_ context.Context, _ int64, _ string) (models.TMDBRegionOffer, error) {
	f.providerCalls++
	if f.providerErr != nil {
		return models.TMDBRegionOffer{}, f.providerErr
	}
	return f.offer, nil
}
