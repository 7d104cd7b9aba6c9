package data_access

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movie-catalog-sync/models"
)

type TitleRepository struct {
	collection *mongo.Collection
}

func NewTitleRepository(db *MongoDB, collectionName string) *TitleRepository {
	return &TitleRepository{
		collection: db.Collection(collectionName),
	}
}

// FindByTitleAndYear looks up a single movie by case-insensitive exact title
// and exact release year. Not-found is not an error.
func (r *TitleRepository) FindByTitleAndYear(ctx context.Context, title string, year int) (*models.Title, error) {
	filter := bson.M{
		"titleType": "movie",
		"primaryTitle": primitive.Regex{
			Pattern: fmt.Sprintf("^%s$", regexp.QuoteMeta(title)),
			Options: "i",
		},
		"startYear": year,
	}

	var doc models.Title
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find title %q (%d): %w", title, year, err)
	}
	return &doc, nil
}

// FindMoviesSince returns all movie titles with startYear >= minYear,
// projected down to the fields the genre aggregation needs.
func (r *TitleRepository) FindMoviesSince(ctx context.Context, minYear int) ([]models.TitleRow, error) {
	filter := bson.M{
		"titleType": "movie",
		"startYear": bson.M{"$gte": minYear},
	}
	projection := options.Find().SetProjection(bson.M{
		"_id":       0,
		"tconst":    1,
		"startYear": 1,
		"genres":    1,
	})

	cursor, err := r.collection.Find(ctx, filter, projection)
	if err != nil {
		return nil, fmt.Errorf("find movies since %d: %w", minYear, err)
	}
	defer cursor.Close(ctx)

	var rows []models.TitleRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode movie rows: %w", err)
	}
	return rows, nil
}

// AttachProviders sets tmdb.id and one region's provider entry on a single
// document. Only those two paths are touched; other regions and all other
// fields stay as they are, so re-applying the same entry is a no-op.
func (r *TitleRepository) AttachProviders(ctx context.Context, id primitive.ObjectID, tmdbID int64, entry models.ProviderEntry) error {
	update := bson.M{
		"$set": bson.M{
			"tmdb.id": tmdbID,
			fmt.Sprintf("tmdb.providers.%s", entry.Region): entry,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("attach providers to %s: %w", id.Hex(), err)
	}
	return nil
}

// AttachProvidersByTMDBID applies the same partial update to every document
// already carrying the given tmdb.id. Backfill path for refreshing provider
// data without a title lookup.
func (r *TitleRepository) AttachProvidersByTMDBID(ctx context.Context, tmdbID int64, entry models.ProviderEntry) (int64, error) {
	update := bson.M{
		"$set": bson.M{
			fmt.Sprintf("tmdb.providers.%s", entry.Region): entry,
		},
	}
	res, err := r.collection.UpdateMany(ctx, bson.M{"tmdb.id": tmdbID}, update)
	if err != nil {
		return 0, fmt.Errorf("attach providers by tmdb id %d: %w", tmdbID, err)
	}
	return res.ModifiedCount, nil
}

// InsertTitles bulk-loads catalog documents, used by the import command.
func (r *TitleRepository) InsertTitles(ctx context.Context, titles []models.Title) (int, error) {
	if len(titles) == 0 {
		return 0, nil
	}
	docs := make([]any, len(titles))
	for i := range titles {
		docs[i] = titles[i]
	}
	res, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert titles: %w", err)
	}
	return len(res.InsertedIDs), nil
}
