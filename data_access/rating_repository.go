package data_access

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movie-catalog-sync/models"
)

// RatingRepository reads the optional ratings collection. The collection may
// be missing entirely; callers absorb errors and degrade to "no rating data"
// rather than failing a report.
type RatingRepository struct {
	collection *mongo.Collection
}

func NewRatingRepository(db *MongoDB, collectionName string) *RatingRepository {
	return &RatingRepository{
		collection: db.Collection(collectionName),
	}
}

// FindByTconst returns the rating for one title, or nil when the title has
// no rating record.
func (r *RatingRepository) FindByTconst(ctx context.Context, tconst string) (*models.Rating, error) {
	projection := options.FindOne().SetProjection(bson.M{
		"_id":           0,
		"averageRating": 1,
		"numVotes":      1,
		"tconst":        1,
	})

	var rating models.Rating
	err := r.collection.FindOne(ctx, bson.M{"tconst": tconst}, projection).Decode(&rating)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find rating for %s: %w", tconst, err)
	}
	return &rating, nil
}

// FindAll returns every rating record, projected to tconst and averageRating.
func (r *RatingRepository) FindAll(ctx context.Context) ([]models.Rating, error) {
	projection := options.Find().SetProjection(bson.M{
		"_id":           0,
		"tconst":        1,
		"averageRating": 1,
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, projection)
	if err != nil {
		return nil, fmt.Errorf("find ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("decode ratings: %w", err)
	}
	return ratings, nil
}

// InsertRatings bulk-loads rating documents, used by the import command.
func (r *RatingRepository) InsertRatings(ctx context.Context, ratings []models.Rating) (int, error) {
	if len(ratings) == 0 {
		return 0, nil
	}
	docs := make([]any, len(ratings))
	for i := range ratings {
		docs[i] = ratings[i]
	}
	res, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert ratings: %w", err)
	}
	return len(res.InsertedIDs), nil
}
