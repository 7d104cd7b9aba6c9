package models

// Rating is one document in the ratings collection, keyed by the same tconst
// as the titles collection. Not every title has one.
type Rating struct {
	Tconst        string   `bson:"tconst" json:"tconst"`
	AverageRating *float64 `bson:"averageRating,omitempty" json:"average_rating,omitempty"`
	NumVotes      int      `bson:"numVotes,omitempty" json:"num_votes,omitempty"`
}
