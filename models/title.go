package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Title is one catalog document in the titles collection. The collection is
// loaded from IMDb-style dumps, so startYear/endYear may arrive as ints,
// strings, or the "\N" sentinel; they stay loosely typed here and are coerced
// by the pipeline before any comparison.
type Title struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Tconst        string             `bson:"tconst" json:"tconst"`
	TitleType     string             `bson:"titleType" json:"title_type"`
	PrimaryTitle  string             `bson:"primaryTitle" json:"primary_title"`
	OriginalTitle string             `bson:"originalTitle" json:"original_title,omitempty"`
	StartYear     any                `bson:"startYear" json:"start_year,omitempty"`
	EndYear       any                `bson:"endYear" json:"end_year,omitempty"`
	Genres        string             `bson:"genres" json:"genres"`
	TMDB          *TMDBInfo          `bson:"tmdb,omitempty" json:"tmdb,omitempty"`
}

// TMDBInfo is the enrichment sub-document written back onto a title.
// Providers values are kept untyped: historical writes used several shapes
// (raw TMDB objects, normalized name lists) and the normalizer accepts all
// of them.
type TMDBInfo struct {
	ID        int64          `bson:"id" json:"id"`
	Providers map[string]any `bson:"providers,omitempty" json:"providers,omitempty"`
}

// TitleRow is the projected shape used by the genre aggregation: only the
// fields the report needs, fetched in bulk.
type TitleRow struct {
	Tconst    string `bson:"tconst"`
	StartYear any    `bson:"startYear"`
	Genres    string `bson:"genres"`
}
