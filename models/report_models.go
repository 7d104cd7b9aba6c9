package models

// TitleSummary is the single-title report row: catalog fields plus rating and
// the normalized provider list for one region. AvgRating stays a pointer so a
// missing rating renders blank, never as zero.
type TitleSummary struct {
	PrimaryTitle string   `json:"primary_title"`
	StartYear    *int     `json:"start_year"`
	Genres       string   `json:"genres"`
	AvgRating    *float64 `json:"avg_rating"`
	Providers    []string `json:"streaming_providers"`
	Region       string   `json:"region"`
}

// GenreAverage is one aggregated report row. Mean keeps full precision; it is
// rounded to two decimals only when presented.
type GenreAverage struct {
	Genre string  `json:"genre"`
	Mean  float64 `json:"avg_rating"`
}

// GenreReport wraps the aggregation result with enough context to tell
// "no titles in the window" apart from "titles but none rated".
type GenreReport struct {
	MinYear    int            `json:"min_year"`
	TitleCount int            `json:"title_count"`
	Rows       []GenreAverage `json:"rows"`
}

// EnrichRequest is the HTTP enrichment payload.
type EnrichRequest struct {
	Title  string `json:"title" binding:"required"`
	Year   int    `json:"year" binding:"required"`
	Region string `json:"region"`
}

// EnrichResponse reports what the enrichment wrote.
type EnrichResponse struct {
	Tconst    string        `json:"tconst"`
	TMDBID    int64         `json:"tmdb_id"`
	Providers ProviderEntry `json:"providers"`
}
