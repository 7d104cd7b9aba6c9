package models

// TMDBSearchResponse is the /search/movie envelope.
type TMDBSearchResponse struct {
	Page    int               `json:"page"`
	Results []TMDBSearchMatch `json:"results"`
}

// TMDBSearchMatch is one search hit; only the fields the sync flow uses.
type TMDBSearchMatch struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// TMDBProvidersResponse is the /movie/{id}/watch/providers envelope: a map
// from region code to that region's offers. The offer payload is left
// untyped on purpose: kind lists carry provider objects whose exact shape
// is the normalizer's problem, not the transport's.
type TMDBProvidersResponse struct {
	ID      int64                      `json:"id"`
	Results map[string]TMDBRegionOffer `json:"results"`
}

// TMDBRegionOffer is one region's raw offer listing.
type TMDBRegionOffer struct {
	Link     string `json:"link"`
	Flatrate []any  `json:"flatrate"`
	Rent     []any  `json:"rent"`
	Buy      []any  `json:"buy"`
}
