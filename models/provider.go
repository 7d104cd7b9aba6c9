package models

// ProviderEntry is the canonical per-region provider structure stored under
// tmdb.providers.<REGION>. Each kind list holds deduplicated, alphabetically
// sorted provider names; empty lists are written as empty, never omitted.
type ProviderEntry struct {
	Region   string   `bson:"region" json:"region"`
	Link     string   `bson:"link,omitempty" json:"link,omitempty"`
	Flatrate []string `bson:"flatrate" json:"flatrate"`
	Rent     []string `bson:"rent" json:"rent"`
	Buy      []string `bson:"buy" json:"buy"`
}
