package pipeline

import (
	"movie-catalog-sync/models"
)

// CanonicalProviderEntry reduces a raw regional offer listing to the stored
// canonical form: each kind list normalized independently, plus the deep
// link. Kind lists come back empty (not nil) so the stored document always
// carries all three keys.
func CanonicalProviderEntry(region string, offer models.TMDBRegionOffer) models.ProviderEntry {
	return models.ProviderEntry{
		Region:   region,
		Link:     offer.Link,
		Flatrate: NormalizeProviders(offer.Flatrate),
		Rent:     NormalizeProviders(offer.Rent),
		Buy:      NormalizeProviders(offer.Buy),
	}
}
