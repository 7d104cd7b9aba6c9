package pipeline_test

import (
	"reflect"
	"testing"

	"movie-catalog-sync/models"
	"movie-catalog-sync/pipeline"
)

func TestCanonicalProviderEntry(t *testing.T) {
	t.Parallel()

	offer := models.TMDBRegionOffer{
		Link: "https://www.themoviedb.org/movie/550/watch?locale=US",
		Flatrate: []any{
			map[string]any{"provider_name": "Netflix"},
			map[string]any{"provider_name": "Hulu"},
			map[string]any{"provider_name": "Netflix"},
		},
		Rent: []any{map[string]any{"provider_name": "Apple TV"}},
	}

	entry := pipeline.CanonicalProviderEntry("US", offer)

	if entry.Region != "US" || entry.Link != offer.Link {
		t.Fatalf("region/link not carried over: %+v", entry)
	}
	if want := []string{"Hulu", "Netflix"}; !reflect.DeepEqual(entry.Flatrate, want) {
		t.Fatalf("Flatrate = %v, want %v", entry.Flatrate, want)
	}
	if want := []string{"Apple TV"}; !reflect.DeepEqual(entry.Rent, want) {
		t.Fatalf("Rent = %v, want %v", entry.Rent, want)
	}
	if entry.Buy == nil || len(entry.Buy) != 0 {
		t.Fatalf("Buy should be empty, not nil: %v", entry.Buy)
	}
}
