package pipeline_test

import (
	"reflect"
	"sort"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog-sync/pipeline"
)

func TestNormalizeProvidersShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want []string
	}{
		{
			name: "absent",
			in:   nil,
			want: []string{},
		},
		{
			name: "flat string list",
			in:   []any{"HBO Max", "Apple TV"},
			want: []string{"Apple TV", "HBO Max"},
		},
		{
			name: "flat object list",
			in:   []any{map[string]any{"provider_name": "Netflix"}, map[string]any{"name": "Hulu"}},
			want: []string{"Hulu", "Netflix"},
		},
		{
			name: "mixed flat list skips junk elements",
			in:   []any{"  Max  ", 42, map[string]any{"provider_name": "Netflix"}, nil, map[string]any{"logo": "x.png"}},
			want: []string{"Max", "Netflix"},
		},
		{
			name: "keyed TMDB shape",
			in: map[string]any{
				"flatrate": []any{map[string]any{"provider_name": "Netflix"}},
				"rent":     []any{"Apple TV"},
				"buy":      []any{},
			},
			want: []string{"Apple TV", "Netflix"},
		},
		{
			name: "keyed shape pools and dedups across kinds",
			in: map[string]any{
				"flatrate": []any{"Amazon Video", "Netflix"},
				"rent":     []any{"Amazon Video"},
				"buy":      []any{"Amazon Video", "Google Play"},
			},
			want: []string{"Amazon Video", "Google Play", "Netflix"},
		},
		{
			name: "keyed shape ignores unknown kinds and non-list values",
			in: map[string]any{
				"flatrate": "not-a-list",
				"rent":     []any{"Apple TV"},
				"ads":      []any{"Tubi"},
				"link":     "https://example.com",
			},
			want: []string{"Apple TV"},
		},
		{
			name: "numeric name values stringified",
			in:   []any{map[string]any{"provider_name": 42}, map[string]any{"name": 7.5}},
			want: []string{"42", "7.5"},
		},
		{
			name: "empty and whitespace names dropped",
			in:   []any{"", "   ", "Netflix"},
			want: []string{"Netflix"},
		},
		{
			name: "scalar garbage",
			in:   42,
			want: []string{},
		},
		{
			name: "string garbage",
			in:   "Netflix",
			want: []string{},
		},
		{
			name: "nested garbage",
			in:   []any{[]any{map[string]any{"provider_name": "Netflix"}}},
			want: []string{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := pipeline.NormalizeProviders(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("NormalizeProviders(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeProvidersBSONTypes(t *testing.T) {
	t.Parallel()

	// Values read back from the store decode as primitive.A / primitive.M /
	// primitive.D, not as plain slices and maps.
	in := primitive.M{
		"flatrate": primitive.A{primitive.D{{Key: "provider_name", Value: "Netflix"}}},
		"rent":     primitive.A{"Apple TV"},
	}
	want := []string{"Apple TV", "Netflix"}
	if got := pipeline.NormalizeProviders(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeProviders(primitive types) = %v, want %v", got, want)
	}

	inDoc := primitive.D{
		{Key: "buy", Value: primitive.A{"Google Play", "Amazon Video"}},
	}
	want = []string{"Amazon Video", "Google Play"}
	if got := pipeline.NormalizeProviders(inDoc); !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeProviders(primitive.D) = %v, want %v", got, want)
	}
}

func TestNormalizeProvidersIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []any{
		map[string]any{
			"flatrate": []any{map[string]any{"provider_name": "Netflix"}, "Max"},
			"rent":     []any{"Apple TV", "Max"},
			"buy":      []any{""},
		},
		[]any{"Zulu", "alpha", "Zulu", "  Beta "},
		nil,
		42,
	}

	for _, in := range inputs {
		first := pipeline.NormalizeProviders(in)
		second := pipeline.NormalizeProviders(first)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("re-normalizing %v changed output: %v -> %v", in, first, second)
		}
		if !sort.StringsAreSorted(first) {
			t.Fatalf("NormalizeProviders(%v) = %v is not sorted", in, first)
		}
		seen := map[string]bool{}
		for _, n := range first {
			if seen[n] {
				t.Fatalf("NormalizeProviders(%v) = %v contains duplicate %q", in, first, n)
			}
			seen[n] = true
		}
	}
}
