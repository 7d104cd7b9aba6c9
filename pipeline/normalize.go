package pipeline

import (
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stored provider data has accumulated several shapes over time: raw TMDB
// offer maps, already-normalized name lists, flat string lists, and plain
// garbage. NormalizeProviders reduces any of them to one canonical form.
// Offer kinds are iterated in this fixed order so classification stays
// auditable.
var offerKinds = [...]string{"flatrate", "rent", "buy"}

type providerShape int

const (
	shapeAbsent providerShape = iota
	shapeFlatList
	shapeKeyedOffers
	shapeInvalid
)

// providerInput is the classified form of a raw provider value: exactly one
// of flat/offers is populated, selected by shape.
type providerInput struct {
	shape  providerShape
	flat   []any
	offers map[string]any
}

// NormalizeProviders converts any stored or fetched provider value into the
// canonical provider list: deduplicated, ascending, no empty names. It is
// total (unrecognized input degrades to an empty list) and idempotent,
// since its own output classifies as a flat string list.
func NormalizeProviders(v any) []string {
	in := classifyProviders(v)

	var names []string
	switch in.shape {
	case shapeFlatList:
		names = extractNames(in.flat)
	case shapeKeyedOffers:
		for _, kind := range offerKinds {
			if arr, ok := asList(in.offers[kind]); ok {
				names = append(names, extractNames(arr)...)
			}
		}
	default:
		return []string{}
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// classifyProviders is the single shape dispatch: absent, then flat list,
// then keyed offer map, then invalid. Order matters and is part of the
// contract.
func classifyProviders(v any) providerInput {
	if v == nil {
		return providerInput{shape: shapeAbsent}
	}
	if arr, ok := asList(v); ok {
		return providerInput{shape: shapeFlatList, flat: arr}
	}
	if m, ok := asMap(v); ok {
		return providerInput{shape: shapeKeyedOffers, offers: m}
	}
	return providerInput{shape: shapeInvalid}
}

// extractNames pulls trimmed, non-empty provider names out of one list.
// Elements are either bare strings or mappings exposing provider_name/name;
// anything else is skipped.
func extractNames(arr []any) []string {
	names := make([]string, 0, len(arr))
	for _, x := range arr {
		switch e := x.(type) {
		case string:
			if n := strings.TrimSpace(e); n != "" {
				names = append(names, n)
			}
		default:
			if m, ok := asMap(x); ok {
				if n := nameFromMapping(m); n != "" {
					names = append(names, n)
				}
			}
		}
	}
	return names
}

// nameFromMapping falls through from provider_name to name when the first
// key yields nothing usable.
func nameFromMapping(m map[string]any) string {
	for _, key := range [...]string{"provider_name", "name"} {
		if raw, ok := m[key]; ok {
			if n := strings.TrimSpace(scalarString(raw)); n != "" {
				return n
			}
		}
	}
	return ""
}

// scalarString renders the name encodings seen in provider payloads: strings
// plus the occasional numeric value stored in the name field.
func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int32:
		return strconv.Itoa(int(s))
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// asList matches the list encodings seen at this boundary: plain Go slices
// from JSON and primitive.A from BSON decoding.
func asList(v any) ([]any, bool) {
	switch arr := v.(type) {
	case []any:
		return arr, true
	case primitive.A:
		return arr, true
	case []string:
		out := make([]any, len(arr))
		for i, s := range arr {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// asMap matches the mapping encodings: map[string]any from JSON, primitive.M
// and primitive.D from BSON.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case primitive.M:
		return m, true
	case primitive.D:
		return m.Map(), true
	default:
		return nil, false
	}
}
