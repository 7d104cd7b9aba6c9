package pipeline

import (
	"sort"
	"strings"

	"movie-catalog-sync/models"
)

// AverageRatingByGenre left-joins titles to ratings by tconst, explodes each
// title's comma-delimited genre string into one row per (title, genre) pair,
// drops rows with no genre tag or no rating, and averages per genre. Titles
// without a rating record contribute nothing; a missing rating is absence,
// not zero. Output is sorted descending by mean, ties ascending by genre;
// means keep full precision so rounding never reorders ties.
func AverageRatingByGenre(titles []models.TitleRow, ratings []models.Rating) []models.GenreAverage {
	ratingByTconst := make(map[string]float64, len(ratings))
	for _, r := range ratings {
		if r.AverageRating != nil {
			ratingByTconst[r.Tconst] = *r.AverageRating
		}
	}

	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[string]*acc)

	for _, t := range titles {
		rating, rated := ratingByTconst[t.Tconst]
		if !rated {
			continue
		}
		for _, genre := range SplitGenres(t.Genres) {
			g, ok := groups[genre]
			if !ok {
				g = &acc{}
				groups[genre] = g
			}
			g.sum += rating
			g.count++
		}
	}

	out := make([]models.GenreAverage, 0, len(groups))
	for genre, g := range groups {
		out = append(out, models.GenreAverage{
			Genre: genre,
			Mean:  g.sum / float64(g.count),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Mean != out[j].Mean {
			return out[i].Mean > out[j].Mean
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// SplitGenres turns the catalog's delimited genre field into trimmed,
// non-empty tags. The empty string and the missing-value token both yield no
// tags, so such titles fall out of the aggregation entirely.
func SplitGenres(genres string) []string {
	if genres == "" || genres == MissingToken {
		return nil
	}
	parts := strings.Split(genres, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" && tag != MissingToken {
			tags = append(tags, tag)
		}
	}
	return tags
}
