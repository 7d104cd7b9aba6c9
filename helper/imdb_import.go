package helper

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"movie-catalog-sync/models"
)

// ParseTitles reads an IMDb title.basics-style tab-separated dump. Sentinel
// "\N" values are stored as-is; coercion happens in the pipeline at read
// time, not at load time.
func ParseTitles(r io.Reader) ([]models.Title, error) {
	reader := newTSVReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read titles header: %w", err)
	}
	cols, err := columnIndex(header, "tconst", "titleType", "primaryTitle", "originalTitle", "startYear", "endYear", "genres")
	if err != nil {
		return nil, err
	}

	var titles []models.Title
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read titles row: %w", err)
		}

		titles = append(titles, models.Title{
			Tconst:        row[cols["tconst"]],
			TitleType:     row[cols["titleType"]],
			PrimaryTitle:  row[cols["primaryTitle"]],
			OriginalTitle: row[cols["originalTitle"]],
			StartYear:     yearField(row[cols["startYear"]]),
			EndYear:       yearField(row[cols["endYear"]]),
			Genres:        row[cols["genres"]],
		})
	}
	return titles, nil
}

// ParseRatings reads an IMDb title.ratings-style tab-separated dump.
func ParseRatings(r io.Reader) ([]models.Rating, error) {
	reader := newTSVReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read ratings header: %w", err)
	}
	cols, err := columnIndex(header, "tconst", "averageRating", "numVotes")
	if err != nil {
		return nil, err
	}

	var ratings []models.Rating
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read ratings row: %w", err)
		}

		rating := models.Rating{Tconst: row[cols["tconst"]]}
		if avg, err := strconv.ParseFloat(row[cols["averageRating"]], 64); err == nil {
			rating.AverageRating = &avg
		}
		if votes, err := strconv.Atoi(row[cols["numVotes"]]); err == nil {
			rating.NumVotes = votes
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

func newTSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	// IMDb dumps are not quoted; titles may contain double quotes.
	reader.LazyQuotes = true
	return reader
}

// yearField keeps numeric years as ints and leaves sentinels as strings, the
// same mix the catalog accumulates from other load paths.
func yearField(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}

func columnIndex(header []string, names ...string) (map[string]int, error) {
	cols := make(map[string]int, len(names))
	for _, name := range names {
		found := false
		for i, column := range header {
			if column == name {
				cols[name] = i
				found = true
				break
			}
		}
		if !found {
			return nil, errors.New("column " + name + " not found in header")
		}
	}
	return cols, nil
}
