package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"movie-catalog-sync/controllers"
	"movie-catalog-sync/models"
	"movie-catalog-sync/services"
)

type memMetadataAPI struct {
	match *models.TMDBSearchMatch
	offer models.TMDBRegionOffer
}

func (m *memMetadataAPI) SearchMovie(context.Context, string, int) (*models.TMDBSearchMatch, error) {
	return m.match, nil
}

func (m *memMetadataAPI) WatchProviders(context.Context, int64, string) (models.TMDBRegionOffer, error) {
	return m.offer, nil
}

func newEnrichRouter(titles *memTitleStore, tmdb *memMetadataAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	enrichService := services.NewEnrichService(titles, tmdb, nil)
	controller := controllers.NewEnrichController(enrichService, "US")

	r := gin.New()
	r.POST("/api/enrich", controller.PostEnrich)
	return r
}

func TestPostEnrichValidation(t *testing.T) {
	router := newEnrichRouter(&memTitleStore{}, &memMetadataAPI{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/enrich", strings.NewReader(`{"year":1999}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "title") {
		t.Fatalf("error should mention the missing title: %s", w.Body.String())
	}
}

func TestPostEnrichTitleNotFound(t *testing.T) {
	router := newEnrichRouter(&memTitleStore{}, &memMetadataAPI{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/enrich", strings.NewReader(`{"title":"Nope","year":2020}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestPostEnrichOK(t *testing.T) {
	titles := &memTitleStore{
		titles: []models.Title{{Tconst: "tt0137523", PrimaryTitle: "Fight Club", StartYear: 1999}},
	}
	tmdb := &memMetadataAPI{
		match: &models.TMDBSearchMatch{ID: 550, Title: "Fight Club"},
		offer: models.TMDBRegionOffer{Flatrate: []any{"Hulu"}},
	}
	router := newEnrichRouter(titles, tmdb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/enrich", strings.NewReader(`{"title":"Fight Club","year":1999}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"tmdb_id":550`) {
		t.Fatalf("response missing tmdb id: %s", w.Body.String())
	}
}
