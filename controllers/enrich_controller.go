package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"movie-catalog-sync/models"
	"movie-catalog-sync/services"
)

type EnrichController struct {
	enrichService *services.EnrichService
	defaultRegion string
}

func NewEnrichController(enrichService *services.EnrichService, defaultRegion string) *EnrichController {
	return &EnrichController{
		enrichService: enrichService,
		defaultRegion: defaultRegion,
	}
}

// PostEnrich handles POST /api/enrich
func (c *EnrichController) PostEnrich(ctx *gin.Context) {
	var req models.EnrichRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var message string
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, e := range ve {
				switch e.Field() {
				case "Title":
					message = "Please provide a movie title"
				case "Year":
					message = "Please provide a release year"
				default:
					message = "Invalid input data"
				}
				break // Only show first error
			}
		} else {
			message = "Invalid request format"
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	region := req.Region
	if region == "" {
		region = c.defaultRegion
	}

	result, err := c.enrichService.Enrich(ctx.Request.Context(), req.Title, req.Year, region)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "title not found in catalog"})
		case errors.Is(err, services.ErrNoTMDBMatch):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no TMDB match for title"})
		default:
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "enrichment failed"})
		}
		return
	}

	ctx.JSON(http.StatusOK, models.EnrichResponse{
		Tconst:    result.Title.Tconst,
		TMDBID:    result.TMDBID,
		Providers: result.Entry,
	})
}
