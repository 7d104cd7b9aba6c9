package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"movie-catalog-sync/models"
	"movie-catalog-sync/services"
)

type ReportController struct {
	reportService *services.ReportService
	defaultRegion string
}

func NewReportController(reportService *services.ReportService, defaultRegion string) *ReportController {
	return &ReportController{
		reportService: reportService,
		defaultRegion: defaultRegion,
	}
}

// GetTitleSummary handles GET /api/reports/title?title=&year=&region=
func (c *ReportController) GetTitleSummary(ctx *gin.Context) {
	title := ctx.Query("title")
	if title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "title query parameter is required"})
		return
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter must be an integer"})
		return
	}
	region := ctx.DefaultQuery("region", c.defaultRegion)

	summary, err := c.reportService.TitleSummary(ctx.Request.Context(), title, year, region)
	if err != nil {
		if errors.Is(err, services.ErrTitleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "title not found in catalog"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build title summary"})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// GetGenreAverages handles GET /api/reports/genres?years=
func (c *ReportController) GetGenreAverages(ctx *gin.Context) {
	years := 5
	if raw := ctx.Query("years"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "years query parameter must be a positive integer"})
			return
		}
		years = n
	}
	minYear := time.Now().Year() - (years - 1)

	report, err := c.reportService.AverageRatingByGenre(ctx.Request.Context(), minYear)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate ratings"})
		return
	}

	// Rounding is applied to the response copy only; sorting already
	// happened on full precision.
	out := *report
	out.Rows = make([]models.GenreAverage, len(report.Rows))
	for i, r := range report.Rows {
		out.Rows[i] = models.GenreAverage{
			Genre: r.Genre,
			Mean:  math.Round(r.Mean*100) / 100,
		}
	}

	ctx.JSON(http.StatusOK, out)
}
