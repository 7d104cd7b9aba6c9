package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"movie-catalog-sync/controllers"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the report and enrichment API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			reportController := controllers.NewReportController(a.reportService, a.cfg.Region)
			enrichController := controllers.NewEnrichController(a.enrichService, a.cfg.Region)

			r := gin.Default()
			r.Use(setupCORS())

			r.GET("/api/health", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "healthy"})
			})

			api := r.Group("/api")
			{
				api.GET("/reports/title", reportController.GetTitleSummary)
				api.GET("/reports/genres", reportController.GetGenreAverages)
				api.POST("/enrich", enrichController.PostEnrich)
			}

			a.logger.Info("server starting", zap.String("port", a.cfg.Port))
			return r.Run(":" + a.cfg.Port)
		},
	}
}

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
