package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"movie-catalog-sync/helper"
	"movie-catalog-sync/services"
)

// Defaults mirror the catalog's canonical worked example.
const (
	defaultTitle = "Fight Club"
	defaultYear  = 1999
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "movie-catalog-sync",
		Short:         "Enrich a movie catalog with streaming providers and report on ratings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newSyncCommand())
	rootCmd.AddCommand(newRefreshCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

func newSyncCommand() *cobra.Command {
	var title string
	var year int
	var region string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch streaming providers from TMDB and attach them to a catalog title",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			if region == "" {
				region = a.cfg.Region
			}

			result, err := a.enrichService.Enrich(cmd.Context(), title, year, region)
			if errors.Is(err, services.ErrTitleNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d) not found in the catalog.\n", title, year)
				return nil
			}
			if errors.Is(err, services.ErrNoTMDBMatch) {
				fmt.Fprintf(cmd.OutOrStdout(), "TMDB has no match for %s (%d).\n", title, year)
				return nil
			}
			if err != nil {
				return err
			}

			entryJSON, err := json.MarshalIndent(result.Entry, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "TMDB match: id=%d\n%s\nCatalog updated with tmdb.id and providers.\n",
				result.TMDBID, entryJSON)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", defaultTitle, "Movie title to enrich")
	cmd.Flags().IntVar(&year, "year", defaultYear, "Release year")
	cmd.Flags().StringVar(&region, "region", "", "Region code (defaults to TMDB_REGION)")
	return cmd
}

func newRefreshCommand() *cobra.Command {
	var tmdbID int64
	var region string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch providers by TMDB id and apply them to every linked catalog record",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			if region == "" {
				region = a.cfg.Region
			}

			modified, _, err := a.enrichService.RefreshByTMDBID(cmd.Context(), tmdbID, region)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refreshed providers on %d record(s) for tmdb id %d.\n", modified, tmdbID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&tmdbID, "tmdb-id", 0, "TMDB movie id to refresh")
	_ = cmd.MarkFlagRequired("tmdb-id")
	cmd.Flags().StringVar(&region, "region", "", "Region code (defaults to TMDB_REGION)")
	return cmd
}

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Read-only catalog reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newReportTitleCommand())
	cmd.AddCommand(newReportGenresCommand())
	return cmd
}

func newReportTitleCommand() *cobra.Command {
	var title string
	var year int
	var region string

	cmd := &cobra.Command{
		Use:   "title",
		Short: "Summary for one title: year, genres, rating, streaming providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			if region == "" {
				region = a.cfg.Region
			}

			summary, err := a.reportService.TitleSummary(cmd.Context(), title, year, region)
			if errors.Is(err, services.ErrTitleNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d) not found in the catalog.\n", title, year)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), helper.RenderTitleSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", defaultTitle, "Movie title")
	cmd.Flags().IntVar(&year, "year", defaultYear, "Release year")
	cmd.Flags().StringVar(&region, "region", "", "Region code (defaults to TMDB_REGION)")
	return cmd
}

func newReportGenresCommand() *cobra.Command {
	var years int

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "Average rating per genre over the last N years",
		RunE: func(cmd *cobra.Command, args []string) error {
			if years < 1 {
				return fmt.Errorf("--years must be at least 1")
			}

			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			minYear := time.Now().Year() - (years - 1)
			report, err := a.reportService.AverageRatingByGenre(cmd.Context(), minYear)
			if err != nil {
				return err
			}

			if report.TitleCount == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No movies in the catalog since %d.\n", minYear)
				return nil
			}
			if len(report.Rows) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No rated movies since %d; nothing to average.\n", minYear)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Average rating by genre (movies since %d)\n", minYear)
			fmt.Fprintln(cmd.OutOrStdout(), helper.RenderGenreReport(report))
			return nil
		},
	}

	cmd.Flags().IntVar(&years, "years", 5, "Window size in years, current year inclusive")
	return cmd
}

func newImportCommand() *cobra.Command {
	var titlesPath string
	var ratingsPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load IMDb-style tab-separated title and rating dumps into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			titlesFile, err := os.Open(titlesPath)
			if err != nil {
				return fmt.Errorf("open titles file: %w", err)
			}
			defer titlesFile.Close()

			titles, err := helper.ParseTitles(titlesFile)
			if err != nil {
				return err
			}
			inserted, err := a.titleRepo.InsertTitles(cmd.Context(), titles)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d title(s).\n", inserted)

			if ratingsPath == "" {
				return nil
			}

			ratingsFile, err := os.Open(ratingsPath)
			if err != nil {
				return fmt.Errorf("open ratings file: %w", err)
			}
			defer ratingsFile.Close()

			ratings, err := helper.ParseRatings(ratingsFile)
			if err != nil {
				return err
			}
			inserted, err = a.ratingRepo.InsertRatings(cmd.Context(), ratings)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rating(s).\n", inserted)
			return nil
		},
	}

	cmd.Flags().StringVar(&titlesPath, "titles", "", "Path to the titles TSV dump")
	_ = cmd.MarkFlagRequired("titles")
	cmd.Flags().StringVar(&ratingsPath, "ratings", "", "Path to the ratings TSV dump (optional)")
	return cmd
}
