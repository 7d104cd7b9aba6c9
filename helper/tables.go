package helper

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"movie-catalog-sync/models"
)

// RenderTitleSummary formats the single-title report as a console table. A
// missing rating renders as a dash, never as 0.
func RenderTitleSummary(summary *models.TitleSummary) string {
	rating := "-"
	if summary.AvgRating != nil {
		rating = fmt.Sprintf("%.1f", *summary.AvgRating)
	}
	year := "-"
	if summary.StartYear != nil {
		year = fmt.Sprintf("%d", *summary.StartYear)
	}
	providers := "-"
	if len(summary.Providers) > 0 {
		providers = strings.Join(summary.Providers, ", ")
	}

	return renderTable(
		[]string{"Title", "Year", "Genres", "Avg Rating", fmt.Sprintf("Providers (%s)", summary.Region)},
		[][]string{{summary.PrimaryTitle, year, summary.Genres, rating, providers}},
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignLeft},
	)
}

// RenderGenreReport formats the aggregation rows. Means are rounded to two
// decimals here, at presentation; the rows arrive already sorted on full
// precision.
func RenderGenreReport(report *models.GenreReport) string {
	rows := make([][]string, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, []string{r.Genre, fmt.Sprintf("%.2f", r.Mean)})
	}
	return renderTable(
		[]string{"Genre", "Avg Rating"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
