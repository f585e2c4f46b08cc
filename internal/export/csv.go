// Package export writes the aggregate tables out as CSV artifacts.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"elevron/internal/models"
)

// Artifact file names.
const (
	SectorPerformanceFile    = "sector_performance.csv"
	OrganizationRankingsFile = "organization_rankings.csv"
	TemporalTrendsFile       = "temporal_trends.csv"
)

// Exporter writes CSV artifacts into a target directory.
type Exporter struct {
	dir string
}

// NewExporter creates an exporter rooted at dir, creating it if needed.
func NewExporter(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Exporter{dir: dir}, nil
}

// SectorPerformance writes the per-sector table and returns its path.
func (e *Exporter) SectorPerformance(rows []models.SectorPerformance) (string, error) {
	records := [][]string{{
		"sector", "total_launches", "successful_launches", "success_rate",
		"first_launch", "last_launch", "years_active", "launches_per_year",
	}}

	for _, row := range rows {
		records = append(records, []string{
			string(row.Sector),
			strconv.Itoa(row.TotalLaunches),
			strconv.Itoa(row.Successful),
			formatRate(row.SuccessRate),
			strconv.Itoa(row.FirstYear),
			strconv.Itoa(row.LastYear),
			strconv.Itoa(row.YearsActive),
			strconv.FormatFloat(row.LaunchesPerYear, 'f', 2, 64),
		})
	}

	return e.write(SectorPerformanceFile, records)
}

// OrganizationRankings writes the per-organization table and returns its path.
func (e *Exporter) OrganizationRankings(rows []models.OrganizationMetrics) (string, error) {
	records := [][]string{{
		"organization", "total_launches", "successful_launches", "success_rate", "sector",
	}}

	for _, row := range rows {
		records = append(records, []string{
			row.Organization,
			strconv.Itoa(row.TotalLaunches),
			strconv.Itoa(row.Successful),
			formatRate(row.SuccessRate),
			string(row.Sector),
		})
	}

	return e.write(OrganizationRankingsFile, records)
}

// TemporalTrends writes the per-(year, sector) table and returns its path.
func (e *Exporter) TemporalTrends(rows []models.TemporalTrend) (string, error) {
	records := [][]string{{"year", "sector", "launches", "success_rate"}}

	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Year),
			string(row.Sector),
			strconv.Itoa(row.Launches),
			formatRate(row.SuccessRate),
		})
	}

	return e.write(TemporalTrendsFile, records)
}

func (e *Exporter) write(name string, records [][]string) (string, error) {
	path := filepath.Join(e.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", name, err)
	}

	return path, nil
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64)
}
