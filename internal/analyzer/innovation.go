package analyzer

import (
	"sort"
	"strings"

	"elevron/internal/models"
)

// NewEntrantsByDecade counts organizations by the decade of their first
// launch, sorted by decade. Organizations with no parseable year contribute
// nothing.
func NewEntrantsByDecade(records []models.LaunchRecord) []models.DecadeEntrants {
	firstYear := make(map[string]int)

	for i := range records {
		rec := &records[i]

		if rec.Organization == "" || !rec.HasYear() {
			continue
		}

		year := *rec.LaunchYear
		if existing, ok := firstYear[rec.Organization]; !ok || year < existing {
			firstYear[rec.Organization] = year
		}
	}

	byDecade := make(map[int]int)
	for _, year := range firstYear {
		byDecade[year/10*10]++
	}

	rows := make([]models.DecadeEntrants, 0, len(byDecade))
	for decade, count := range byDecade {
		rows = append(rows, models.DecadeEntrants{Decade: decade, NewEntrants: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Decade < rows[j].Decade
	})

	return rows
}

// Spotlight summarizes the launch record of organizations whose name
// contains nameSubstr (case-insensitive). Returns nil when no record matches.
func Spotlight(records []models.LaunchRecord, nameSubstr string, recentCutoff int) *models.SpotlightStats {
	needle := strings.ToLower(nameSubstr)

	stats := &models.SpotlightStats{}

	successes := 0
	rated := 0

	for i := range records {
		rec := &records[i]

		if !strings.Contains(strings.ToLower(rec.Organization), needle) {
			continue
		}

		if stats.Organization == "" {
			stats.Organization = rec.Organization
		}

		stats.TotalLaunches++

		if rec.HasOutcome() {
			rated++
			if rec.Succeeded() {
				successes++
			}
		}

		if rec.HasYear() && *rec.LaunchYear >= recentCutoff {
			stats.RecentCount++
		}
	}

	if stats.TotalLaunches == 0 {
		return nil
	}

	stats.SuccessRate = successRate(successes, rated)

	return stats
}
