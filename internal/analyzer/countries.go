package analyzer

import (
	"sort"

	"elevron/internal/models"
)

// CountryRankings aggregates launches and success rate per resolved launch
// country, sorted by launch count descending. The "Unknown" and "Other"
// sentinels are kept as ordinary rows; readers can see how much of the
// dataset resisted resolution.
func CountryRankings(records []models.LaunchRecord) []models.CountryMetrics {
	type acc struct {
		total     int
		successes int
		rated     int
	}

	byCountry := make(map[string]*acc)

	for i := range records {
		rec := &records[i]

		if rec.Country == "" {
			continue
		}

		a := byCountry[rec.Country]
		if a == nil {
			a = &acc{}
			byCountry[rec.Country] = a
		}

		a.total++

		if rec.HasOutcome() {
			a.rated++
			if rec.Succeeded() {
				a.successes++
			}
		}
	}

	rows := make([]models.CountryMetrics, 0, len(byCountry))

	for country, a := range byCountry {
		rows = append(rows, models.CountryMetrics{
			Country:       country,
			TotalLaunches: a.total,
			Successful:    a.successes,
			SuccessRate:   successRate(a.successes, a.rated),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalLaunches != rows[j].TotalLaunches {
			return rows[i].TotalLaunches > rows[j].TotalLaunches
		}

		return rows[i].Country < rows[j].Country
	})

	return rows
}
