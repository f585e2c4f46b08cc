package analyzer

import (
	"sort"

	"elevron/internal/models"
)

// RocketRankings aggregates per-rocket metrics for rockets with at least
// minLaunches launches, sorted by launch count descending. The primary user
// and sector come from the rocket's first record.
func RocketRankings(records []models.LaunchRecord, minLaunches int) []models.RocketMetrics {
	type acc struct {
		total       int
		successes   int
		rated       int
		primaryUser string
		sector      models.Sector
	}

	byRocket := make(map[string]*acc)

	for i := range records {
		rec := &records[i]

		if rec.RocketName == "" {
			continue
		}

		a := byRocket[rec.RocketName]
		if a == nil {
			a = &acc{primaryUser: rec.Organization, sector: rec.OrgType}
			byRocket[rec.RocketName] = a
		}

		a.total++

		if rec.HasOutcome() {
			a.rated++
			if rec.Succeeded() {
				a.successes++
			}
		}
	}

	rows := make([]models.RocketMetrics, 0, len(byRocket))

	for rocket, a := range byRocket {
		if a.total < minLaunches {
			continue
		}

		rows = append(rows, models.RocketMetrics{
			RocketName:    rocket,
			PrimaryUser:   a.primaryUser,
			TotalLaunches: a.total,
			Successful:    a.successes,
			SuccessRate:   successRate(a.successes, a.rated),
			Sector:        a.sector,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalLaunches != rows[j].TotalLaunches {
			return rows[i].TotalLaunches > rows[j].TotalLaunches
		}

		return rows[i].RocketName < rows[j].RocketName
	})

	return rows
}
