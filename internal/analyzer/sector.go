package analyzer

import (
	"sort"

	"elevron/internal/models"
)

// SectorPerformance aggregates launch performance per sector, sorted by
// launch count descending.
func SectorPerformance(records []models.LaunchRecord) []models.SectorPerformance {
	type acc struct {
		total     int
		successes int
		rated     int
		firstYear int
		lastYear  int
	}

	bySector := make(map[models.Sector]*acc)

	for i := range records {
		rec := &records[i]

		a := bySector[rec.OrgType]
		if a == nil {
			a = &acc{}
			bySector[rec.OrgType] = a
		}

		a.total++

		if rec.HasOutcome() {
			a.rated++
			if rec.Succeeded() {
				a.successes++
			}
		}

		if rec.HasYear() {
			year := *rec.LaunchYear
			if a.firstYear == 0 || year < a.firstYear {
				a.firstYear = year
			}

			if year > a.lastYear {
				a.lastYear = year
			}
		}
	}

	rows := make([]models.SectorPerformance, 0, len(bySector))

	for sector, a := range bySector {
		rate := successRate(a.successes, a.rated)

		yearsActive := a.lastYear - a.firstYear

		// A single-year sector still has cadence: treat the span as one year.
		cadenceYears := yearsActive
		if cadenceYears == 0 {
			cadenceYears = 1
		}

		rows = append(rows, models.SectorPerformance{
			Sector:          sector,
			TotalLaunches:   a.total,
			Successful:      a.successes,
			SuccessRate:     rate,
			FailureRate:     100 - rate,
			FirstYear:       a.firstYear,
			LastYear:        a.lastYear,
			YearsActive:     yearsActive,
			LaunchesPerYear: float64(a.total) / float64(cadenceYears),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalLaunches != rows[j].TotalLaunches {
			return rows[i].TotalLaunches > rows[j].TotalLaunches
		}

		return rows[i].Sector < rows[j].Sector
	})

	return rows
}
