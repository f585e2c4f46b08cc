package analyzer

import (
	"sort"

	"elevron/internal/models"
)

// TemporalTrends aggregates launches and success rate per (year, sector)
// within the given window, sorted by year then sector. Records without a
// parseable year are excluded rather than binned into a sentinel year.
func TemporalTrends(records []models.LaunchRecord, minYear, maxYear int) []models.TemporalTrend {
	type key struct {
		year   int
		sector models.Sector
	}

	type acc struct {
		launches  int
		successes int
		rated     int
	}

	byKey := make(map[key]*acc)

	for i := range records {
		rec := &records[i]

		if !rec.HasYear() {
			continue
		}

		year := *rec.LaunchYear
		if year < minYear || year > maxYear {
			continue
		}

		k := key{year: year, sector: rec.OrgType}

		a := byKey[k]
		if a == nil {
			a = &acc{}
			byKey[k] = a
		}

		a.launches++

		if rec.HasOutcome() {
			a.rated++
			if rec.Succeeded() {
				a.successes++
			}
		}
	}

	rows := make([]models.TemporalTrend, 0, len(byKey))

	for k, a := range byKey {
		rows = append(rows, models.TemporalTrend{
			Year:        k.year,
			Sector:      k.sector,
			Launches:    a.launches,
			SuccessRate: successRate(a.successes, a.rated),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}

		return rows[i].Sector < rows[j].Sector
	})

	return rows
}

// GrowthSince tallies launches per sector from the given year onward,
// sorted by launch count descending.
func GrowthSince(records []models.LaunchRecord, sinceYear int) []models.SectorCount {
	bySector := make(map[models.Sector]int)

	for i := range records {
		rec := &records[i]

		if rec.HasYear() && *rec.LaunchYear >= sinceYear {
			bySector[rec.OrgType]++
		}
	}

	rows := make([]models.SectorCount, 0, len(bySector))
	for sector, count := range bySector {
		rows = append(rows, models.SectorCount{Sector: sector, Launches: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Launches != rows[j].Launches {
			return rows[i].Launches > rows[j].Launches
		}

		return rows[i].Sector < rows[j].Sector
	})

	return rows
}
