package analyzer

import (
	"sort"

	"elevron/internal/models"
)

// OrganizationRankings aggregates per-organization metrics for organizations
// with at least minLaunches launches, sorted by launch count descending.
// The sector is taken from the organization's first record; classification
// is immutable per name, so every record agrees.
func OrganizationRankings(records []models.LaunchRecord, minLaunches int) []models.OrganizationMetrics {
	type acc struct {
		total     int
		successes int
		rated     int
		sector    models.Sector
		firstYear int
	}

	byOrg := make(map[string]*acc)

	for i := range records {
		rec := &records[i]

		if rec.Organization == "" {
			continue
		}

		a := byOrg[rec.Organization]
		if a == nil {
			a = &acc{sector: rec.OrgType}
			byOrg[rec.Organization] = a
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
		}
	}

	rows := make([]models.OrganizationMetrics, 0, len(byOrg))

	for org, a := range byOrg {
		if a.total < minLaunches {
			continue
		}

		rows = append(rows, models.OrganizationMetrics{
			Organization:  org,
			TotalLaunches: a.total,
			Successful:    a.successes,
			SuccessRate:   successRate(a.successes, a.rated),
			Sector:        a.sector,
			FirstYear:     a.firstYear,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalLaunches != rows[j].TotalLaunches {
			return rows[i].TotalLaunches > rows[j].TotalLaunches
		}

		return rows[i].Organization < rows[j].Organization
	})

	return rows
}

// TopBySuccessRate returns the topN organizations by success rate among
// those with at least minLaunches launches.
func TopBySuccessRate(orgs []models.OrganizationMetrics, minLaunches, topN int) []models.OrganizationMetrics {
	rated := make([]models.OrganizationMetrics, 0, len(orgs))

	for _, org := range orgs {
		if org.TotalLaunches >= minLaunches {
			rated = append(rated, org)
		}
	}

	sort.Slice(rated, func(i, j int) bool {
		if rated[i].SuccessRate != rated[j].SuccessRate {
			return rated[i].SuccessRate > rated[j].SuccessRate
		}

		return rated[i].Organization < rated[j].Organization
	})

	if len(rated) > topN {
		rated = rated[:topN]
	}

	return rated
}
