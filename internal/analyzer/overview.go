package analyzer

import "elevron/internal/models"

// Overview computes the dataset-level summary.
func Overview(records []models.LaunchRecord) models.DatasetOverview {
	ov := models.DatasetOverview{
		TotalRecords: len(records),
	}

	orgs := make(map[string]bool)
	rockets := make(map[string]bool)

	successes := 0
	rated := 0

	for i := range records {
		rec := &records[i]

		if rec.Organization != "" {
			orgs[rec.Organization] = true
		}

		if rec.RocketName != "" {
			rockets[rec.RocketName] = true
		}

		if rec.HasOutcome() {
			rated++
			if rec.Succeeded() {
				successes++
			}
		}

		if rec.HasYear() {
			year := *rec.LaunchYear
			if ov.FirstYear == 0 || year < ov.FirstYear {
				ov.FirstYear = year
			}

			if year > ov.LastYear {
				ov.LastYear = year
			}
		}
	}

	ov.UniqueOrganizations = len(orgs)
	ov.UniqueRockets = len(rockets)
	ov.OverallSuccessRate = successRate(successes, rated)

	return ov
}
