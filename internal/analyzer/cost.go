package analyzer

import (
	"sort"

	"elevron/internal/models"
)

// CostBySector computes count, mean and median launch cost per sector over
// the records that carry cost data. Sectors with no cost data produce no row;
// an empty result means the whole cost section should be skipped with a
// notice, not reported as zeros.
func CostBySector(records []models.LaunchRecord) []models.CostStats {
	bySector := make(map[models.Sector][]float64)

	for i := range records {
		rec := &records[i]

		if rec.HasCost() {
			bySector[rec.OrgType] = append(bySector[rec.OrgType], *rec.LaunchCost)
		}
	}

	rows := make([]models.CostStats, 0, len(bySector))

	for sector, costs := range bySector {
		rows = append(rows, models.CostStats{
			Sector: sector,
			Count:  len(costs),
			Mean:   mean(costs),
			Median: median(costs),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}

		return rows[i].Sector < rows[j].Sector
	})

	return rows
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}
