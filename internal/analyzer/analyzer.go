// Package analyzer derives the aggregate comparison tables from normalized
// launch records. Every function reads the records; none mutates them.
package analyzer

import "elevron/internal/models"

// Era cutoffs used by the growth and spotlight sections.
const (
	GrowthEraStart    = 2010
	SpotlightEraStart = 2015
)

// Options set the aggregation thresholds and the temporal window.
type Options struct {
	MinYear           int
	MaxYear           int
	TopN              int
	MinOrgLaunches    int
	MinRocketLaunches int
	MinRatedLaunches  int
}

// Results bundles every aggregate table of one analysis run.
type Results struct {
	Overview      models.DatasetOverview
	Sectors       []models.SectorPerformance
	Trends        []models.TemporalTrend
	Growth        []models.SectorCount
	Organizations []models.OrganizationMetrics
	BestRated     []models.OrganizationMetrics
	Rockets       []models.RocketMetrics
	Countries     []models.CountryMetrics
	Costs         []models.CostStats
	Entrants      []models.DecadeEntrants
	Spotlight     *models.SpotlightStats
}

// Run executes every aggregation stage over the records.
func Run(records []models.LaunchRecord, opts Options) *Results {
	orgs := OrganizationRankings(records, opts.MinOrgLaunches)

	return &Results{
		Overview:      Overview(records),
		Sectors:       SectorPerformance(records),
		Trends:        TemporalTrends(records, opts.MinYear, opts.MaxYear),
		Growth:        GrowthSince(records, GrowthEraStart),
		Organizations: orgs,
		BestRated:     TopBySuccessRate(orgs, opts.MinRatedLaunches, opts.TopN),
		Rockets:       RocketRankings(records, opts.MinRocketLaunches),
		Countries:     CountryRankings(records),
		Costs:         CostBySector(records),
		Entrants:      NewEntrantsByDecade(records),
		Spotlight:     Spotlight(records, "spacex", SpotlightEraStart),
	}
}

// successRate returns successes over rated as a percentage, or 0 when no
// record carries an outcome. Records without an outcome never enter the
// denominator.
func successRate(successes, rated int) float64 {
	if rated == 0 {
		return 0
	}

	return float64(successes) / float64(rated) * 100
}
