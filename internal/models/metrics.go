package models

// DatasetOverview summarizes the normalized dataset as a whole.
type DatasetOverview struct {
	TotalRecords        int     `json:"totalRecords"`
	FirstYear           int     `json:"firstYear"` // 0 when no record has a year
	LastYear            int     `json:"lastYear"`
	OverallSuccessRate  float64 `json:"overallSuccessRate"` // percent
	UniqueOrganizations int     `json:"uniqueOrganizations"`
	UniqueRockets       int     `json:"uniqueRockets"`
}

// SectorCount is a plain per-sector launch tally.
type SectorCount struct {
	Sector   Sector `json:"sector"`
	Launches int    `json:"launches"`
}

// SectorPerformance is one aggregate row per sector.
type SectorPerformance struct {
	Sector          Sector  `json:"sector"`
	TotalLaunches   int     `json:"totalLaunches"`
	Successful      int     `json:"successfulLaunches"`
	SuccessRate     float64 `json:"successRate"` // percent, over records with an outcome
	FailureRate     float64 `json:"failureRate"` // percent
	FirstYear       int     `json:"firstYear"`   // 0 when no record has a year
	LastYear        int     `json:"lastYear"`
	YearsActive     int     `json:"yearsActive"`
	LaunchesPerYear float64 `json:"launchesPerYear"`
}

// OrganizationMetrics is one aggregate row per organization.
type OrganizationMetrics struct {
	Organization  string  `json:"organization"`
	TotalLaunches int     `json:"totalLaunches"`
	Successful    int     `json:"successfulLaunches"`
	SuccessRate   float64 `json:"successRate"` // percent
	Sector        Sector  `json:"sector"`
	FirstYear     int     `json:"firstYear"`
}

// RocketMetrics is one aggregate row per rocket family.
type RocketMetrics struct {
	RocketName    string  `json:"rocketName"`
	PrimaryUser   string  `json:"primaryUser"`
	TotalLaunches int     `json:"totalLaunches"`
	Successful    int     `json:"successfulLaunches"`
	SuccessRate   float64 `json:"successRate"` // percent
	Sector        Sector  `json:"sector"`
}

// CountryMetrics is one aggregate row per resolved launch country.
type CountryMetrics struct {
	Country       string  `json:"country"`
	TotalLaunches int     `json:"totalLaunches"`
	Successful    int     `json:"successfulLaunches"`
	SuccessRate   float64 `json:"successRate"` // percent
}

// TemporalTrend is one aggregate row per (year, sector).
type TemporalTrend struct {
	Year        int     `json:"year"`
	Sector      Sector  `json:"sector"`
	Launches    int     `json:"launches"`
	SuccessRate float64 `json:"successRate"` // percent
}

// CostStats is one aggregate cost row per sector, over records with cost data.
type CostStats struct {
	Sector Sector  `json:"sector"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`   // base currency units
	Median float64 `json:"median"` // base currency units
}

// DecadeEntrants counts organizations whose first launch fell in a decade.
type DecadeEntrants struct {
	Decade      int `json:"decade"` // e.g. 1960 for the 1960s
	NewEntrants int `json:"newEntrants"`
}

// SpotlightStats summarizes a single organization's record.
type SpotlightStats struct {
	Organization  string  `json:"organization"`
	TotalLaunches int     `json:"totalLaunches"`
	SuccessRate   float64 `json:"successRate"` // percent
	RecentCount   int     `json:"recentCount"` // launches since the recent-era cutoff
}
