// Package report renders the analysis results for people: a console report
// and a markdown artifact.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"elevron/internal/analyzer"
	"elevron/internal/models"
)

// ConsoleReporter prints the full analysis report to a writer.
type ConsoleReporter struct {
	w    io.Writer
	topN int

	header *color.Color
	notice *color.Color
}

// NewConsoleReporter creates a reporter writing to w, limiting ranked
// sections to topN rows.
func NewConsoleReporter(w io.Writer, topN int) *ConsoleReporter {
	return &ConsoleReporter{
		w:      w,
		topN:   topN,
		header: color.New(color.FgCyan, color.Bold),
		notice: color.New(color.FgYellow),
	}
}

// Print renders every report section. Sections whose aggregate table is
// empty are skipped with a notice.
func (r *ConsoleReporter) Print(res *analyzer.Results) {
	r.overview(res.Overview)
	r.sectors(res.Sectors)
	r.growth(res.Growth)
	r.organizations(res.Organizations, res.BestRated)
	r.rockets(res.Rockets)
	r.countries(res.Countries)
	r.innovation(res.Entrants, res.Spotlight)
	r.costs(res.Costs)
}

func (r *ConsoleReporter) overview(ov models.DatasetOverview) {
	r.header.Fprintln(r.w, "\n=== Dataset Overview ===")
	fmt.Fprintf(r.w, "  Total Launches Analyzed: %d\n", ov.TotalRecords)

	if ov.FirstYear > 0 {
		fmt.Fprintf(r.w, "  Date Range: %d - %d\n", ov.FirstYear, ov.LastYear)
	}

	fmt.Fprintf(r.w, "  Overall Success Rate: %.1f%%\n", ov.OverallSuccessRate)
	fmt.Fprintf(r.w, "  Unique Organizations: %d\n", ov.UniqueOrganizations)
	fmt.Fprintf(r.w, "  Unique Rockets: %d\n", ov.UniqueRockets)
}

func (r *ConsoleReporter) sectors(rows []models.SectorPerformance) {
	r.header.Fprintln(r.w, "\n=== Sector Performance ===")

	if len(rows) == 0 {
		r.notice.Fprintln(r.w, "  no sector data available")

		return
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"Sector", "Launches", "Success Rate", "Launches/Year", "Years Active"})

	for _, row := range rows {
		table.Append([]string{
			string(row.Sector),
			strconv.Itoa(row.TotalLaunches),
			fmt.Sprintf("%.1f%%", row.SuccessRate),
			fmt.Sprintf("%.1f", row.LaunchesPerYear),
			strconv.Itoa(row.YearsActive),
		})
	}

	table.Render()
}

func (r *ConsoleReporter) growth(rows []models.SectorCount) {
	if len(rows) == 0 {
		return
	}

	r.header.Fprintf(r.w, "\n=== Launch Growth (since %d) ===\n", analyzer.GrowthEraStart)

	for _, row := range rows {
		fmt.Fprintf(r.w, "  %s: %d launches\n", row.Sector, row.Launches)
	}
}

func (r *ConsoleReporter) organizations(rows, bestRated []models.OrganizationMetrics) {
	r.header.Fprintf(r.w, "\n=== Top %d Organizations by Launch Count ===\n", r.topN)

	if len(rows) == 0 {
		r.notice.Fprintln(r.w, "  no organizations met the launch threshold")

		return
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"#", "Organization", "Launches", "Success Rate", "Sector"})

	for i, row := range rows {
		if i >= r.topN {
			break
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			row.Organization,
			strconv.Itoa(row.TotalLaunches),
			fmt.Sprintf("%.1f%%", row.SuccessRate),
			string(row.Sector),
		})
	}

	table.Render()

	if len(bestRated) > 0 {
		r.header.Fprintln(r.w, "\n=== Highest Success Rates ===")

		for i, row := range bestRated {
			fmt.Fprintf(r.w, "  %d. %s: %.1f%% (%d launches)\n",
				i+1, row.Organization, row.SuccessRate, row.TotalLaunches)
		}
	}
}

func (r *ConsoleReporter) rockets(rows []models.RocketMetrics) {
	r.header.Fprintf(r.w, "\n=== Top %d Most-Launched Rockets ===\n", r.topN)

	if len(rows) == 0 {
		r.notice.Fprintln(r.w, "  rocket name data not available")

		return
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"#", "Rocket", "Primary User", "Launches", "Success Rate"})

	for i, row := range rows {
		if i >= r.topN {
			break
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			row.RocketName,
			row.PrimaryUser,
			strconv.Itoa(row.TotalLaunches),
			fmt.Sprintf("%.1f%%", row.SuccessRate),
		})
	}

	table.Render()
}

func (r *ConsoleReporter) countries(rows []models.CountryMetrics) {
	r.header.Fprintf(r.w, "\n=== Top %d Launch Countries ===\n", r.topN)

	if len(rows) == 0 {
		r.notice.Fprintln(r.w, "  launch location data not available")

		return
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"#", "Country", "Launches", "Success Rate"})

	for i, row := range rows {
		if i >= r.topN {
			break
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			row.Country,
			strconv.Itoa(row.TotalLaunches),
			fmt.Sprintf("%.1f%%", row.SuccessRate),
		})
	}

	table.Render()
}

func (r *ConsoleReporter) innovation(entrants []models.DecadeEntrants, spotlight *models.SpotlightStats) {
	if len(entrants) > 0 {
		r.header.Fprintln(r.w, "\n=== New Space Organizations by Decade ===")

		for _, row := range entrants {
			fmt.Fprintf(r.w, "  %ds: %d new organizations\n", row.Decade, row.NewEntrants)
		}
	}

	if spotlight != nil {
		r.header.Fprintf(r.w, "\n=== %s Launch Statistics ===\n", spotlight.Organization)
		fmt.Fprintf(r.w, "  Total Launches: %d\n", spotlight.TotalLaunches)
		fmt.Fprintf(r.w, "  Success Rate: %.1f%%\n", spotlight.SuccessRate)
		fmt.Fprintf(r.w, "  Launches since %d: %d\n", analyzer.SpotlightEraStart, spotlight.RecentCount)
	}
}

func (r *ConsoleReporter) costs(rows []models.CostStats) {
	r.header.Fprintln(r.w, "\n=== Launch Cost by Sector ===")

	if len(rows) == 0 {
		r.notice.Fprintln(r.w, "  cost data not available in dataset")

		return
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"Sector", "Avg Cost", "Median Cost", "Launches w/ Data"})

	for _, row := range rows {
		table.Append([]string{
			string(row.Sector),
			fmt.Sprintf("$%.1fM", row.Mean/1e6),
			fmt.Sprintf("$%.1fM", row.Median/1e6),
			strconv.Itoa(row.Count),
		})
	}

	table.Render()
}
