package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"elevron/internal/analyzer"
	"elevron/internal/models"
	"elevron/pkg/metadata"
	"elevron/pkg/utils"
)

// MarkdownReporter renders the analysis results as a markdown document,
// terminated by a signed provenance block.
type MarkdownReporter struct {
	topN int
}

// NewMarkdownReporter creates a markdown reporter limiting ranked sections
// to topN rows.
func NewMarkdownReporter(topN int) *MarkdownReporter {
	return &MarkdownReporter{topN: topN}
}

// Render produces the full signed document. source names the input dataset
// recorded in the provenance block.
func (m *MarkdownReporter) Render(res *analyzer.Results, source string) string {
	var b strings.Builder

	b.WriteString("# Space Launch Analysis Report\n")

	m.overview(&b, res.Overview)
	m.sectors(&b, res.Sectors)
	m.growth(&b, res.Growth)
	m.organizations(&b, res.Organizations)
	m.rockets(&b, res.Rockets)
	m.countries(&b, res.Countries)
	m.innovation(&b, res.Entrants, res.Spotlight)
	m.costs(&b, res.Costs)

	return metadata.Sign(b.String(), source, res.Overview.TotalRecords)
}

// Write renders the document to path, creating parent directories.
func (m *MarkdownReporter) Write(path string, res *analyzer.Results, source string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	content := m.Render(res, source)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func (m *MarkdownReporter) overview(b *strings.Builder, ov models.DatasetOverview) {
	b.WriteString("\n## Dataset Overview\n\n")
	fmt.Fprintf(b, "- Total launches analyzed: %d\n", ov.TotalRecords)

	if ov.FirstYear > 0 {
		fmt.Fprintf(b, "- Date range: %d - %d\n", ov.FirstYear, ov.LastYear)
	}

	fmt.Fprintf(b, "- Overall success rate: %.1f%%\n", ov.OverallSuccessRate)
	fmt.Fprintf(b, "- Unique organizations: %d\n", ov.UniqueOrganizations)
	fmt.Fprintf(b, "- Unique rockets: %d\n", ov.UniqueRockets)
}

func (m *MarkdownReporter) sectors(b *strings.Builder, rows []models.SectorPerformance) {
	b.WriteString("\n## Sector Performance\n\n")

	if len(rows) == 0 {
		b.WriteString("No sector data available.\n")

		return
	}

	table := [][]string{{"Sector", "Launches", "Success Rate", "Launches/Year", "Years Active"}}
	for _, row := range rows {
		table = append(table, []string{
			string(row.Sector),
			strconv.Itoa(row.TotalLaunches),
			fmt.Sprintf("%.1f%%", row.SuccessRate),
			fmt.Sprintf("%.1f", row.LaunchesPerYear),
			strconv.Itoa(row.YearsActive),
		})
	}

	writeTable(b, table)
}

func (m *MarkdownReporter) growth(b *strings.Builder, rows []models.SectorCount) {
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(b, "\n## Launch Growth (since %d)\n\n", analyzer.GrowthEraStart)

	for _, row := range rows {
		fmt.Fprintf(b, "- %s: %d launches\n", row.Sector, row.Launches)
	}
}

func (m *MarkdownReporter) innovation(b *strings.Builder, entrants []models.DecadeEntrants, spotlight *models.SpotlightStats) {
	if len(entrants) > 0 {
		b.WriteString("\n## New Space Organizations by Decade\n\n")

		for _, row := range entrants {
			fmt.Fprintf(b, "- %ds: %d new organizations\n", row.Decade, row.NewEntrants)
		}
	}

	if spotlight != nil {
		fmt.Fprintf(b, "\n## %s Launch Statistics\n\n", spotlight.Organization)
		fmt.Fprintf(b, "- Total launches: %d\n", spotlight.TotalLaunches)
		fmt.Fprintf(b, "- Success rate: %.1f%%\n", spotlight.SuccessRate)
		fmt.Fprintf(b, "- Launches since %d: %d\n", analyzer.SpotlightEraStart, spotlight.RecentCount)
	}
}

func (m *MarkdownReporter) organizations(b *strings.Builder, rows []models.OrganizationMetrics) {
	fmt.Fprintf(b, "\n## Top Organizations\n\n")

	if len(rows) == 0 {
		b.WriteString("No organizations met the launch threshold.\n")

		return
	}

	table := [][]string{{"Organization", "Launches", "Success Rate", "Sector"}}

	for i, row := range rows {
		if i >= m.topN {
			break
		}

		table = append(table, []string{
			row.Organization,
			strconv.Itoa(row.TotalLaunches),
			fmt.Sprintf("%.1f%%", row.SuccessRate),
			string(row.Sector),
		})
	}

	writeTable(b, table)
}

func (m *MarkdownReporter) rockets(b *strings.Builder, rows []models.RocketMetrics) {
	b.WriteString("\n## Top Rockets\n\n")

	if len(rows) == 0 {
		b.WriteString("Rocket name data not available.\n")

		return
	}

	table := [][]string{{"Rocket", "Primary User", "Launches", "Success Rate"}}

	for i, row := range rows {
		if i >= m.topN {
			break
		}

		table = append(table, []string{
			row.RocketName,
			row.PrimaryUser,
			strconv.Itoa(row.TotalLaunches),
			fmt.Sprintf("%.1f%%", row.SuccessRate),
		})
	}

	writeTable(b, table)
}

func (m *MarkdownReporter) countries(b *strings.Builder, rows []models.CountryMetrics) {
	b.WriteString("\n## Top Launch Countries\n\n")

	if len(rows) == 0 {
		b.WriteString("Launch location data not available.\n")

		return
	}

	table := [][]string{{"Country", "Launches", "Success Rate"}}

	for i, row := range rows {
		if i >= m.topN {
			break
		}

		table = append(table, []string{
			row.Country,
			strconv.Itoa(row.TotalLaunches),
			fmt.Sprintf("%.1f%%", row.SuccessRate),
		})
	}

	writeTable(b, table)
}

func (m *MarkdownReporter) costs(b *strings.Builder, rows []models.CostStats) {
	b.WriteString("\n## Launch Cost by Sector\n\n")

	if len(rows) == 0 {
		b.WriteString("Cost data not available in dataset.\n")

		return
	}

	table := [][]string{{"Sector", "Avg Cost", "Median Cost", "Launches w/ Data"}}
	for _, row := range rows {
		table = append(table, []string{
			string(row.Sector),
			fmt.Sprintf("$%.1fM", row.Mean/1e6),
			fmt.Sprintf("$%.1fM", row.Median/1e6),
			strconv.Itoa(row.Count),
		})
	}

	writeTable(b, table)
}

// writeTable renders rows as a markdown table with width-aware cell padding,
// the first row being the header.
func writeTable(b *strings.Builder, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(rows[0]))

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}

			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeRow := func(row []string) {
		b.WriteString("|")

		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			b.WriteString(" " + utils.PadRight(cell, widths[i]) + " |")
		}

		b.WriteString("\n")
	}

	writeRow(rows[0])

	b.WriteString("|")

	for _, w := range widths {
		b.WriteString(" " + strings.Repeat("-", w) + " |")
	}

	b.WriteString("\n")

	for _, row := range rows[1:] {
		writeRow(row)
	}
}
