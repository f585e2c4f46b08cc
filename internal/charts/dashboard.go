// Package charts renders the sector comparison dashboard with gonum/plot.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"elevron/internal/models"
	"elevron/pkg/utils"
)

// ErrNoPanels is returned when no aggregate table has any data to plot.
var ErrNoPanels = errors.New("no data available for any dashboard panel")

// accent is the shared bar color; per-sector series use sectorColors.
var accent = color.RGBA{R: 0x00, G: 0xD9, B: 0xFF, A: 0xFF}

var sectorColors = map[models.Sector]color.Color{
	models.SectorPrivate:       color.RGBA{R: 0x00, G: 0xD9, B: 0xFF, A: 0xFF},
	models.SectorGovernment:    color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF},
	models.SectorInternational: color.RGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF},
	models.SectorUnknown:       color.RGBA{R: 0x95, G: 0xE1, B: 0xD3, A: 0xFF},
}

// rollingWindow smooths the cadence lines, matching the published charts.
const rollingWindow = 3

// Dashboard holds the aggregate tables feeding the six panels. Panels whose
// table is empty are left blank rather than failing the render.
type Dashboard struct {
	Sectors       []models.SectorPerformance
	Trends        []models.TemporalTrend
	Organizations []models.OrganizationMetrics
	Countries     []models.CountryMetrics
	Costs         []models.CostStats
	TopN          int
}

// Render composites the panels into a single 2x3 PNG at path.
func (d *Dashboard) Render(path string) error {
	panels := [][]*plot.Plot{
		{d.launchesBySector(), d.successRateBySector(), d.cadenceOverTime()},
		{d.topOrganizations(), d.topCountries(), d.costBySector()},
	}

	populated := 0

	for _, row := range panels {
		for _, p := range row {
			if p != nil {
				populated++
			}
		}
	}

	if populated == 0 {
		return ErrNoPanels
	}

	img := vgimg.New(vg.Points(1350), vg.Points(800))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: 2,
		Cols: 3,
		PadX: vg.Points(15),
		PadY: vg.Points(15),
	}

	canvases := plot.Align(panels, tiles, dc)

	for r := range panels {
		for c := range panels[r] {
			if panels[r][c] != nil {
				panels[r][c].Draw(canvases[r][c])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dashboard file: %w", err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write dashboard PNG: %w", err)
	}

	return nil
}

func (d *Dashboard) launchesBySector() *plot.Plot {
	if len(d.Sectors) == 0 {
		return nil
	}

	values := make(plotter.Values, len(d.Sectors))
	names := make([]string, len(d.Sectors))

	for i, row := range d.Sectors {
		values[i] = float64(row.TotalLaunches)
		names[i] = string(row.Sector)
	}

	return barPanel("Launch Distribution by Sector", "Launches", values, names)
}

func (d *Dashboard) successRateBySector() *plot.Plot {
	if len(d.Sectors) == 0 {
		return nil
	}

	values := make(plotter.Values, len(d.Sectors))
	names := make([]string, len(d.Sectors))

	for i, row := range d.Sectors {
		values[i] = row.SuccessRate
		names[i] = string(row.Sector)
	}

	return barPanel("Success Rate by Sector", "Success Rate (%)", values, names)
}

func (d *Dashboard) cadenceOverTime() *plot.Plot {
	if len(d.Trends) == 0 {
		return nil
	}

	p := plot.New()
	p.Title.Text = "Launch Frequency Over Time"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = fmt.Sprintf("Launches per Year (%dyr avg)", rollingWindow)
	p.Add(plotter.NewGrid())

	bySector := make(map[models.Sector][]models.TemporalTrend)
	order := make([]models.Sector, 0, len(sectorColors))

	for _, row := range d.Trends {
		if _, seen := bySector[row.Sector]; !seen {
			order = append(order, row.Sector)
		}

		bySector[row.Sector] = append(bySector[row.Sector], row)
	}

	for _, sector := range order {
		trend := bySector[sector]

		counts := make([]float64, len(trend))
		for i, row := range trend {
			counts[i] = float64(row.Launches)
		}

		smoothed := rollingMean(counts, rollingWindow)

		pts := make(plotter.XYs, len(trend))
		for i, row := range trend {
			pts[i].X = float64(row.Year)
			pts[i].Y = smoothed[i]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			continue
		}

		line.Width = vg.Points(2)
		if c, ok := sectorColors[sector]; ok {
			line.Color = c
		}

		p.Add(line)
		p.Legend.Add(string(sector), line)
	}

	p.Legend.Top = true

	return p
}

func (d *Dashboard) topOrganizations() *plot.Plot {
	if len(d.Organizations) == 0 {
		return nil
	}

	rows := d.Organizations
	if len(rows) > d.TopN {
		rows = rows[:d.TopN]
	}

	values := make(plotter.Values, len(rows))
	names := make([]string, len(rows))

	for i, row := range rows {
		values[i] = float64(row.TotalLaunches)
		names[i] = utils.Truncate(row.Organization, 14)
	}

	return barPanel(fmt.Sprintf("Top %d Organizations", len(rows)), "Launches", values, names)
}

func (d *Dashboard) topCountries() *plot.Plot {
	if len(d.Countries) == 0 {
		return nil
	}

	rows := d.Countries
	if len(rows) > d.TopN {
		rows = rows[:d.TopN]
	}

	values := make(plotter.Values, len(rows))
	names := make([]string, len(rows))

	for i, row := range rows {
		values[i] = float64(row.TotalLaunches)
		names[i] = utils.Truncate(row.Country, 14)
	}

	return barPanel(fmt.Sprintf("Top %d Launch Countries", len(rows)), "Launches", values, names)
}

func (d *Dashboard) costBySector() *plot.Plot {
	if len(d.Costs) == 0 {
		return nil
	}

	values := make(plotter.Values, len(d.Costs))
	names := make([]string, len(d.Costs))

	for i, row := range d.Costs {
		values[i] = row.Mean / 1e6
		names[i] = string(row.Sector)
	}

	return barPanel("Average Launch Cost by Sector", "Cost ($M)", values, names)
}

func barPanel(title, yLabel string, values plotter.Values, names []string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil
	}

	bars.Color = accent
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p
}

// rollingMean computes a trailing mean with the given window, clamped at the
// start of the series.
func rollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))

	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}

		sum := 0.0
		for j := start; j <= i; j++ {
			sum += values[j]
		}

		out[i] = sum / float64(i-start+1)
	}

	return out
}
