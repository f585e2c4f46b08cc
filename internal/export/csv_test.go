package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"elevron/internal/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("artifact is not valid CSV: %v", err)
	}

	return records
}

func TestNewExporter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	if _, err := NewExporter(dir); err != nil {
		t.Fatalf("NewExporter returned unexpected error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestExporter_SectorPerformance(t *testing.T) {
	e, err := NewExporter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, err := e.SectorPerformance([]models.SectorPerformance{
		{
			Sector:          models.SectorPrivate,
			TotalLaunches:   6,
			Successful:      5,
			SuccessRate:     83.33333,
			FirstYear:       2018,
			LastYear:        2021,
			YearsActive:     3,
			LaunchesPerYear: 2.0,
		},
	})
	if err != nil {
		t.Fatalf("SectorPerformance returned unexpected error: %v", err)
	}

	if filepath.Base(path) != SectorPerformanceFile {
		t.Errorf("path = %q, want base %q", path, SectorPerformanceFile)
	}

	records := readCSV(t, path)

	wantHeader := []string{
		"sector", "total_launches", "successful_launches", "success_rate",
		"first_launch", "last_launch", "years_active", "launches_per_year",
	}

	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	row := records[1]

	if row[0] != "Private" || row[1] != "6" || row[2] != "5" {
		t.Errorf("row = %v", row)
	}

	if row[3] != "83.3" {
		t.Errorf("success_rate = %q, want 83.3 (one decimal)", row[3])
	}

	if row[7] != "2.00" {
		t.Errorf("launches_per_year = %q, want 2.00", row[7])
	}
}

func TestExporter_OrganizationRankings(t *testing.T) {
	e, err := NewExporter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, err := e.OrganizationRankings([]models.OrganizationMetrics{
		{Organization: "SpaceX", TotalLaunches: 3, Successful: 3, SuccessRate: 100, Sector: models.SectorPrivate},
		{Organization: "NASA", TotalLaunches: 2, Successful: 2, SuccessRate: 100, Sector: models.SectorGovernment},
	})
	if err != nil {
		t.Fatalf("OrganizationRankings returned unexpected error: %v", err)
	}

	records := readCSV(t, path)

	if len(records) != 3 {
		t.Fatalf("got %d records, want header plus 2 rows", len(records))
	}

	if records[0][0] != "organization" || records[0][4] != "sector" {
		t.Errorf("header = %v", records[0])
	}

	if records[1][0] != "SpaceX" || records[1][3] != "100.0" {
		t.Errorf("first row = %v", records[1])
	}
}

func TestExporter_TemporalTrends(t *testing.T) {
	e, err := NewExporter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, err := e.TemporalTrends([]models.TemporalTrend{
		{Year: 2020, Sector: models.SectorPrivate, Launches: 4, SuccessRate: 75},
	})
	if err != nil {
		t.Fatalf("TemporalTrends returned unexpected error: %v", err)
	}

	records := readCSV(t, path)

	want := []string{"2020", "Private", "4", "75.0"}
	for i, col := range want {
		if records[1][i] != col {
			t.Errorf("row[%d] = %q, want %q", i, records[1][i], col)
		}
	}
}

func TestExporter_EmptyTableStillWritesHeader(t *testing.T) {
	e, err := NewExporter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, err := e.TemporalTrends(nil)
	if err != nil {
		t.Fatalf("TemporalTrends returned unexpected error: %v", err)
	}

	records := readCSV(t, path)

	if len(records) != 1 {
		t.Errorf("got %d records, want header only", len(records))
	}
}
