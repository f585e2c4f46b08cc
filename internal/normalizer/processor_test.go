package normalizer

import (
	"reflect"
	"strings"
	"testing"

	"elevron/internal/dataset"
	"elevron/internal/models"
)

const sampleCSV = `Company Name,Location,Date,Rocket,Mission Status,Price
SpaceX,"LC-39A, Kennedy Space Center, Florida, USA","Fri Aug 07, 2020 05:12 UTC",Falcon 9,Success,"$62 million"
Roscosmos,"Site 31/6, Baikonur Cosmodrome, Kazakhstan","Thu Jul 23, 2020 14:26 UTC",Soyuz 2.1a,Failure,
NASA,Wallops Flight Facility,bad date,Antares,,not a price
`

func testOptions() Options {
	return Options{MinYear: 1957, MaxYear: 2023, CountPartialFailureAsSuccess: true}
}

func loadSample(t *testing.T, csv string) *dataset.Table {
	t.Helper()

	table, err := dataset.Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse returned unexpected error: %v", err)
	}

	return table
}

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(testOptions())
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor(testOptions())

	result, err := p.Process(loadSample(t, sampleCSV))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if len(result.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(result.Records))
	}

	if len(result.Warnings) != 0 {
		t.Errorf("got warnings %v, want none", result.Warnings)
	}

	first := result.Records[0]

	if first.Organization != "SpaceX" {
		t.Errorf("organization = %q, want SpaceX", first.Organization)
	}

	if first.OrgType != models.SectorPrivate {
		t.Errorf("org type = %s, want Private", first.OrgType)
	}

	if !first.HasYear() || *first.LaunchYear != 2020 {
		t.Errorf("launch year = %v, want 2020", first.LaunchYear)
	}

	if !first.Succeeded() {
		t.Error("first record should be successful")
	}

	if !first.HasCost() || *first.LaunchCost != 62e6 {
		t.Errorf("launch cost = %v, want 62000000", first.LaunchCost)
	}

	if first.Country != "USA" {
		t.Errorf("country = %q, want USA", first.Country)
	}
}

func TestProcessor_Process_PartialRecordDegradation(t *testing.T) {
	p := NewProcessor(testOptions())

	result, err := p.Process(loadSample(t, sampleCSV))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	// Row 2: empty status and cost.
	second := result.Records[1]

	if second.StatusRaw != "failure" {
		t.Errorf("status raw = %q, want failure", second.StatusRaw)
	}

	if !second.HasOutcome() || second.Succeeded() {
		t.Error("second record should carry an explicit failure outcome")
	}

	if second.HasCost() {
		t.Errorf("cost = %v, want absent", *second.LaunchCost)
	}

	// Row 3: unparseable date, missing status, garbage cost, gazetteer location.
	third := result.Records[2]

	if third.HasYear() {
		t.Errorf("year = %v, want absent for unparseable date", *third.LaunchYear)
	}

	if third.HasOutcome() {
		t.Error("outcome should be absent for missing status, not defaulted to false")
	}

	if third.HasCost() {
		t.Error("cost should be absent for unparseable text, not zero")
	}

	if third.Country != "USA" {
		t.Errorf("country = %q, want USA via gazetteer", third.Country)
	}
}

func TestProcessor_Process_MissingColumns(t *testing.T) {
	p := NewProcessor(testOptions())

	csv := "Organisation,Detail\nSpaceX,Falcon 9 v1.0\n"

	result, err := p.Process(loadSample(t, csv))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if len(result.Warnings) == 0 {
		t.Error("expected warnings for missing columns")
	}

	rec := result.Records[0]

	if rec.Organization != "SpaceX" {
		t.Errorf("organization = %q, want SpaceX", rec.Organization)
	}

	if rec.HasYear() || rec.HasOutcome() || rec.HasCost() {
		t.Error("derived fields should all be absent when their columns are missing")
	}

	if rec.Country != models.CountryUnknown {
		t.Errorf("country = %q, want Unknown", rec.Country)
	}
}

func TestProcessor_Process_EmptyOrganizationIsUnknown(t *testing.T) {
	p := NewProcessor(testOptions())

	csv := "Company Name,Status\n,Success\n"

	result, err := p.Process(loadSample(t, csv))
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if result.Records[0].OrgType != models.SectorUnknown {
		t.Errorf("org type = %s, want Unknown", result.Records[0].OrgType)
	}
}

func TestProcessor_Process_Idempotent(t *testing.T) {
	p := NewProcessor(testOptions())
	table := loadSample(t, sampleCSV)

	first, err := p.Process(table)
	if err != nil {
		t.Fatalf("first Process returned unexpected error: %v", err)
	}

	second, err := p.Process(table)
	if err != nil {
		t.Fatalf("second Process returned unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Error("normalization is not deterministic across runs")
	}

	if !reflect.DeepEqual(first.Columns, second.Columns) {
		t.Error("column mapping is not stable across runs")
	}
}

func TestProcessor_Process_UnusableTable(t *testing.T) {
	p := NewProcessor(testOptions())

	if _, err := p.Process(nil); err == nil {
		t.Error("expected error for nil table")
	}
}
