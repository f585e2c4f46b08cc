package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := "Company Name,Mission Status\nSpaceX,Success\nNASA,Failure\n"

	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned unexpected error: %v", err)
	}

	wantRaw := []string{"Company Name", "Mission Status"}
	wantNorm := []string{"company_name", "mission_status"}

	for i := range wantRaw {
		if table.RawHeaders[i] != wantRaw[i] {
			t.Errorf("raw header %d = %q, want %q", i, table.RawHeaders[i], wantRaw[i])
		}

		if table.Headers[i] != wantNorm[i] {
			t.Errorf("normalized header %d = %q, want %q", i, table.Headers[i], wantNorm[i])
		}
	}

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}

	if table.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", table.Skipped)
	}
}

func TestParse_QuotedCommas(t *testing.T) {
	input := "Location,Price\n\"LC-39A, Kennedy Space Center, Florida, USA\",\"$62 million\"\n"

	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned unexpected error: %v", err)
	}

	if got := table.Cell(0, 0); got != "LC-39A, Kennedy Space Center, Florida, USA" {
		t.Errorf("Cell(0,0) = %q", got)
	}
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	input := "a,b\nok,row\n\"unterminated,quote\nanother,row\n"

	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned unexpected error: %v", err)
	}

	if table.Skipped == 0 {
		t.Error("expected at least one skipped row")
	}

	if table.Len() == 0 {
		t.Error("valid rows should survive a malformed neighbor")
	}
}

func TestParse_RaggedRows(t *testing.T) {
	input := "a,b,c\n1,2,3\nshort\n"

	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned unexpected error: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (ragged rows are kept)", table.Len())
	}

	if got := table.Cell(1, 0); got != "short" {
		t.Errorf("Cell(1,0) = %q, want short", got)
	}

	// Out-of-range columns on the short row read as empty.
	if got := table.Cell(1, 2); got != "" {
		t.Errorf("Cell(1,2) = %q, want empty", got)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); !errors.Is(err, ErrNoHeader) {
		t.Errorf("err = %v, want ErrNoHeader", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launches.csv")

	content := "Company Name,Date\nSpaceX,\"Fri Aug 07, 2020 05:12 UTC\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}

	if table.Path != path {
		t.Errorf("Path = %q, want %q", table.Path, path)
	}

	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
