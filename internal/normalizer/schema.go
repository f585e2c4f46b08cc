package normalizer

import "strings"

// Field identifies a semantic column of the analysis schema.
type Field string

// Semantic fields located in the raw header row.
const (
	FieldDate         Field = "date"
	FieldOrganization Field = "organization"
	FieldRocket       Field = "rocket"
	FieldStatus       Field = "status"
	FieldCost         Field = "cost"
	FieldLocation     Field = "location"
)

// fieldCandidates lists, per field, the ordered header name patterns to try.
// Earlier candidates win over later ones; within a candidate, the first
// matching column wins. Matching is substring over normalized headers.
var fieldCandidates = []struct {
	field      Field
	candidates []string
}{
	{FieldDate, []string{"date"}},
	{FieldOrganization, []string{"company_name", "organisation", "company"}},
	{FieldRocket, []string{"rocket", "rocket_name"}},
	{FieldStatus, []string{"status", "mission_status", "launch_status"}},
	{FieldCost, []string{"price", "cost"}},
	{FieldLocation, []string{"location", "country"}},
}

// ColumnMap maps located semantic fields to source column indices. Fields
// with no qualifying column are absent from the map; absence is a valid
// outcome, not an error.
type ColumnMap map[Field]int

// LocateColumns finds the best-effort column for each semantic field. The
// result is computed once per dataset load and stays stable for its lifetime.
func LocateColumns(headers []string) ColumnMap {
	mapping := make(ColumnMap)

	for _, fc := range fieldCandidates {
	candidates:
		for _, candidate := range fc.candidates {
			for i, header := range headers {
				if strings.Contains(header, candidate) {
					mapping[fc.field] = i

					break candidates
				}
			}
		}
	}

	return mapping
}

// Col returns the column index for a field and whether it was located.
func (m ColumnMap) Col(field Field) (int, bool) {
	idx, ok := m[field]

	return idx, ok
}

// Has reports whether a field was located.
func (m ColumnMap) Has(field Field) bool {
	_, ok := m[field]

	return ok
}

// Missing returns the fields that could not be located, in schema order.
func (m ColumnMap) Missing() []Field {
	var missing []Field

	for _, fc := range fieldCandidates {
		if !m.Has(fc.field) {
			missing = append(missing, fc.field)
		}
	}

	return missing
}
