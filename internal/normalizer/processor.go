// Package normalizer maps the heterogeneous raw launch table onto the
// canonical analysis schema: locate columns, coerce types, classify
// organizations, resolve launch-site countries.
package normalizer

import (
	"fmt"

	"elevron/internal/dataset"
	"elevron/internal/models"
)

// Options control the coercion and classification policies.
type Options struct {
	MinYear                      int
	MaxYear                      int
	CountPartialFailureAsSuccess bool
}

// Result is the normalized dataset plus the column mapping it was derived
// from and the non-fatal warnings raised along the way.
type Result struct {
	Records  []models.LaunchRecord
	Columns  ColumnMap
	Warnings []string
}

// Processor runs the normalization pipeline over a raw table.
type Processor struct {
	validator  *Validator
	coercer    *Coercer
	classifier *Classifier
	geo        *GeoResolver
}

// NewProcessor creates a processor with the given policies.
func NewProcessor(opts Options) *Processor {
	return &Processor{
		validator:  NewValidator(),
		coercer:    NewCoercer(opts.MinYear, opts.MaxYear, opts.CountPartialFailureAsSuccess),
		classifier: NewClassifier(),
		geo:        NewGeoResolver(),
	}
}

// Process normalizes every row of the table into a LaunchRecord. Malformed
// cells degrade to absent derived fields; only a structurally unusable table
// is an error. Running Process twice over the same table yields identical
// records.
func (p *Processor) Process(table *dataset.Table) (*Result, error) {
	if err := p.validator.Validate(table); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	columns := LocateColumns(table.Headers)

	result := &Result{
		Columns: columns,
		Records: make([]models.LaunchRecord, 0, table.Len()),
	}

	for _, field := range columns.Missing() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no %s column located; derived %s fields will be absent", field, field))
	}

	for i := range table.Rows {
		result.Records = append(result.Records, p.normalizeRow(table, columns, i))
	}

	return result, nil
}

func (p *Processor) normalizeRow(table *dataset.Table, columns ColumnMap, row int) models.LaunchRecord {
	rec := models.LaunchRecord{
		Country: models.CountryUnknown,
	}

	if col, ok := columns.Col(FieldOrganization); ok {
		rec.Organization = table.Cell(row, col)
	}

	rec.OrgType = p.classifier.Classify(rec.Organization)

	if col, ok := columns.Col(FieldRocket); ok {
		rec.RocketName = table.Cell(row, col)
	}

	if col, ok := columns.Col(FieldDate); ok {
		rec.LaunchYear = p.coercer.Year(table.Cell(row, col))
	}

	if col, ok := columns.Col(FieldStatus); ok {
		rec.IsSuccessful, rec.StatusRaw = p.coercer.SuccessFlag(table.Cell(row, col))
	}

	if col, ok := columns.Col(FieldCost); ok {
		rec.LaunchCost = p.coercer.Cost(table.Cell(row, col))
	}

	if col, ok := columns.Col(FieldLocation); ok {
		rec.Country = p.geo.Resolve(table.Cell(row, col))
	}

	return rec
}
