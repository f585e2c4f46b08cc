package normalizer

import (
	"errors"

	"elevron/internal/dataset"
)

// Validation errors. These are the only fatal conditions in the pipeline;
// per-row problems degrade to partial records instead.
var (
	ErrNilTable  = errors.New("dataset table is nil")
	ErrNoColumns = errors.New("dataset has no columns")
	ErrNoRows    = errors.New("dataset has no data rows")
)

// Validator checks that the raw table is structurally usable.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the table structure.
func (v *Validator) Validate(table *dataset.Table) error {
	if table == nil {
		return ErrNilTable
	}

	if len(table.Headers) == 0 {
		return ErrNoColumns
	}

	if table.Len() == 0 {
		return ErrNoRows
	}

	return nil
}
