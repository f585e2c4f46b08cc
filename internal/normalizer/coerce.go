package normalizer

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order. The first covers the native format of the
// common launch datasets ("Fri Aug 07, 2020 05:12 UTC").
var dateLayouts = []string{
	"Mon Jan 02, 2006 15:04 MST",
	"Mon Jan 02, 2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"1/2/2006",
}

// Coercer converts raw cell text into typed derived fields. Failures yield
// nil, never a sentinel value, so absent data stays out of the aggregates.
type Coercer struct {
	minYear      int
	maxYear      int
	successVocab map[string]bool
	currency     *strings.Replacer
}

// NewCoercer creates a coercer bounded to the plausible year window.
// countPartialFailure keeps "partial failure" in the success vocabulary,
// matching the established reporting policy.
func NewCoercer(minYear, maxYear int, countPartialFailure bool) *Coercer {
	vocab := map[string]bool{
		"success":    true,
		"successful": true,
	}
	if countPartialFailure {
		vocab["partial failure"] = true
	}

	return &Coercer{
		minYear:      minYear,
		maxYear:      maxYear,
		successVocab: vocab,
		currency:     strings.NewReplacer("$", "", ",", ""),
	}
}

// Year parses a calendar date and returns its year, or nil when the text is
// unparseable or the year falls outside the plausible window.
func (c *Coercer) Year(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	// A bare four-digit year is accepted directly.
	if len(s) == 4 {
		if y, err := strconv.Atoi(s); err == nil {
			return c.boundedYear(y)
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return c.boundedYear(t.Year())
		}
	}

	return nil
}

func (c *Coercer) boundedYear(year int) *int {
	if year < c.minYear || year > c.maxYear {
		return nil
	}

	return &year
}

// SuccessFlag lower-cases and trims status text and maps it onto the success
// vocabulary. Missing text yields a nil flag, which downstream aggregation
// excludes from rate denominators; any other recognized-or-not text yields an
// explicit true or false.
func (c *Coercer) SuccessFlag(raw string) (*bool, string) {
	status := strings.ToLower(strings.TrimSpace(raw))
	if status == "" {
		return nil, ""
	}

	flag := c.successVocab[status]

	return &flag, status
}

// Cost parses free-text cost values like "$62 million", "450M" or "1.2 billion"
// into base currency units. The unit must be the whole token remaining after
// the number; substring matching would misread the "m" and "b" abbreviations
// inside unrelated words. Any parse failure yields nil, never zero.
func (c *Coercer) Cost(raw string) *float64 {
	s := strings.TrimSpace(c.currency.Replace(raw))
	if s == "" {
		return nil
	}

	fields := strings.Fields(s)
	if len(fields) > 2 {
		return nil
	}

	numTok := fields[0]

	unitTok := ""
	if len(fields) == 2 {
		unitTok = strings.ToLower(fields[1])
	}

	scale := 1.0

	value, err := strconv.ParseFloat(numTok, 64)

	switch {
	case err == nil && unitTok != "":
		scale = unitScale(unitTok)
		if scale == 0 {
			return nil
		}
	case err != nil && unitTok == "" && len(numTok) > 1:
		// Attached suffix form: "62M", "1.1b".
		scale = unitScale(strings.ToLower(numTok[len(numTok)-1:]))
		if scale == 0 {
			return nil
		}

		value, err = strconv.ParseFloat(numTok[:len(numTok)-1], 64)
		if err != nil {
			return nil
		}
	case err != nil:
		return nil
	}

	if value < 0 {
		return nil
	}

	cost := value * scale

	return &cost
}

// unitScale returns the multiplier for a whole unit token, or 0 when the
// token is not a recognized unit.
func unitScale(token string) float64 {
	switch token {
	case "million", "m":
		return 1e6
	case "billion", "b":
		return 1e9
	default:
		return 0
	}
}
