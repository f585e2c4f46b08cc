// Package models defines the normalized launch record and derived metric rows.
package models

// Sector is the derived organization classification.
type Sector string

// Sector values. Every record carries exactly one of these.
const (
	SectorPrivate       Sector = "Private"
	SectorGovernment    Sector = "Government"
	SectorInternational Sector = "International"
	SectorUnknown       Sector = "Unknown"
)

// Country sentinels returned by the geo resolver.
const (
	CountryUnknown = "Unknown"
	CountryOther   = "Other"
)

// LaunchRecord is one normalized row of the dataset. Derived fields that can
// be missing are pointers; nil means the source value was absent or
// unparseable, and downstream aggregation excludes nil rather than defaulting.
type LaunchRecord struct {
	Organization string   `json:"organization"`
	OrgType      Sector   `json:"orgType"`
	RocketName   string   `json:"rocketName,omitempty"`
	LaunchYear   *int     `json:"launchYear,omitempty"`
	StatusRaw    string   `json:"statusRaw,omitempty"`
	IsSuccessful *bool    `json:"isSuccessful,omitempty"`
	LaunchCost   *float64 `json:"launchCost,omitempty"`
	Country      string   `json:"country"`
}

// HasYear reports whether the launch year was parseable.
func (r *LaunchRecord) HasYear() bool {
	return r.LaunchYear != nil
}

// HasOutcome reports whether the record carries a recognized status flag.
func (r *LaunchRecord) HasOutcome() bool {
	return r.IsSuccessful != nil
}

// Succeeded reports a known-successful launch. Records without an outcome
// report false here and must be excluded from rate denominators via HasOutcome.
func (r *LaunchRecord) Succeeded() bool {
	return r.IsSuccessful != nil && *r.IsSuccessful
}

// HasCost reports whether a launch cost was parseable.
func (r *LaunchRecord) HasCost() bool {
	return r.LaunchCost != nil
}
