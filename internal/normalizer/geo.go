package normalizer

import (
	"strings"

	"elevron/internal/models"
)

// siteCountry is one gazetteer entry: a launch-site substring and the country
// it sits in.
type siteCountry struct {
	site    string
	country string
}

// GeoResolver maps free-text location strings to a country label. It favors
// the structured "site, region, country" form and falls back to a curated
// gazetteer for single-token site names.
type GeoResolver struct {
	// Held as an ordered slice, not a map, so first-match stays deterministic.
	sites []siteCountry
}

// NewGeoResolver creates a resolver with the curated launch-site gazetteer.
func NewGeoResolver() *GeoResolver {
	return &GeoResolver{
		sites: []siteCountry{
			{"kennedy", "USA"},
			{"cape canaveral", "USA"},
			{"vandenberg", "USA"},
			{"baikonur", "Kazakhstan"},
			{"plesetsk", "Russia"},
			{"vostochny", "Russia"},
			{"kourou", "French Guiana"},
			{"jiuquan", "China"},
			{"xichang", "China"},
			{"taiyuan", "China"},
			{"wenchang", "China"},
			{"tanegashima", "Japan"},
			{"satish dhawan", "India"},
			{"sriharikota", "India"},
			{"wallops", "USA"},
			{"mahia", "New Zealand"},
			{"palmachim", "Israel"},
		},
	}
}

// Resolve returns the country for a location string. Comma-delimited strings
// yield the trimmed text after the last comma; a blank suffix (trailing comma)
// falls through to the gazetteer like a comma-free string. Unmatched strings
// resolve to "Other", missing input to "Unknown".
func (g *GeoResolver) Resolve(location string) string {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return models.CountryUnknown
	}

	if i := strings.LastIndex(loc, ","); i >= 0 {
		if suffix := strings.TrimSpace(loc[i+1:]); suffix != "" {
			return suffix
		}
	}

	lower := strings.ToLower(loc)
	for _, sc := range g.sites {
		if strings.Contains(lower, sc.site) {
			return sc.country
		}
	}

	return models.CountryOther
}
