package normalizer

import (
	"strings"

	"elevron/internal/models"
)

// classificationRule pairs an ordered keyword list with the sector it implies.
type classificationRule struct {
	keywords []string
	sector   models.Sector
}

// Classifier assigns organizations to sectors by an ordered keyword rule
// chain evaluated first-match-wins. The rule order is load-bearing: several
// names match keywords in more than one list (military space branches,
// "Arianespace"), and swapping rule order changes their classification.
type Classifier struct {
	rules []classificationRule
}

// NewClassifier creates a classifier with the curated rule tables.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []classificationRule{
			{
				keywords: []string{
					"spacex", "space x", "blue origin", "rocket lab", "virgin orbit",
					"virgin galactic", "northrop grumman", "united launch alliance",
					"ula", "arianespace", "sea launch", "orbital atk", "relativity",
					"astra", "firefly", "ispace", "landspace", "galactic energy",
					"expace", "linkspace", "oneweb",
				},
				sector: models.SectorPrivate,
			},
			{
				keywords: []string{
					"international", "multinational", "esa", "eumetsat",
				},
				sector: models.SectorInternational,
			},
			{
				keywords: []string{
					"nasa", "roscosmos", "cnsa", "isro", "jaxa",
					"russian space forces", "us air force", "us navy", "us space force",
					"iranian space agency", "korean aerospace", "france", "soviet",
					"ministry of defence", "armed forces", "military",
				},
				sector: models.SectorGovernment,
			},
			{
				// Generic tech-company vocabulary, tried only after the
				// curated lists miss.
				keywords: []string{"space", "aerospace", "technologies", "industries"},
				sector:   models.SectorPrivate,
			},
		},
	}
}

// Classify returns the sector for an organization name. Empty names are
// Unknown; names matching no rule default to Government.
func (c *Classifier) Classify(orgName string) models.Sector {
	name := strings.ToLower(strings.TrimSpace(orgName))
	if name == "" {
		return models.SectorUnknown
	}

	for _, rule := range c.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.sector
			}
		}
	}

	return models.SectorGovernment
}
