package analysis

import (
	"accessibility-backend/internal/catalog"
	"accessibility-backend/internal/personas"
)

// Modification is a single proposed change of one CSS property value on one
// UI element. Priority is a client-facing rank (1-5, 1 highest); values
// sourced upstream pass through without range validation.
type Modification struct {
	Element   catalog.Element `json:"element"`
	NewValue  string          `json:"new_value"`
	Reasoning string          `json:"reasoning"`
	Priority  int             `json:"priority"`
}

// Profile is the complete set of modifications, summary, and content
// adaptation notes for one disability category. Profiles are derived per
// request and never cached.
type Profile struct {
	DisabilityType     personas.Category `json:"disability_type"`
	Modifications      []Modification    `json:"modifications"`
	CSSClasses         []string          `json:"css_classes"`
	ContentAdaptations []string          `json:"content_adaptations"`
	Summary            string            `json:"summary"`
}
