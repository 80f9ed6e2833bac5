package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"accessibility-backend/internal/catalog"
	"accessibility-backend/internal/personas"
)

// ErrNoJSONObject is returned when no brace-delimited payload can be located
// in the upstream text.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// extractJSONObject locates the first '{' and the last '}' in raw and
// returns the substring between them inclusive. Models routinely wrap their
// structured payload in commentary text; this tolerates that at the cost of
// strictness. Kept narrow so a structured-output mode can replace it later
// without touching callers.
func extractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONObject
	}
	return raw[start : end+1], nil
}

type wireElement struct {
	ComponentName *string `json:"component_name"`
	ElementType   *string `json:"element_type"`
	CurrentValue  *string `json:"current_value"`
	Description   *string `json:"description"`
	CSSProperty   *string `json:"css_property"`
	Importance    *string `json:"importance"`
}

type wireModification struct {
	Element   *wireElement `json:"element"`
	NewValue  *string      `json:"new_value"`
	Reasoning *string      `json:"reasoning"`
	Priority  *int         `json:"priority"`
}

type wireProfile struct {
	Modifications      *[]wireModification `json:"modifications"`
	CSSClasses         []string            `json:"css_classes"`
	ContentAdaptations []string            `json:"content_adaptations"`
	Summary            string              `json:"summary"`
}

// parseProfile decodes the upstream response text into a Profile. Any
// structural defect is an error; callers substitute the fallback profile.
func parseProfile(raw string, category personas.Category) (Profile, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return Profile{}, err
	}

	var wire wireProfile
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return Profile{}, fmt.Errorf("decode analysis payload: %w", err)
	}
	if wire.Modifications == nil {
		return Profile{}, errors.New("analysis payload missing modifications")
	}

	modifications := make([]Modification, 0, len(*wire.Modifications))
	for i, m := range *wire.Modifications {
		if m.Element == nil || m.NewValue == nil || m.Reasoning == nil || m.Priority == nil {
			return Profile{}, fmt.Errorf("modification %d missing required fields", i)
		}
		el := m.Element
		if el.ComponentName == nil || el.ElementType == nil || el.CurrentValue == nil ||
			el.Description == nil || el.CSSProperty == nil || el.Importance == nil {
			return Profile{}, fmt.Errorf("modification %d element missing required fields", i)
		}
		modifications = append(modifications, Modification{
			Element: catalog.Element{
				ComponentName: *el.ComponentName,
				ElementType:   *el.ElementType,
				CurrentValue:  *el.CurrentValue,
				Description:   *el.Description,
				CSSProperty:   *el.CSSProperty,
				Importance:    *el.Importance,
			},
			NewValue:  *m.NewValue,
			Reasoning: *m.Reasoning,
			Priority:  *m.Priority,
		})
	}

	cssClasses := wire.CSSClasses
	if cssClasses == nil {
		cssClasses = []string{}
	}
	contentAdaptations := wire.ContentAdaptations
	if contentAdaptations == nil {
		contentAdaptations = []string{}
	}

	return Profile{
		DisabilityType:     category,
		Modifications:      modifications,
		CSSClasses:         cssClasses,
		ContentAdaptations: contentAdaptations,
		Summary:            wire.Summary,
	}, nil
}
