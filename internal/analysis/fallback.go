package analysis

import (
	"fmt"

	"accessibility-backend/internal/catalog"
	"accessibility-backend/internal/personas"
)

// fallbackModifications holds fixed modification sets based on common
// accessibility guidelines, substituted when upstream analysis is
// unavailable or unusable. Categories without an entry resolve to an empty
// modification list.
var fallbackModifications = map[personas.Category][]Modification{
	personas.LowVision: {
		{
			Element:   catalog.Element{ComponentName: "body", ElementType: "text", CurrentValue: "text-lg", Description: "Body text", CSSProperty: "font-size", Importance: "high"},
			NewValue:  "text-xl",
			Reasoning: "Larger text for better readability",
			Priority:  1,
		},
		{
			Element:   catalog.Element{ComponentName: "primary", ElementType: "color", CurrentValue: "hsl(336 75% 45%)", Description: "Primary brand color", CSSProperty: "color", Importance: "high"},
			NewValue:  "hsl(50 100% 60%)",
			Reasoning: "High contrast yellow for better visibility",
			Priority:  1,
		},
	},
	personas.Dyslexia: {
		{
			Element:   catalog.Element{ComponentName: "body", ElementType: "text", CurrentValue: "text-lg", Description: "Body text", CSSProperty: "font-size", Importance: "high"},
			NewValue:  "text-xl leading-relaxed",
			Reasoning: "Larger text with increased line spacing for dyslexia",
			Priority:  1,
		},
	},
	personas.CognitiveImpairment: {
		{
			Element:   catalog.Element{ComponentName: "grid", ElementType: "layout", CurrentValue: "grid md:grid-cols-3 gap-8", Description: "Grid layout", CSSProperty: "display", Importance: "high"},
			NewValue:  "grid md:grid-cols-2 gap-12",
			Reasoning: "Simplified layout with fewer columns and more spacing",
			Priority:  1,
		},
	},
}

// fallbackProfile builds the fixed profile for a category. It never fails.
func fallbackProfile(category personas.Category) Profile {
	source := fallbackModifications[category]
	modifications := make([]Modification, len(source))
	copy(modifications, source)

	return Profile{
		DisabilityType:     category,
		Modifications:      modifications,
		CSSClasses:         []string{fmt.Sprintf("persona-%s", category)},
		ContentAdaptations: []string{"Use fallback profile - manual review recommended"},
		Summary:            fmt.Sprintf("Fallback profile for %s - LLM analysis failed", category),
	}
}
