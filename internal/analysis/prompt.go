package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"accessibility-backend/internal/catalog"
	"accessibility-backend/internal/personas"
)

const systemPrompt = "You are an expert in web accessibility and UI design. You analyze UI components and provide specific recommendations for different disability types."

const promptTemplate = `Analyze the UI components for accessibility modifications needed for users with %s.

Disability Information:
- Description: %s
- Key Needs: %s

Available UI Components and Elements:
%s

Please provide a comprehensive analysis including:

1. **Typography Modifications**: Font sizes, weights, line heights, font families
2. **Color Modifications**: Background, foreground, primary colors, contrast ratios
3. **Layout Modifications**: Spacing, padding, margins, grid layouts
4. **Interactive Element Modifications**: Button sizes, hover states, focus indicators
5. **Content Structure Modifications**: Information hierarchy, content density

For each modification, provide:
- Specific CSS property and value
- Reasoning for the change
- Priority level (1-5, where 1 is highest)
- Whether it requires content adaptation or just UI changes

Return your response as a JSON object with the following structure:
{
    "modifications": [
        {
            "element": {
                "component_name": "string",
                "element_type": "string",
                "current_value": "string",
                "description": "string",
                "css_property": "string",
                "importance": "string"
            },
            "new_value": "string",
            "reasoning": "string",
            "priority": 1-5
        }
    ],
    "css_classes": ["list of CSS classes to add"],
    "content_adaptations": ["list of content changes needed"],
    "summary": "brief summary of key changes"
}`

// BuildPrompt constructs the analysis prompt for a category. It has no side
// effects beyond string construction.
func BuildPrompt(category personas.Category) (string, error) {
	components, err := componentsJSON()
	if err != nil {
		return "", fmt.Errorf("serialize catalog: %w", err)
	}
	info := personas.InfoFor(category)
	readable := strings.ReplaceAll(string(category), "_", " ")
	return fmt.Sprintf(promptTemplate, readable, info.Description, info.Needs, components), nil
}

// componentsJSON serializes the catalog as an indented JSON object keyed by
// group name, preserving catalog group order.
func componentsJSON() (string, error) {
	groups := catalog.Groups()
	var b strings.Builder
	b.WriteString("{\n")
	for i, g := range groups {
		payload, err := json.MarshalIndent(g.Elements, "  ", "  ")
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "  %q: %s", g.Name, payload)
		if i < len(groups)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String(), nil
}
