package personas

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies a disability persona the analyzer can tailor output for.
type Category string

const (
	WheelchairUser      Category = "wheelchair_user"
	Dyslexia            Category = "dyslexia"
	CognitiveImpairment Category = "cognitive_impairment"
	AnxietyTravelFear   Category = "anxiety_travel_fear"
	LowVision           Category = "low_vision"
)

// ErrInvalidCategory is returned when a string is not a recognized category.
var ErrInvalidCategory = errors.New("invalid disability type")

var all = []Category{
	WheelchairUser,
	Dyslexia,
	CognitiveImpairment,
	AnxietyTravelFear,
	LowVision,
}

// All returns every supported category in declaration order.
func All() []Category {
	out := make([]Category, len(all))
	copy(out, all)
	return out
}

// Parse validates a raw string against the supported categories.
func Parse(raw string) (Category, error) {
	candidate := Category(strings.TrimSpace(raw))
	for _, c := range all {
		if c == candidate {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s. Valid types: %s", ErrInvalidCategory, raw, ValidValues())
}

// ValidValues renders the supported category values for error messages.
func ValidValues() string {
	values := make([]string, len(all))
	for i, c := range all {
		values[i] = string(c)
	}
	return "[" + strings.Join(values, ", ") + "]"
}

// DisplayName converts a category value to a human-readable name,
// e.g. "anxiety_travel_fear" -> "Anxiety Travel Fear".
func (c Category) DisplayName() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ClassName returns the persona CSS class for the category,
// e.g. "anxiety_travel_fear" -> "persona-anxiety-travel-fear".
func (c Category) ClassName() string {
	return "persona-" + strings.ReplaceAll(string(c), "_", "-")
}

// Info describes a persona for prompt construction.
type Info struct {
	Description string
	Needs       string
}

var infoTable = map[Category]Info{
	WheelchairUser: {
		Description: "Users with mobility impairments who use wheelchairs",
		Needs:       "Clear navigation, accessible button sizes, good contrast, logical information hierarchy",
	},
	Dyslexia: {
		Description: "Users with reading difficulties",
		Needs:       "Dyslexia-friendly fonts, increased line spacing, high contrast, simple layouts, reduced cognitive load",
	},
	CognitiveImpairment: {
		Description: "Users with cognitive disabilities or learning difficulties",
		Needs:       "Simple layouts, clear navigation, reduced distractions, consistent design patterns, step-by-step processes",
	},
	AnxietyTravelFear: {
		Description: "Users with anxiety or travel-related fears",
		Needs:       "Calming color schemes, clear information, reduced visual clutter, reassuring content, easy navigation",
	},
	LowVision: {
		Description: "Users with visual impairments but not completely blind",
		Needs:       "High contrast colors, larger text sizes, clear visual hierarchy, good spacing, readable fonts",
	},
}

// InfoFor returns the persona description used in prompts.
func InfoFor(c Category) Info {
	return infoTable[c]
}
