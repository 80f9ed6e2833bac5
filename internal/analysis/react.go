package analysis

// ReactModifications is the structured descriptor tree driving UI logic.
type ReactModifications struct {
	ClassNameModifications map[string][]string          `json:"className_modifications"`
	StyleModifications     map[string]map[string]string `json:"style_modifications"`
	ComponentProps         map[string]any               `json:"component_props"`
	ContentChanges         []string                     `json:"content_changes"`
}

// styleProperties feed per-component inline-style maps; later modifications
// for the same (component, property) pair win.
var styleProperties = map[string]struct{}{
	"font-size":        {},
	"color":            {},
	"background-color": {},
	"padding":          {},
	"margin":           {},
}

// classNameProperties feed per-component class lists, appended in encounter
// order with duplicates retained.
var classNameProperties = map[string]struct{}{
	"display": {},
	"gap":     {},
}

// GenerateReact builds the structured modification descriptor for a profile.
// Properties outside both recognized sets are excluded here even when the
// CSS generator emits them; the two generators intentionally recognize
// different subsets.
func GenerateReact(profile Profile) ReactModifications {
	out := ReactModifications{
		ClassNameModifications: map[string][]string{},
		StyleModifications:     map[string]map[string]string{},
		ComponentProps:         map[string]any{},
		ContentChanges:         append([]string{}, profile.ContentAdaptations...),
	}

	for _, mod := range profile.Modifications {
		component := mod.Element.ComponentName
		prop := mod.Element.CSSProperty

		if _, ok := styleProperties[prop]; ok {
			if _, exists := out.StyleModifications[component]; !exists {
				out.StyleModifications[component] = map[string]string{}
			}
			out.StyleModifications[component][prop] = mod.NewValue
			continue
		}

		if _, ok := classNameProperties[prop]; ok {
			out.ClassNameModifications[component] = append(out.ClassNameModifications[component], mod.NewValue)
		}
	}

	return out
}
