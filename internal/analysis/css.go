package analysis

import "strings"

// cssProperties is the full set of declaration kinds the CSS generator
// understands. All recognized properties share one formatting rule;
// unrecognized properties are dropped from the output. This set is a
// deliberate superset of the structured generator's (see react.go).
var cssProperties = map[string]struct{}{
	"font-size":        {},
	"color":            {},
	"background-color": {},
	"padding":          {},
	"margin":           {},
	"gap":              {},
	"display":          {},
	"font-weight":      {},
	"line-height":      {},
	"text-decoration":  {},
	"box-shadow":       {},
	"border-color":     {},
}

// GenerateCSS emits a single CSS rule block scoped to the profile's persona
// class. Modifications are grouped by property in first-encounter order;
// within a group, declaration lines keep the modification list's order. Pure
// function: identical profiles produce byte-identical output.
func GenerateCSS(profile Profile) string {
	var order []string
	groups := make(map[string][]Modification)
	for _, mod := range profile.Modifications {
		prop := mod.Element.CSSProperty
		if _, ok := cssProperties[prop]; !ok {
			continue
		}
		if _, seen := groups[prop]; !seen {
			order = append(order, prop)
		}
		groups[prop] = append(groups[prop], mod)
	}

	lines := make([]string, 0, len(profile.Modifications)+2)
	lines = append(lines, "."+profile.DisabilityType.ClassName()+" {")
	for _, prop := range order {
		for _, mod := range groups[prop] {
			lines = append(lines, "  "+prop+": "+mod.NewValue+";")
		}
	}
	lines = append(lines, "}")

	return strings.Join(lines, "\n")
}
