package catalog

// Element describes a UI element that can be modified for accessibility.
type Element struct {
	ComponentName string `json:"component_name"`
	ElementType   string `json:"element_type"`
	CurrentValue  string `json:"current_value"`
	Description   string `json:"description"`
	CSSProperty   string `json:"css_property"`
	Importance    string `json:"importance"` // "high", "medium", "low"
}

// Group is a named category of catalog elements.
type Group struct {
	Name     string
	Elements []Element
}

// groups holds the UI components identified from the CMS codebase. The data
// is defined once at package scope and treated as read-only; group order is
// preserved when serializing for prompts.
var groups = []Group{
	{
		Name: "typography",
		Elements: []Element{
			{"h1", "heading", "text-4xl md:text-6xl font-bold", "Main page headings", "font-size", "high"},
			{"h2", "heading", "text-4xl font-bold", "Section headings", "font-size", "high"},
			{"h3", "heading", "text-2xl font-bold", "Card titles", "font-size", "medium"},
			{"body", "text", "text-lg", "Body text", "font-size", "high"},
			{"button", "text", "font-medium", "Button text", "font-weight", "medium"},
			{"link", "text", "hover:underline", "Navigation links", "text-decoration", "medium"},
			{"description", "text", "text-muted-foreground", "Descriptive text", "color", "medium"},
		},
	},
	{
		Name: "layout",
		Elements: []Element{
			{"card", "container", "p-6", "Card padding", "padding", "medium"},
			{"section", "container", "py-16", "Section spacing", "padding", "medium"},
			{"grid", "layout", "grid md:grid-cols-3 gap-8", "Grid layout", "display", "high"},
			{"navigation", "container", "space-x-8", "Navigation spacing", "gap", "medium"},
		},
	},
	{
		Name: "colors",
		Elements: []Element{
			{"primary", "color", "hsl(336 75% 45%)", "Primary brand color", "color", "high"},
			{"background", "color", "hsl(0 0% 100%)", "Background color", "background-color", "high"},
			{"foreground", "color", "hsl(210 11% 15%)", "Text color", "color", "high"},
			{"muted", "color", "hsl(210 11% 64%)", "Muted text color", "color", "medium"},
			{"border", "color", "hsl(210 12% 90%)", "Border color", "border-color", "low"},
		},
	},
	{
		Name: "interactive",
		Elements: []Element{
			{"button", "interactive", "px-8 py-3", "Button padding", "padding", "high"},
			{"button", "interactive", "hover:bg-white/10", "Button hover state", "background-color", "medium"},
			{"link", "interactive", "hover:text-primary", "Link hover state", "color", "medium"},
			{"card", "interactive", "hover:shadow-alpine", "Card hover effect", "box-shadow", "low"},
		},
	},
	{
		Name: "spacing",
		Elements: []Element{
			{"container", "spacing", "px-4", "Container padding", "padding", "medium"},
			{"section", "spacing", "mb-8", "Section margin bottom", "margin", "medium"},
			{"element", "spacing", "gap-2", "Element gap", "gap", "low"},
		},
	},
}

// Groups returns the catalog groups in definition order. The returned slice
// shares the underlying element data; callers must not mutate it.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}
