package analysis

import (
	"strings"
	"testing"

	"accessibility-backend/internal/personas"
)

const validPayload = `{
  "modifications": [
    {
      "element": {
        "component_name": "body",
        "element_type": "text",
        "current_value": "text-lg",
        "description": "Body text",
        "css_property": "font-size",
        "importance": "high"
      },
      "new_value": "text-xl",
      "reasoning": "Larger text",
      "priority": 2
    }
  ],
  "css_classes": ["persona-low_vision"],
  "content_adaptations": ["Simplify copy"],
  "summary": "Bigger text"
}`

func TestParseProfileToleratesSurroundingCommentary(t *testing.T) {
	raw := "Sure, here is the analysis you asked for:\n" + validPayload + "\nLet me know if you need anything else."

	profile, err := parseProfile(raw, personas.LowVision)
	if err != nil {
		t.Fatalf("parseProfile: %v", err)
	}
	if profile.DisabilityType != personas.LowVision {
		t.Fatalf("disability type = %q, want low_vision", profile.DisabilityType)
	}
	if len(profile.Modifications) != 1 {
		t.Fatalf("expected 1 modification, got %d", len(profile.Modifications))
	}
	mod := profile.Modifications[0]
	if mod.Element.ComponentName != "body" || mod.NewValue != "text-xl" || mod.Priority != 2 {
		t.Fatalf("unexpected modification: %+v", mod)
	}
	if profile.Summary != "Bigger text" {
		t.Fatalf("summary = %q", profile.Summary)
	}
}

func TestParseProfileMalformedJSON(t *testing.T) {
	if _, err := parseProfile("Sure! {not valid json", personas.Dyslexia); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestParseProfileNoBraces(t *testing.T) {
	if _, err := parseProfile("no structured payload here", personas.Dyslexia); err == nil {
		t.Fatal("expected error when no JSON object is present")
	}
}

func TestParseProfileMissingModifications(t *testing.T) {
	raw := `{"css_classes": [], "summary": "x"}`
	if _, err := parseProfile(raw, personas.LowVision); err == nil {
		t.Fatal("expected error for missing modifications field")
	}
}

func TestParseProfileMissingModificationFields(t *testing.T) {
	tests := []struct {
		name string
		drop string
	}{
		{name: "missing element", drop: `"element"`},
		{name: "missing new_value", drop: `"new_value"`},
		{name: "missing reasoning", drop: `"reasoning"`},
		{name: "missing priority", drop: `"priority"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			raw := validPayload
			switch tt.drop {
			case `"element"`:
				raw = strings.Replace(raw, `"element"`, `"element_x"`, 1)
			case `"new_value"`:
				raw = strings.Replace(raw, `"new_value"`, `"new_value_x"`, 1)
			case `"reasoning"`:
				raw = strings.Replace(raw, `"reasoning"`, `"reasoning_x"`, 1)
			case `"priority"`:
				raw = strings.Replace(raw, `"priority"`, `"priority_x"`, 1)
			}
			if _, err := parseProfile(raw, personas.LowVision); err == nil {
				t.Fatalf("expected error when %s is absent", tt.drop)
			}
		})
	}
}

func TestParseProfileDefaultsOptionalFields(t *testing.T) {
	raw := `{"modifications": []}`
	profile, err := parseProfile(raw, personas.WheelchairUser)
	if err != nil {
		t.Fatalf("parseProfile: %v", err)
	}
	if profile.CSSClasses == nil || len(profile.CSSClasses) != 0 {
		t.Fatalf("css_classes should default to empty, got %#v", profile.CSSClasses)
	}
	if profile.ContentAdaptations == nil || len(profile.ContentAdaptations) != 0 {
		t.Fatalf("content_adaptations should default to empty, got %#v", profile.ContentAdaptations)
	}
	if profile.Summary != "" {
		t.Fatalf("summary should default to blank, got %q", profile.Summary)
	}
}

func TestParseProfilePriorityPassThrough(t *testing.T) {
	raw := strings.Replace(validPayload, `"priority": 2`, `"priority": 9`, 1)
	profile, err := parseProfile(raw, personas.LowVision)
	if err != nil {
		t.Fatalf("parseProfile: %v", err)
	}
	if profile.Modifications[0].Priority != 9 {
		t.Fatalf("priority = %d, want 9 (out-of-range values pass through)", profile.Modifications[0].Priority)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare object", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "leading text", raw: `note {"a":1}`, want: `{"a":1}`},
		{name: "trailing text", raw: `{"a":1} done`, want: `{"a":1}`},
		{name: "no open brace", raw: `a":1}`, wantErr: true},
		{name: "no close brace", raw: `{"a":1`, wantErr: true},
		{name: "reversed braces", raw: `} {`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractJSONObject: %v", err)
			}
			if got != tt.want {
				t.Fatalf("extractJSONObject = %q, want %q", got, tt.want)
			}
		})
	}
}
