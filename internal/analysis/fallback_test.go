package analysis

import (
	"reflect"
	"testing"

	"accessibility-backend/internal/personas"
)

func TestFallbackLowVisionDeterminism(t *testing.T) {
	first := fallbackProfile(personas.LowVision)
	second := fallbackProfile(personas.LowVision)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("fallback profile is not deterministic")
	}

	if len(first.Modifications) != 2 {
		t.Fatalf("expected exactly 2 modifications, got %d", len(first.Modifications))
	}

	body := first.Modifications[0]
	if body.Element.ComponentName != "body" || body.Element.CSSProperty != "font-size" {
		t.Fatalf("first modification should target body font-size, got %+v", body.Element)
	}
	if body.NewValue != "text-xl" || body.Priority != 1 {
		t.Fatalf("body modification = %q priority %d, want text-xl priority 1", body.NewValue, body.Priority)
	}

	primary := first.Modifications[1]
	if primary.Element.ComponentName != "primary" || primary.Element.CSSProperty != "color" {
		t.Fatalf("second modification should target primary color, got %+v", primary.Element)
	}
	if primary.NewValue != "hsl(50 100% 60%)" || primary.Priority != 1 {
		t.Fatalf("primary modification = %q priority %d, want hsl(50 100%% 60%%) priority 1", primary.NewValue, primary.Priority)
	}
}

func TestFallbackProfileShape(t *testing.T) {
	profile := fallbackProfile(personas.Dyslexia)

	if profile.DisabilityType != personas.Dyslexia {
		t.Fatalf("disability type = %q", profile.DisabilityType)
	}
	wantClasses := []string{"persona-dyslexia"}
	if !reflect.DeepEqual(profile.CSSClasses, wantClasses) {
		t.Fatalf("css classes = %#v, want %#v", profile.CSSClasses, wantClasses)
	}
	wantAdaptations := []string{"Use fallback profile - manual review recommended"}
	if !reflect.DeepEqual(profile.ContentAdaptations, wantAdaptations) {
		t.Fatalf("content adaptations = %#v, want %#v", profile.ContentAdaptations, wantAdaptations)
	}
	if profile.Summary != "Fallback profile for dyslexia - LLM analysis failed" {
		t.Fatalf("summary = %q", profile.Summary)
	}
}

func TestFallbackKeepsUnderscoresInClassValue(t *testing.T) {
	profile := fallbackProfile(personas.LowVision)
	if profile.CSSClasses[0] != "persona-low_vision" {
		t.Fatalf("css class = %q, want persona-low_vision", profile.CSSClasses[0])
	}
}

func TestFallbackEmptyCategories(t *testing.T) {
	for _, c := range []personas.Category{personas.WheelchairUser, personas.AnxietyTravelFear} {
		profile := fallbackProfile(c)
		if len(profile.Modifications) != 0 {
			t.Fatalf("expected empty modification list for %q, got %d entries", c, len(profile.Modifications))
		}
		if profile.CSSClasses[0] != "persona-"+string(c) {
			t.Fatalf("css class = %q", profile.CSSClasses[0])
		}
	}
}
