package trip

import (
	"strings"
	"testing"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := Request{
		Country:      "Japan",
		NumberOfDays: 3,
		TravelStyle:  "Luxury",
		Interest:     "Food",
		Budget:       "$$$",
		GroupType:    "Couple",
		UserID:       "u1",
	}

	first := BuildPrompt(req)
	second := BuildPrompt(req)
	if first != second {
		t.Fatal("same request produced different prompts")
	}
}

func TestBuildPrompt_EmbedsEveryField(t *testing.T) {
	req := Request{
		Country:      "Portugal",
		NumberOfDays: 5,
		TravelStyle:  "Backpacking",
		Interest:     "Surfing",
		Budget:       "$",
		GroupType:    "Solo",
		UserID:       "u2",
	}

	prompt := BuildPrompt(req)

	for _, want := range []string{
		"5-day travel itinerary for Portugal",
		"Budget: '$'",
		"Interests: 'Surfing'",
		"TravelStyle: 'Backpacking'",
		"GroupType: 'Solo'",
		`"duration": 5`,
		"exactly 5 day entries",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_SchemaSkeleton(t *testing.T) {
	prompt := BuildPrompt(Request{Country: "Japan", NumberOfDays: 2})

	// The skeleton pins four seasonal entries for each seasonal array.
	if got := strings.Count(prompt, "Season (from month to month)"); got != 4 {
		t.Errorf("bestTimeToVisit skeleton entries = %d, want 4", got)
	}
	if got := strings.Count(prompt, "temperature range in Celsius"); got != 4 {
		t.Errorf("weatherInfo skeleton entries = %d, want 4", got)
	}
	for _, field := range []string{
		`"bestTimeToVisit"`, `"weatherInfo"`, `"location"`, `"itinerary"`,
		`"estimatedPrice"`, `"openStreetMap"`, `"coordinates"`,
	} {
		if !strings.Contains(prompt, field) {
			t.Errorf("prompt skeleton missing %s", field)
		}
	}
}
