package trip

import (
	"encoding/json"
	"fmt"
)

// ExtractJSONObject locates the outermost balanced {...} span in raw text.
// The model may wrap its JSON in markdown code fences or prose commentary,
// so extraction scans for the first '{' and walks to its matching '}' by
// depth counting, ignoring braces inside JSON strings. The second return
// value reports whether a balanced span was found.
func ExtractJSONObject(raw string) (string, bool) {
	start := -1
	for i := 0; i < len(raw); i++ {
		if raw[i] == '{' {
			start = i
			break
		}
	}
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// ParseItinerary extracts and decodes the itinerary object from raw model
// text. Missing fields are left at their zero values; only a missing span or
// invalid JSON is an error. Callers own logging of the raw text.
func ParseItinerary(raw string) (*Itinerary, error) {
	span, ok := ExtractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in model output")
	}

	var itin Itinerary
	if err := json.Unmarshal([]byte(span), &itin); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	return &itin, nil
}
