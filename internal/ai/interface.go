package ai

import (
	"context"
)

// Generator defines the contract for the text-generation backend.
// This interface allows swapping providers (Gemini, OpenAI, etc.) and lets
// tests inject a canned model without any network access.
type Generator interface {
	// GenerateItinerary sends the fully rendered prompt to the model and
	// returns the raw text of the first candidate. A single attempt is made;
	// callers decide how a failure maps onto their own error taxonomy.
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}
