package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"atlas/internal/ai"
	"atlas/internal/modules/trip"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	req := trip.Request{
		Country:      "Japan",
		NumberOfDays: 3,
		TravelStyle:  "Luxury",
		Interest:     "Food",
		Budget:       "$$$",
		GroupType:    "Couple",
		UserID:       "demo",
	}

	prompt := trip.BuildPrompt(req)
	fmt.Printf("Prompt:\n%s\n\n", prompt)

	var generator ai.Generator = provider
	raw, err := generator.GenerateItinerary(ctx, prompt)
	if err != nil {
		log.Fatalf("Error generating itinerary: %v", err)
	}

	itin, err := trip.ParseItinerary(raw)
	if err != nil {
		log.Fatalf("Error parsing itinerary: %v\nRaw output:\n%s", err, raw)
	}

	fmt.Printf("Name: %s\n", itin.Name)
	fmt.Printf("Description: %s\n", itin.Description)
	fmt.Printf("Estimated price: %s\n", itin.EstimatedPrice)
	fmt.Printf("City: %s\n", itin.Location.City)
	for _, day := range itin.Itinerary {
		fmt.Printf("Day %d: %s\n", day.Day, day.Location)
		for _, act := range day.Activities {
			fmt.Printf("  %s: %s\n", act.Time, act.Description)
		}
	}
}
