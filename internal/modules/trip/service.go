// README: Trip service implements the generation pipeline: validate, prompt,
// generate, parse, enrich with images, persist.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"atlas/internal/types"
)

// MaxImages is the cap on image references attached per trip.
const MaxImages = 3

var (
	ErrMisconfigured = errors.New("server configuration error")
	ErrGeneration    = errors.New("itinerary generation failed")
	ErrParse         = errors.New("failed to parse model response")
	ErrPersistence   = errors.New("failed to save trip")
	ErrNotFound      = errors.New("trip not found")
)

// MissingFieldsError reports which of the seven required request fields are
// absent. It is a client error; the handler layer maps it to 400.
type MissingFieldsError struct {
	Missing []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Generator produces raw model text for a prompt. Single attempt, no retries.
type Generator interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// ImageSearcher returns up to limit photo URLs for a query in relevance order.
type ImageSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// Geocoder resolves a place name to coordinates. Optional dependency.
type Geocoder interface {
	Locate(ctx context.Context, place string) (lat, lng float64, err error)
}

// UsageRecorder tallies successful generations per user. Optional dependency;
// recording failures never affect the request.
type UsageRecorder interface {
	Record(ctx context.Context, uid string) error
}

// TripStore persists and retrieves trip records.
type TripStore interface {
	Create(ctx context.Context, rec *Record) (types.ID, error)
	Get(ctx context.Context, id types.ID) (*Record, error)
	ListByUser(ctx context.Context, userID string) ([]*Record, error)
}

// Credentials carries the external-service keys the pipeline depends on.
// They are injected at construction so tests never touch process env.
type Credentials struct {
	GeminiKey   string
	UnsplashKey string
}

type Service struct {
	store     TripStore
	generator Generator
	images    ImageSearcher
	geocoder  Geocoder
	usage     UsageRecorder
	creds     Credentials
}

// NewService wires the pipeline. geocoder and usage may be nil; those steps
// are then skipped.
func NewService(store TripStore, generator Generator, images ImageSearcher, geocoder Geocoder, usage UsageRecorder, creds Credentials) *Service {
	return &Service{
		store:     store,
		generator: generator,
		images:    images,
		geocoder:  geocoder,
		usage:     usage,
		creds:     creds,
	}
}

// Create runs the full pipeline for one request and returns the identifier
// of the persisted record. The steps run strictly in sequence; the first
// failure short-circuits, except the image step which degrades to an empty
// list. Validation happens before any external call.
func (s *Service) Create(ctx context.Context, req Request) (types.ID, error) {
	if missing := missingFields(req); len(missing) > 0 {
		return "", &MissingFieldsError{Missing: missing}
	}
	if s.creds.GeminiKey == "" {
		log.Printf("GEMINI_API_KEY is not configured")
		return "", ErrMisconfigured
	}
	if s.creds.UnsplashKey == "" {
		log.Printf("UNSPLASH_ACCESS_KEY is not configured")
		return "", ErrMisconfigured
	}

	prompt := BuildPrompt(req)

	raw, err := s.generator.GenerateItinerary(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	s.recordUsage(ctx, req.UserID)

	itin, err := ParseItinerary(raw)
	if err != nil {
		// Raw text stays in the log for diagnosis; the caller only ever
		// sees an opaque parse error.
		log.Printf("parse model response: %v; raw output: %s", err, raw)
		return "", ErrParse
	}

	s.resolveLocation(ctx, itin)

	enriched := EnrichedTrip{
		Itinerary: *itin,
		ImageURLs: s.fetchImages(ctx, req),
	}

	detail, err := json.Marshal(enriched)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	rec := &Record{
		UserID:     req.UserID,
		TripDetail: detail,
		ImageURLs:  enriched.ImageURLs,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := s.store.Create(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return id, nil
}

// Get returns a single persisted trip.
func (s *Service) Get(ctx context.Context, id types.ID) (*Record, error) {
	return s.store.Get(ctx, id)
}

// ListByUser returns a user's trips, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Record, error) {
	return s.store.ListByUser(ctx, userID)
}

// fetchImages queries the image service with the request keywords. Any
// failure is absorbed: enrichment is enhancement, not a correctness
// requirement. The result is never nil.
func (s *Service) fetchImages(ctx context.Context, req Request) []string {
	query := strings.Join([]string{req.Country, req.Interest, req.TravelStyle}, " ")
	urls, err := s.images.Search(ctx, query, MaxImages)
	if err != nil {
		log.Printf("image search failed for %q: %v", query, err)
		return []string{}
	}
	if urls == nil {
		urls = []string{}
	}
	if len(urls) > MaxImages {
		urls = urls[:MaxImages]
	}
	return urls
}

// resolveLocation backfills coordinates for the model-reported city when the
// model left them out. Best effort only.
func (s *Service) resolveLocation(ctx context.Context, itin *Itinerary) {
	if s.geocoder == nil || itin.Location.City == "" || len(itin.Location.Coordinates) == 2 {
		return
	}
	lat, lng, err := s.geocoder.Locate(ctx, itin.Location.City+", "+itin.Country)
	if err != nil {
		log.Printf("geocode %q: %v", itin.Location.City, err)
		return
	}
	itin.Location.Coordinates = []float64{lat, lng}
	if itin.Location.OpenStreetMap == "" {
		itin.Location.OpenStreetMap = fmt.Sprintf(
			"https://www.openstreetmap.org/?mlat=%.5f&mlon=%.5f#map=12/%.5f/%.5f", lat, lng, lat, lng)
	}
}

func (s *Service) recordUsage(ctx context.Context, uid string) {
	if s.usage == nil {
		return
	}
	if err := s.usage.Record(ctx, uid); err != nil {
		log.Printf("record ai usage for %s: %v", uid, err)
	}
}

func missingFields(req Request) []string {
	var missing []string
	if req.Country == "" {
		missing = append(missing, "country")
	}
	if req.NumberOfDays <= 0 {
		missing = append(missing, "numberOfDays")
	}
	if req.TravelStyle == "" {
		missing = append(missing, "travelStyle")
	}
	if req.Interest == "" {
		missing = append(missing, "interest")
	}
	if req.Budget == "" {
		missing = append(missing, "budget")
	}
	if req.GroupType == "" {
		missing = append(missing, "groupType")
	}
	if req.UserID == "" {
		missing = append(missing, "userId")
	}
	return missing
}
