// README: Trip request/itinerary models and the persisted record shape.
package trip

import (
	"time"

	"atlas/internal/types"
)

// Request is the caller-supplied trip specification. All seven fields are
// required; absence is a validation error, never silently defaulted.
type Request struct {
	Country      string `json:"country"`
	NumberOfDays int    `json:"numberOfDays"`
	TravelStyle  string `json:"travelStyle"`
	Interest     string `json:"interest"`
	Budget       string `json:"budget"`
	GroupType    string `json:"groupType"`
	UserID       string `json:"userId"`
}

// RequiredFields lists the request fields in their declaration order. The
// 400 response body always echoes this full list.
var RequiredFields = []string{
	"country", "numberOfDays", "travelStyle", "interest", "budget", "groupType", "userId",
}

// Location is the model-reported anchor city for the trip.
type Location struct {
	City          string    `json:"city"`
	Coordinates   []float64 `json:"coordinates"`
	OpenStreetMap string    `json:"openStreetMap"`
}

// Activity is a single time-of-day entry within a day plan.
type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// DayPlan is one day of the generated itinerary.
type DayPlan struct {
	Day        int        `json:"day"`
	Location   string     `json:"location"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the parsed model output. Fields the model omits stay at their
// zero values; a day count that disagrees with the request is accepted as
// degraded output rather than rejected.
type Itinerary struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	EstimatedPrice  string    `json:"estimatedPrice"`
	Duration        int       `json:"duration"`
	Budget          string    `json:"budget"`
	TravelStyle     string    `json:"travelStyle"`
	Country         string    `json:"country"`
	Interests       string    `json:"interests"`
	GroupType       string    `json:"groupType"`
	BestTimeToVisit []string  `json:"bestTimeToVisit"`
	WeatherInfo     []string  `json:"weatherInfo"`
	Location        Location  `json:"location"`
	Itinerary       []DayPlan `json:"itinerary"`
}

// EnrichedTrip is the itinerary plus its image references. ImageURLs is
// always a non-nil slice so the serialized form never contains null.
type EnrichedTrip struct {
	Itinerary
	ImageURLs []string `json:"imageUrls"`
}

// Record is what gets persisted, immutable once written. TripDetail holds
// the serialized EnrichedTrip; ImageURLs is duplicated at the top level for
// query efficiency.
type Record struct {
	ID         types.ID
	UserID     string
	TripDetail []byte
	ImageURLs  []string
	CreatedAt  time.Time
}
