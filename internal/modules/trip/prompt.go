package trip

import "fmt"

// BuildPrompt renders the request into the generation instruction. It is a
// pure function: the same request always yields the same prompt string. The
// embedded JSON skeleton steers the model toward parseable output with
// exactly four seasonal entries each for bestTimeToVisit and weatherInfo,
// and one itinerary entry per requested day.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(`Generate a %d-day travel itinerary for %s based on the following user information:
Budget: '%s'
Interests: '%s'
TravelStyle: '%s'
GroupType: '%s'
Return the itinerary and lowest estimated price in a clean, non-markdown JSON format with the following structure:
{
"name": "A descriptive title for the trip",
"description": "A brief description of the trip and its highlights not exceeding 100 words",
"estimatedPrice": "Lowest average price for the trip in USD, e.g.$price",
"duration": %d,
"budget": "%s",
"travelStyle": "%s",
"country": "%s",
"interests": "%s",
"groupType": "%s",
"bestTimeToVisit": [
'🌸 Season (from month to month): reason to visit',
'☀️ Season (from month to month): reason to visit',
'🍁 Season (from month to month): reason to visit',
'❄️ Season (from month to month): reason to visit'
],
"weatherInfo": [
'☀️ Season: temperature range in Celsius (temperature range in Fahrenheit)',
'🌦️ Season: temperature range in Celsius (temperature range in Fahrenheit)',
'🌧️ Season: temperature range in Celsius (temperature range in Fahrenheit)',
'❄️ Season: temperature range in Celsius (temperature range in Fahrenheit)'
],
"location": {
"city": "name of the city or region",
"coordinates": [latitude, longitude],
"openStreetMap": "link to open street map"
},
"itinerary": [
{
"day": 1,
"location": "City/Region Name",
"activities": [
{"time": "Morning", "description": "🏰 Visit the local historic castle and enjoy a scenic walk"},
{"time": "Afternoon", "description": "🖼️ Explore a famous art museum with a guided tour"},
{"time": "Evening", "description": "🍷 Dine at a rooftop restaurant with local wine"}
]
},
...
]
}
The itinerary array must contain exactly %d day entries, numbered from 1.`,
		req.NumberOfDays, req.Country,
		req.Budget, req.Interest, req.TravelStyle, req.GroupType,
		req.NumberOfDays, req.Budget, req.TravelStyle, req.Country, req.Interest, req.GroupType,
		req.NumberOfDays,
	)
}
