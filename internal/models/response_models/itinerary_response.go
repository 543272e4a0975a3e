package response_models

// Payload returned for every itinerary read or mutation
type ItineraryResponse struct {
	Days      []ItineraryDayResponse `json:"days"`
	TotalCost float64                `json:"total_cost"`
	Total     string                 `json:"total"` // localized, whole units
}

// One day of the plan
type ItineraryDayResponse struct {
	ID          string                      `json:"id"`
	DayNumber   int                         `json:"day_number"`
	Label       string                      `json:"label"`        // "Day 1"
	Date        string                      `json:"date"`         // YYYY-MM-DD
	DisplayDate string                      `json:"display_date"` // "Sunday, June 15, 2025"
	Cost        float64                     `json:"cost"`
	EmptyHint   string                      `json:"empty_hint,omitempty"`
	Activities  []ItineraryActivityResponse `json:"activities"`
}

type ItineraryActivityResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	Cost        string `json:"cost"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// Trip header
type ItinerarySummaryResponse struct {
	Title          string  `json:"title"`
	Destination    string  `json:"destination"`
	Travelers      int     `json:"travelers"`
	TravelersLabel string  `json:"travelers_label"`
	Days           int     `json:"days"`
	Activities     int     `json:"activities"`
	TotalCost      float64 `json:"total_cost"`
	RoundedCost    int64   `json:"rounded_cost"`
	DurationLabel  string  `json:"duration_label"`
	TotalLabel     string  `json:"total_label"`
	Traveler       string  `json:"traveler"`
	IsPremium      bool    `json:"is_premium"`
	Language       string  `json:"language"`
}
