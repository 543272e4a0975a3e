package response_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arca/internal/itinerary"
	"arca/pkg/i18n"
)

func TestBuildItineraryResponse(t *testing.T) {
	it := itinerary.AddDay(itinerary.Seed(), "day-3").Itinerary
	tr := i18n.NewBundle("en").For()

	out := BuildItineraryResponse(it, tr)

	require.Len(t, out.Days, 3)
	assert.Equal(t, 195.0, out.TotalCost)
	assert.Equal(t, "$195", out.Total)

	first := out.Days[0]
	assert.Equal(t, "Day 1", first.Label)
	assert.Equal(t, "2025-06-15", first.Date)
	assert.Equal(t, "Sunday, June 15, 2025", first.DisplayDate)
	assert.Equal(t, 85.0, first.Cost)
	assert.Empty(t, first.EmptyHint)
	assert.Equal(t, "🏨", first.Activities[0].Icon)
	assert.Equal(t, "bg-purple-500", first.Activities[0].Color)

	last := out.Days[2]
	assert.Equal(t, 3, last.DayNumber)
	assert.Equal(t, "2025-06-17", last.Date)
	assert.NotEmpty(t, last.EmptyHint)
	assert.NotNil(t, last.Activities)
}

func TestBuildSummaryResponse(t *testing.T) {
	s := itinerary.Summarize(itinerary.Seed())
	s.TripDetails = itinerary.DefaultTripDetails()

	en := BuildSummaryResponse(s, i18n.NewBundle("en").For(), "", false)
	assert.Equal(t, "Paris Adventure", en.Title)
	assert.Equal(t, "Paris, France", en.Destination)
	assert.Equal(t, 2, en.Travelers)
	assert.Equal(t, "2 people", en.TravelersLabel)
	assert.Equal(t, "Guest", en.Traveler)
	assert.Equal(t, "2 days", en.DurationLabel)
	assert.Equal(t, "$195 total", en.TotalLabel)
	assert.Equal(t, "en", en.Language)

	vi := BuildSummaryResponse(s, i18n.NewBundle("en").For("vi"), "Lan", true)
	assert.Equal(t, "Lan", vi.Traveler)
	assert.True(t, vi.IsPremium)
	assert.Equal(t, "2 ngày", vi.DurationLabel)
	assert.Equal(t, "2 người", vi.TravelersLabel)
	assert.Equal(t, "vi", vi.Language)
}
