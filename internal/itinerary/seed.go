package itinerary

import "time"

// Seed is the sample Paris trip a new planner starts from.
func Seed() Itinerary {
	return Itinerary{
		{
			ID:   "day-1",
			Date: Date{Year: 2025, Month: time.June, Day: 15},
			Activities: []Activity{
				{
					ID:          "act-1",
					Title:       "Arrive in Paris",
					Description: "Check into hotel and explore the neighborhood",
					Time:        "14:00",
					Duration:    "3 hours",
					Cost:        "$0",
					Location:    "Hotel Le Marais",
					Type:        TypeHotel,
				},
				{
					ID:          "act-2",
					Title:       "Seine River Cruise",
					Description: "Romantic evening cruise with dinner",
					Time:        "19:00",
					Duration:    "2 hours",
					Cost:        "$85",
					Location:    "Pont Neuf",
					Type:        TypeActivity,
				},
			},
		},
		{
			ID:   "day-2",
			Date: Date{Year: 2025, Month: time.June, Day: 16},
			Activities: []Activity{
				{
					ID:          "act-3",
					Title:       "Louvre Museum",
					Description: "Skip-the-line tickets and guided tour",
					Time:        "09:00",
					Duration:    "4 hours",
					Cost:        "$65",
					Location:    "Louvre Museum",
					Type:        TypeAttraction,
				},
				{
					ID:          "act-4",
					Title:       "Lunch at Café de Flore",
					Description: "Classic Parisian bistro experience",
					Time:        "13:30",
					Duration:    "1.5 hours",
					Cost:        "$45",
					Location:    "Saint-Germain-des-Prés",
					Type:        TypeRestaurant,
				},
			},
		},
	}
}
