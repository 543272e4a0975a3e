package response_models

import (
	"arca/internal/itinerary"
	"arca/pkg/i18n"
)

func BuildItineraryResponse(it itinerary.Itinerary, tr *i18n.Translator) *ItineraryResponse {
	total := itinerary.TotalCost(it)
	out := &ItineraryResponse{
		Days:           make([]ItineraryDayResponse, 0, len(it)),
		TotalCost:      total,
		Total:     tr.Money(total),
	}

	for i, day := range it {
		d := ItineraryDayResponse{
			ID:          day.ID,
			DayNumber:   i + 1,
			Label:       tr.Tf("itinerary.day", i+1),
			Date:        day.Date.String(),
			DisplayDate: tr.LongDate(day.Date.Time()),
			Cost:        itinerary.DayCost(day),
			Activities:  make([]ItineraryActivityResponse, 0, len(day.Activities)),
		}
		if len(day.Activities) == 0 {
			d.EmptyHint = tr.T("itinerary.empty_day")
		}
		for _, a := range day.Activities {
			style := a.Type.Affordance()
			d.Activities = append(d.Activities, ItineraryActivityResponse{
				ID:          a.ID,
				Title:       a.Title,
				Description: a.Description,
				Time:        a.Time,
				Duration:    a.Duration,
				Cost:        a.Cost,
				Location:    a.Location,
				Type:        string(a.Type),
				Color:       style.Color,
				Icon:        style.Icon,
			})
		}
		out.Days = append(out.Days, d)
	}
	return out
}

// BuildSummaryResponse renders the trip header for the session's traveler.
// name may be empty for anonymous callers.
func BuildSummaryResponse(s itinerary.Summary, tr *i18n.Translator, name string, premium bool) *ItinerarySummaryResponse {
	if name == "" {
		name = tr.T("session.guest")
	}
	return &ItinerarySummaryResponse{
		Title:          s.Title,
		Destination:    s.Destination,
		Travelers:      s.Travelers,
		TravelersLabel: tr.Tf("itinerary.travelers", s.Travelers),
		Days:           s.Days,
		Activities:     s.Activities,
		TotalCost:      s.TotalCost,
		RoundedCost:    s.RoundedCost,
		DurationLabel:  tr.Tf("itinerary.days", s.Days),
		TotalLabel:     tr.Tf("itinerary.total", tr.Money(s.TotalCost)),
		Traveler:       name,
		IsPremium:      premium,
		Language:       tr.Language(),
	}
}
