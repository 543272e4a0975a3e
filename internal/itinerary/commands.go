package itinerary

import "github.com/google/uuid"

// NewID returns a fresh identifier such as "act-6f1c...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// BlankActivity is what "Add Activity" puts on a day before the user edits it.
func BlankActivity(id string) Activity {
	return Activity{
		ID:          id,
		Title:       "New Activity",
		Description: "Add description...",
		Time:        "10:00",
		Duration:    "2 hours",
		Cost:        "$0",
		Location:    "Location",
		Type:        TypeActivity,
	}
}

// AddActivity appends a blank activity with the given id to the end of a day.
func AddActivity(it Itinerary, dayID, activityID string) Result {
	i := it.dayIndex(dayID)
	if i < 0 {
		return unchanged(it, ErrDayNotFound)
	}
	out := make(Itinerary, len(it))
	copy(out, it)
	out[i] = it[i].withActivities(insertAt(it[i].Activities, len(it[i].Activities), BlankActivity(activityID)))
	return ok(out)
}

// AddDay appends an empty day dated one calendar day after the last one.
func AddDay(it Itinerary, dayID string) Result {
	if len(it) == 0 {
		return unchanged(it, ErrEmptyItinerary)
	}
	last := it[len(it)-1]
	out := make(Itinerary, len(it), len(it)+1)
	copy(out, it)
	out = append(out, Day{
		ID:         dayID,
		Date:       last.Date.AddDays(1),
		Activities: []Activity{},
	})
	return ok(out)
}

// UpdateActivity replaces the editable fields of an activity, keeping its id
// and its place in the schedule.
func UpdateActivity(it Itinerary, updated Activity) Result {
	di, ai := it.locate(updated.ID)
	if di < 0 {
		return unchanged(it, ErrActivityNotFound)
	}
	if it[di].Activities[ai] == updated {
		return unchanged(it, nil)
	}
	acts := append(make([]Activity, 0, len(it[di].Activities)), it[di].Activities...)
	acts[ai] = updated

	out := make(Itinerary, len(it))
	copy(out, it)
	out[di] = it[di].withActivities(acts)
	return ok(out)
}
