// Package itinerary holds the trip plan model and the pure operations the
// builder performs on it. Every operation takes an Itinerary value and returns
// a new one; arguments are never modified in place.
package itinerary

import (
	"fmt"
	"time"
)

type ActivityType string

const (
	TypeAttraction ActivityType = "attraction"
	TypeRestaurant ActivityType = "restaurant"
	TypeHotel      ActivityType = "hotel"
	TypeTransport  ActivityType = "transport"
	TypeActivity   ActivityType = "activity"
)

// Affordance is how an activity type is rendered on a card.
type Affordance struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var affordances = map[ActivityType]Affordance{
	TypeAttraction: {Color: "bg-blue-500", Icon: "🏛️"},
	TypeRestaurant: {Color: "bg-orange-500", Icon: "🍽️"},
	TypeHotel:      {Color: "bg-purple-500", Icon: "🏨"},
	TypeTransport:  {Color: "bg-green-500", Icon: "🚗"},
	TypeActivity:   {Color: "bg-pink-500", Icon: "🎯"},
}

func (t ActivityType) Valid() bool {
	_, ok := affordances[t]
	return ok
}

// Affordance falls back to the generic activity style for unknown types.
func (t ActivityType) Affordance() Affordance {
	if a, ok := affordances[t]; ok {
		return a
	}
	return affordances[TypeActivity]
}

type Activity struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Time        string       `json:"time"`
	Duration    string       `json:"duration"`
	Cost        string       `json:"cost"`
	Location    string       `json:"location"`
	Type        ActivityType `json:"type"`
}

type Day struct {
	ID         string     `json:"id"`
	Date       Date       `json:"date"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the ordered list of days. Days are only ever appended.
type Itinerary []Day

// DateLayout is the wire format of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day with no clock or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDate(t), nil
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays moves by whole calendar days, rolling months and years over.
func (d Date) AddDays(n int) Date {
	return NewDate(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, fmt.Errorf("marshal date: zero value")
	}
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// locate returns the day and position of the first activity with the id, or -1, -1.
func (it Itinerary) locate(activityID string) (int, int) {
	for di, day := range it {
		for ai, act := range day.Activities {
			if act.ID == activityID {
				return di, ai
			}
		}
	}
	return -1, -1
}

func (it Itinerary) dayIndex(dayID string) int {
	for i, day := range it {
		if day.ID == dayID {
			return i
		}
	}
	return -1
}

// Find returns the activity with the id and the id of the day holding it.
func (it Itinerary) Find(activityID string) (Activity, string, bool) {
	di, ai := it.locate(activityID)
	if di < 0 {
		return Activity{}, "", false
	}
	return it[di].Activities[ai], it[di].ID, true
}

// Day returns the day with the id.
func (it Itinerary) Day(dayID string) (Day, bool) {
	i := it.dayIndex(dayID)
	if i < 0 {
		return Day{}, false
	}
	return it[i], true
}

// ActivityIDs lists every activity id in day then schedule order.
func (it Itinerary) ActivityIDs() []string {
	ids := make([]string, 0, it.ActivityCount())
	for _, day := range it {
		for _, act := range day.Activities {
			ids = append(ids, act.ID)
		}
	}
	return ids
}

func (it Itinerary) ActivityCount() int {
	n := 0
	for _, day := range it {
		n += len(day.Activities)
	}
	return n
}

// Clone copies the day list and every activity slice.
func (it Itinerary) Clone() Itinerary {
	if it == nil {
		return nil
	}
	out := make(Itinerary, len(it))
	for i, day := range it {
		out[i] = day.withActivities(append(make([]Activity, 0, len(day.Activities)), day.Activities...))
	}
	return out
}

func (d Day) withActivities(acts []Activity) Day {
	d.Activities = acts
	return d
}
