package itinerary

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrDayNotFound      = errors.New("day not found")
	ErrEmptyItinerary   = errors.New("itinerary has no days")
)

// Result is the outcome of a mutation. When Changed is false Itinerary is the
// input value and Err, if set, says why nothing happened.
type Result struct {
	Itinerary Itinerary
	Changed   bool
	Err       error
}

func ok(it Itinerary) Result {
	return Result{Itinerary: it, Changed: true}
}

func unchanged(it Itinerary, reason error) Result {
	return Result{Itinerary: it, Err: reason}
}

// NotFound reports whether the mutation referenced a missing activity or day.
func (r Result) NotFound() bool {
	return errors.Is(r.Err, ErrActivityNotFound) || errors.Is(r.Err, ErrDayNotFound)
}
