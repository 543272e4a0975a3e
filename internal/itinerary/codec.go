package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrMalformed = errors.New("malformed itinerary")

// Encode dumps the itinerary as JSON, the same shape Decode accepts.
func Encode(it Itinerary) ([]byte, error) {
	if it == nil {
		it = Itinerary{}
	}
	b, err := json.Marshal(it)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}
	return b, nil
}

// Decode parses a stored itinerary. Anything that does not have the exact
// shape Encode writes is rejected with ErrMalformed: unknown fields, missing
// ids, bad dates, unknown activity types, or an activity id used twice.
func Decode(data []byte) (Itinerary, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var it Itinerary
	if err := dec.Decode(&it); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformed)
	}
	if it == nil {
		return nil, fmt.Errorf("%w: not a list of days", ErrMalformed)
	}
	if err := Validate(it); err != nil {
		return nil, err
	}
	for i := range it {
		if it[i].Activities == nil {
			it[i].Activities = []Activity{}
		}
	}
	return it, nil
}

// Validate checks the structural invariants: every day and activity has an id,
// days have dates, types are known and no activity id appears twice.
func Validate(it Itinerary) error {
	days := make(map[string]struct{}, len(it))
	acts := make(map[string]struct{}, it.ActivityCount())
	for i, day := range it {
		if day.ID == "" {
			return fmt.Errorf("%w: day %d has no id", ErrMalformed, i)
		}
		if _, dup := days[day.ID]; dup {
			return fmt.Errorf("%w: duplicate day id %q", ErrMalformed, day.ID)
		}
		days[day.ID] = struct{}{}
		if day.Date.IsZero() {
			return fmt.Errorf("%w: day %q has no date", ErrMalformed, day.ID)
		}
		for j, act := range day.Activities {
			if act.ID == "" {
				return fmt.Errorf("%w: activity %d of day %q has no id", ErrMalformed, j, day.ID)
			}
			if _, dup := acts[act.ID]; dup {
				return fmt.Errorf("%w: duplicate activity id %q", ErrMalformed, act.ID)
			}
			acts[act.ID] = struct{}{}
			if !act.Type.Valid() {
				return fmt.Errorf("%w: activity %q has unknown type %q", ErrMalformed, act.ID, act.Type)
			}
		}
	}
	return nil
}
