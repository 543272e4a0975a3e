package itinerary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TripDetails is the header the traveler can edit above the day list.
type TripDetails struct {
	Title       string `json:"title"`
	Destination string `json:"destination"`
	Travelers   int    `json:"travelers"`
}

// DefaultTripDetails goes with Seed.
func DefaultTripDetails() TripDetails {
	return TripDetails{
		Title:       "Paris Adventure",
		Destination: "Paris, France",
		Travelers:   2,
	}
}

// Validate rejects a blank title and fewer than one traveler.
func (d TripDetails) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: trip title is empty", ErrMalformed)
	}
	if d.Travelers < 1 {
		return fmt.Errorf("%w: trip needs at least one traveler", ErrMalformed)
	}
	return nil
}

func EncodeDetails(d TripDetails) ([]byte, error) {
	return json.Marshal(d)
}

func DecodeDetails(data []byte) (TripDetails, error) {
	var d TripDetails
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return TripDetails{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := d.Validate(); err != nil {
		return TripDetails{}, err
	}
	return d, nil
}
