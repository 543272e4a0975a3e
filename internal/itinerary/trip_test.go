package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripDetails_RoundTrip(t *testing.T) {
	in := TripDetails{Title: "Hanoi food tour", Destination: "Hà Nội, Việt Nam", Travelers: 4}

	data, err := EncodeDetails(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Hanoi food tour","destination":"Hà Nội, Việt Nam","travelers":4}`, string(data))

	out, err := DecodeDetails(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTripDetails_Defaults(t *testing.T) {
	d := DefaultTripDetails()

	assert.Equal(t, "Paris Adventure", d.Title)
	assert.Equal(t, "Paris, France", d.Destination)
	assert.Equal(t, 2, d.Travelers)
	assert.NoError(t, d.Validate())
}

func TestDecodeDetails_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"blank title", `{"title":"  ","destination":"Paris","travelers":2}`},
		{"no travelers", `{"title":"Trip","destination":"Paris","travelers":0}`},
		{"unknown field", `{"title":"Trip","travelers":2,"budget":100}`},
		{"wrong type", `{"title":"Trip","travelers":"two"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDetails([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
