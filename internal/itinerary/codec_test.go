package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	it := Seed()
	it = AddDay(it, "day-3").Itinerary
	it = AddActivity(it, "day-3", "act-5").Itinerary
	it = Move(it, "act-2", "day-3", 0).Itinerary

	data, err := Encode(it)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, it, got)
}

func TestCodec_WireShape(t *testing.T) {
	it := Itinerary{{ID: "d1", Date: Date{Year: 2025, Month: 6, Day: 15}, Activities: []Activity{}}}

	data, err := Encode(it)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"d1","date":"2025-06-15","activities":[]}]`, string(data))
}

func TestEncode_Nil(t *testing.T) {
	data, err := Encode(nil)

	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecode_NullActivitiesBecomeEmpty(t *testing.T) {
	got, err := Decode([]byte(`[{"id":"d1","date":"2025-06-15","activities":null}]`))

	require.NoError(t, err)
	assert.NotNil(t, got[0].Activities)
	assert.Empty(t, got[0].Activities)
}

func TestDecode_Malformed(t *testing.T) {
	tests := map[string]string{
		"not json":          `{{`,
		"null":              `null`,
		"object":            `{"days":[]}`,
		"unknown field":     `[{"id":"d1","date":"2025-06-15","activities":[],"title":"x"}]`,
		"bad date":          `[{"id":"d1","date":"15/06/2025","activities":[]}]`,
		"numeric date":      `[{"id":"d1","date":20250615,"activities":[]}]`,
		"missing date":      `[{"id":"d1","activities":[]}]`,
		"missing day id":    `[{"date":"2025-06-15","activities":[]}]`,
		"duplicate day":     `[{"id":"d1","date":"2025-06-15","activities":[]},{"id":"d1","date":"2025-06-16","activities":[]}]`,
		"missing act id":    `[{"id":"d1","date":"2025-06-15","activities":[{"title":"x","type":"hotel"}]}]`,
		"unknown type":      `[{"id":"d1","date":"2025-06-15","activities":[{"id":"a","type":"spa"}]}]`,
		"cost not a string": `[{"id":"d1","date":"2025-06-15","activities":[{"id":"a","type":"hotel","cost":85}]}]`,
		"duplicate act": `[{"id":"d1","date":"2025-06-15","activities":[{"id":"a","type":"hotel"}]},` +
			`{"id":"d2","date":"2025-06-16","activities":[{"id":"a","type":"hotel"}]}]`,
		"trailing data": `[] []`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode([]byte(raw))
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, got)
		})
	}
}
