package itinerary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCost(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$85", 85, true},
		{"$0", 0, true},
		{"free", 0, false},
		{"", 0, false},
		{"$", 0, false},
		{"85", 85, true},
		{" $ 12.50 ", 12.5, true},
		{"$1,250.75", 1250.75, true},
		{"€40", 40, true},
		{"$40 per person", 40, true},
		{"approx $40", 0, false},
		{"$NaN", 0, false},
		{"$.5", 0.5, true},
		{"$10.555", 10.56, true},
		{"$1.005", 1.01, true},
		{"$0.004", 0, true},
		{"-$3", 0, false},
		{"$-2.25", -2.25, true},
		{"$99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCost(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalCost(t *testing.T) {
	it := Itinerary{
		{ID: "d1", Date: Date{2025, time.June, 15}, Activities: []Activity{
			act("a", "$85"), act("b", "$0"), act("c", "free"),
		}},
		{ID: "d2", Date: Date{2025, time.June, 16}, Activities: []Activity{act("d", "$45.5")}},
	}

	assert.Equal(t, 130.5, TotalCost(it))
	assert.Equal(t, 85.0, DayCost(it[0]))
	assert.Equal(t, 0.0, TotalCost(nil))
	assert.Equal(t, 195.0, TotalCost(Seed()))
}

func TestTotalCost_FractionalCostsAddExactly(t *testing.T) {
	it := Itinerary{
		{ID: "d1", Date: Date{2025, time.June, 15}, Activities: []Activity{
			act("a", "$0.1"), act("b", "$0.2"), act("c", "$0.3"),
		}},
	}

	assert.Equal(t, 0.6, TotalCost(it))
	assert.Equal(t, 0.6, DayCost(it[0]))
}

func TestSummarize(t *testing.T) {
	it := AddActivity(Seed(), "day-2", "act-5").Itinerary
	it = UpdateActivity(it, Activity{ID: "act-5", Cost: "$10.6", Type: TypeTransport}).Itinerary

	s := Summarize(it)

	assert.Equal(t, 2, s.Days)
	assert.Equal(t, 5, s.Activities)
	assert.InDelta(t, 205.6, s.TotalCost, 1e-9)
	assert.Equal(t, int64(206), s.RoundedCost)
}
