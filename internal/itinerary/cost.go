package itinerary

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const currencySymbols = "$€£¥₫"

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// maxWholeUnits bounds a single cost so sums of any realistic trip stay
// inside int64 cents.
const maxWholeUnits = 10_000_000_000_000

// ParseCost reads a display cost such as "$85" or "$1,250.50". One leading
// currency symbol is dropped, thousands separators are ignored and the number
// at the start of the rest is used, so "$40 per person" reads as 40. Anything
// without a leading number ("free", "") is not a cost. Values are rounded to
// whole cents, half away from zero.
func ParseCost(raw string) (float64, bool) {
	cents, ok := parseCents(raw)
	if !ok {
		return 0, false
	}
	return centsToUnits(cents), true
}

func parseCents(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if r, size := utf8.DecodeRuneInString(s); size > 0 && strings.ContainsRune(currencySymbols, r) {
		s = strings.TrimSpace(s[size:])
	}
	s = strings.ReplaceAll(s, ",", "")

	num := leadingNumber.FindString(s)
	if num == "" {
		return 0, false
	}
	negative := num[0] == '-'
	num = strings.TrimLeft(num, "+-")

	whole, frac, _ := strings.Cut(num, ".")
	var cents int64
	if whole != "" {
		w, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || w > maxWholeUnits {
			return 0, false
		}
		cents = w * 100
	}
	frac += "000"
	cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	if frac[2] >= '5' {
		cents++
	}
	if negative {
		cents = -cents
	}
	return cents, true
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}

// TotalCost sums every activity cost. Unparseable costs count as zero. The sum
// is kept in whole cents, so it does not depend on how activities are spread
// over days.
func TotalCost(it Itinerary) float64 {
	var cents int64
	for _, day := range it {
		cents += dayCents(day)
	}
	return centsToUnits(cents)
}

func DayCost(day Day) float64 {
	return centsToUnits(dayCents(day))
}

func dayCents(day Day) int64 {
	var cents int64
	for _, act := range day.Activities {
		if v, ok := parseCents(act.Cost); ok {
			cents += v
		}
	}
	return cents
}

// Summary is the trip header shown above the day list. Summarize leaves the
// details empty; the caller fills them from wherever it keeps them.
type Summary struct {
	TripDetails
	Days        int     `json:"days"`
	Activities  int     `json:"activities"`
	TotalCost   float64 `json:"total_cost"`
	RoundedCost int64   `json:"rounded_cost"`
}

func Summarize(it Itinerary) Summary {
	total := TotalCost(it)
	return Summary{
		Days:        len(it),
		Activities:  it.ActivityCount(),
		TotalCost:   total,
		RoundedCost: int64(math.Round(total)),
	}
}
