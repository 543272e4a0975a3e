// Package i18n is the string lookup used for display labels. Catalogs are
// keyed by dotted names such as "itinerary.day"; a missing key falls back to
// English and then to the key itself.
package i18n

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		"itinerary.day":        "Day %d",
		"itinerary.days":       "%d days",
		"itinerary.activities": "%d activities",
		"itinerary.total":      "%s total",
		"itinerary.budget":     "Budget",
		"itinerary.duration":   "Duration",
		"itinerary.travelers":  "%d people",
		"itinerary.empty_day":  `Drop activities here or click "Add Activity" to get started`,
		"session.guest":        "Guest",
		"date.long":            "%[1]s, %[2]s %[3]d, %[4]d",

		"weekday.0": "Sunday", "weekday.1": "Monday", "weekday.2": "Tuesday", "weekday.3": "Wednesday",
		"weekday.4": "Thursday", "weekday.5": "Friday", "weekday.6": "Saturday",

		"month.1": "January", "month.2": "February", "month.3": "March", "month.4": "April",
		"month.5": "May", "month.6": "June", "month.7": "July", "month.8": "August",
		"month.9": "September", "month.10": "October", "month.11": "November", "month.12": "December",
	},
	language.Vietnamese: {
		"itinerary.day":        "Ngày %d",
		"itinerary.days":       "%d ngày",
		"itinerary.activities": "%d hoạt động",
		"itinerary.total":      "Tổng %s",
		"itinerary.budget":     "Ngân sách",
		"itinerary.duration":   "Thời gian",
		"itinerary.travelers":  "%d người",
		"itinerary.empty_day":  `Kéo hoạt động vào đây hoặc bấm "Thêm hoạt động" để bắt đầu`,
		"session.guest":        "Khách",
		"date.long":            "%[1]s, ngày %[3]d %[2]s năm %[4]d",

		"weekday.0": "Chủ Nhật", "weekday.1": "Thứ Hai", "weekday.2": "Thứ Ba", "weekday.3": "Thứ Tư",
		"weekday.4": "Thứ Năm", "weekday.5": "Thứ Sáu", "weekday.6": "Thứ Bảy",

		"month.1": "tháng 1", "month.2": "tháng 2", "month.3": "tháng 3", "month.4": "tháng 4",
		"month.5": "tháng 5", "month.6": "tháng 6", "month.7": "tháng 7", "month.8": "tháng 8",
		"month.9": "tháng 9", "month.10": "tháng 10", "month.11": "tháng 11", "month.12": "tháng 12",
	},
}

var supported = []language.Tag{language.English, language.Vietnamese}

// Bundle picks a translator for a caller's language preferences.
type Bundle struct {
	matcher language.Matcher
	ordered []language.Tag
}

// NewBundle returns a bundle whose default language is defaultLang when it is
// supported, English otherwise.
func NewBundle(defaultLang string) *Bundle {
	fallback := language.English
	if tag, err := language.Parse(defaultLang); err == nil {
		if _, ok := catalogs[tag]; ok {
			fallback = tag
		}
	}
	// the matcher returns the first supported tag when nothing matches
	ordered := []language.Tag{fallback}
	for _, tag := range supported {
		if tag != fallback {
			ordered = append(ordered, tag)
		}
	}
	return &Bundle{matcher: language.NewMatcher(ordered), ordered: ordered}
}

// Translator looks up strings in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// For resolves preferences in order: each entry may be a plain tag ("vi") or an
// Accept-Language header value. Empty entries are skipped.
func (b *Bundle) For(preferences ...string) *Translator {
	var tags []language.Tag
	for _, pref := range preferences {
		if strings.TrimSpace(pref) == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}

	tag := b.ordered[0]
	if len(tags) > 0 {
		_, idx, conf := b.matcher.Match(tags...)
		if conf != language.No && idx < len(b.ordered) {
			tag = b.ordered[idx]
		}
	}
	return &Translator{tag: tag, printer: message.NewPrinter(tag)}
}

// Language is the BCP 47 tag of the translator, e.g. "en" or "vi".
func (t *Translator) Language() string {
	return t.tag.String()
}

// T returns the raw catalog entry for key.
func (t *Translator) T(key string) string {
	if s, ok := catalogs[t.tag][key]; ok {
		return s
	}
	if s, ok := catalogs[language.English][key]; ok {
		return s
	}
	return key
}

// Tf formats the catalog entry for key with args.
func (t *Translator) Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(t.T(key), args...)
}

// Money renders a total rounded to whole units with locale digit grouping.
func (t *Translator) Money(amount float64) string {
	return "$" + t.printer.Sprintf("%d", int64(math.Round(amount)))
}

// LongDate renders a calendar date like "Sunday, June 15, 2025".
func (t *Translator) LongDate(d time.Time) string {
	return t.Tf("date.long",
		t.T(fmt.Sprintf("weekday.%d", int(d.Weekday()))),
		t.T(fmt.Sprintf("month.%d", int(d.Month()))),
		d.Day(),
		d.Year(),
	)
}
