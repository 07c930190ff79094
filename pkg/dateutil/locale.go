package dateutil

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale, or an unsupported one, is requested.
const DefaultLocale = "en-US"

// dateStyle holds the CLDR medium date pattern for one locale. The pattern
// takes day, abbreviated month and year as indexed verbs.
type dateStyle struct {
	months  [12]string
	pattern string
	clock   string
	joiner  string
}

func (s dateStyle) date(t time.Time) string {
	return fmt.Sprintf(s.pattern, t.Day(), s.months[t.Month()-1], t.Year())
}

func (s dateStyle) dateTime(t time.Time) string {
	return s.date(t) + s.joiner + t.Format(s.clock)
}

var (
	englishMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	// Order matters: the first entry is the matcher's fallback.
	supportedLocales = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
	}

	styles = []dateStyle{
		{months: englishMonths, pattern: "%[2]s %[1]d, %[3]d", clock: "03:04 PM", joiner: ", "},
		{months: englishMonths, pattern: "%[1]d %[2]s %[3]d", clock: "15:04", joiner: ", "},
		{
			months:  [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
			pattern: "%[1]d. %[2]s %[3]d",
			clock:   "15:04",
			joiner:  ", ",
		},
		{
			months:  [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
			pattern: "%[1]d %[2]s %[3]d",
			clock:   "15:04",
			joiner:  " à ",
		},
		{
			months:  [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
			pattern: "%[1]d %[2]s %[3]d",
			clock:   "15:04",
			joiner:  ", ",
		},
	}

	matcher = language.NewMatcher(supportedLocales)
)

// styleFor picks the closest supported style for an IETF language tag.
// Malformed or unknown tags resolve to en-US.
func styleFor(locale string) dateStyle {
	if locale == "" {
		return styles[0]
	}
	_, idx := language.MatchStrings(matcher, locale)
	return styles[idx]
}

// ResolveLocale returns the supported locale a tag resolves to.
func ResolveLocale(locale string) string {
	if locale == "" {
		return DefaultLocale
	}
	_, idx := language.MatchStrings(matcher, locale)
	return supportedLocales[idx].String()
}
