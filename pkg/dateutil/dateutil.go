// Package dateutil renders Unix timestamps as absolute dates and as relative
// "time left" phrases, and reports whether a deadline has passed.
package dateutil

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize/english"
)

// Placeholder is returned when a timestamp is unknown.
const Placeholder = "—"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Timestamp is a count of seconds since the Unix epoch.
type Timestamp int64

// Of returns a pointer to v. A nil *Timestamp means the time is unknown.
func Of(v int64) *Timestamp {
	ts := Timestamp(v)
	return &ts
}

// FromTime converts t to a Timestamp, dropping sub-second precision.
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// Time returns the instant ts represents.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts), 0)
}

// PassedAt reports whether now is strictly after ts, at sub-second precision.
// It compares seconds directly so extreme timestamps cannot overflow.
func (ts Timestamp) PassedAt(now time.Time) bool {
	sec := now.Unix()
	return sec > int64(ts) || (sec == int64(ts) && now.Nanosecond() > 0)
}

// Clock reports the current time.
type Clock func() time.Time

// Formatter renders timestamps against a clock and a time zone.
// The zero value is not usable; call New.
type Formatter struct {
	now Clock
	loc *time.Location
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock pins the formatter's notion of "now".
func WithClock(c Clock) Option {
	return func(f *Formatter) {
		if c != nil {
			f.now = c
		}
	}
}

// WithLocation sets the zone absolute dates are rendered in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// New creates a Formatter reading the system clock in the local zone unless overridden.
func New(opts ...Option) *Formatter {
	f := &Formatter{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Now returns the formatter's current time.
func (f *Formatter) Now() time.Time { return f.now() }

// FormatDate renders ts as a short calendar date such as "Feb 22, 2026".
// A nil timestamp yields Placeholder; zero renders the epoch.
func (f *Formatter) FormatDate(ts *Timestamp, locale string) string {
	if ts == nil {
		return Placeholder
	}
	return styleFor(locale).date(ts.Time().In(f.loc))
}

// FormatDateTime renders ts with hours and minutes, e.g. "Feb 22, 2026, 10:30 AM".
// A nil timestamp yields Placeholder; zero renders the epoch.
func (f *Formatter) FormatDateTime(ts *Timestamp, locale string) string {
	if ts == nil {
		return Placeholder
	}
	return styleFor(locale).dateTime(ts.Time().In(f.loc))
}

// FormatRelativeTime describes the distance between now and ts using the
// largest whole unit among days, hours and minutes: "3 days left" for a
// future deadline, "Ended 5 hours ago" otherwise.
//
// Unlike FormatDate, a zero timestamp is treated as unknown.
func (f *Formatter) FormatRelativeTime(ts *Timestamp) string {
	if ts == nil || *ts == 0 {
		return Placeholder
	}
	deadline, now := int64(*ts), f.now().Unix()
	// The gap between any two int64 values fits in a uint64.
	if deadline > now {
		return describe(uint64(deadline)-uint64(now)) + " left"
	}
	return "Ended " + describe(uint64(now)-uint64(deadline)) + " ago"
}

// IsExpired reports whether now is strictly after ts. Unknown and zero
// timestamps never expire.
func (f *Formatter) IsExpired(ts *Timestamp) bool {
	if ts == nil || *ts == 0 {
		return false
	}
	return ts.PassedAt(f.now())
}

func describe(secs uint64) string {
	if days := secs / secondsPerDay; days > 0 {
		return count(days, "day", "days")
	}
	if hours := secs / secondsPerHour; hours > 0 {
		return count(hours, "hour", "hours")
	}
	return count(secs/secondsPerMinute, "minute", "minutes")
}

// count renders n ungrouped, unlike english.Plural.
func count(n uint64, singular, plural string) string {
	return strconv.FormatUint(n, 10) + " " + english.PluralWord(int(n), singular, plural)
}

var std = New()

// FormatDate formats ts with the system clock and local zone.
func FormatDate(ts *Timestamp, locale string) string { return std.FormatDate(ts, locale) }

// FormatDateTime formats ts with the system clock and local zone.
func FormatDateTime(ts *Timestamp, locale string) string { return std.FormatDateTime(ts, locale) }

// FormatRelativeTime describes ts relative to the system clock.
func FormatRelativeTime(ts *Timestamp) string { return std.FormatRelativeTime(ts) }

// IsExpired reports whether the system clock is past ts.
func IsExpired(ts *Timestamp) bool { return std.IsExpired(ts) }
