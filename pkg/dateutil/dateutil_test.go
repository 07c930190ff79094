package dateutil

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-02-22T10:30:00Z
const pinned int64 = 1771756200

func pinnedFormatter() *Formatter {
	return New(
		WithClock(func() time.Time { return time.Unix(pinned, 0).UTC() }),
		WithLocation(time.UTC),
	)
}

func TestFormatDate(t *testing.T) {
	f := pinnedFormatter()
	tests := []struct {
		name   string
		ts     *Timestamp
		locale string
		want   string
	}{
		{"unknown", nil, "", Placeholder},
		{"epoch is a real date", Of(0), "", "Jan 1, 1970"},
		{"default locale", Of(pinned), "", "Feb 22, 2026"},
		{"en-US", Of(pinned), "en-US", "Feb 22, 2026"},
		{"en-GB", Of(pinned), "en-GB", "22 Feb 2026"},
		{"de", Of(pinned), "de-DE", "22. Feb. 2026"},
		{"fr", Of(pinned), "fr", "22 févr. 2026"},
		{"es", Of(pinned), "es", "22 feb 2026"},
		{"malformed locale falls back", Of(pinned), "not a locale!", "Feb 22, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatDate(tt.ts, tt.locale))
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	f := pinnedFormatter()
	tests := []struct {
		name   string
		ts     *Timestamp
		locale string
		want   string
	}{
		{"unknown", nil, "", Placeholder},
		{"epoch", Of(0), "", "Jan 1, 1970, 12:00 AM"},
		{"morning", Of(pinned), "en-US", "Feb 22, 2026, 10:30 AM"},
		{"padded hour", Of(pinned - 85*60), "en-US", "Feb 22, 2026, 09:05 AM"},
		{"afternoon", Of(pinned + 5*secondsPerHour), "en-US", "Feb 22, 2026, 03:30 PM"},
		{"en-GB 24 hour", Of(pinned + 5*secondsPerHour), "en-GB", "22 Feb 2026, 15:30"},
		{"fr joiner", Of(pinned), "fr-FR", "22 févr. 2026 à 10:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatDateTime(tt.ts, tt.locale))
		})
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*secondsPerHour)
	f := New(WithLocation(tokyo))
	// 2026-02-22T20:00:00Z is already the 23rd in Tokyo.
	assert.Equal(t, "Feb 23, 2026", f.FormatDate(Of(pinned+(9*60+30)*60), ""))
}

func TestFormatRelativeTime(t *testing.T) {
	f := pinnedFormatter()
	tests := []struct {
		name string
		ts   *Timestamp
		want string
	}{
		{"unknown", nil, Placeholder},
		{"zero is unknown", Of(0), Placeholder},
		{"one day left", Of(pinned + secondsPerDay), "1 day left"},
		{"two days left", Of(pinned + 2*secondsPerDay), "2 days left"},
		{"days win over hours", Of(pinned + 2*secondsPerDay + 23*secondsPerHour), "2 days left"},
		{"one hour left", Of(pinned + secondsPerHour), "1 hour left"},
		{"hours left", Of(pinned + 5*secondsPerHour + 59*secondsPerMinute), "5 hours left"},
		{"one minute left", Of(pinned + 90), "1 minute left"},
		{"minutes left", Of(pinned + 45*secondsPerMinute), "45 minutes left"},
		{"under a minute left", Of(pinned + 30), "0 minutes left"},
		{"exactly now has ended", Of(pinned), "Ended 0 minutes ago"},
		{"ended seconds ago", Of(pinned - 59), "Ended 0 minutes ago"},
		{"ended a minute ago", Of(pinned - 60), "Ended 1 minute ago"},
		{"ended hours ago", Of(pinned - 3*secondsPerHour), "Ended 3 hours ago"},
		{"ended a day ago", Of(pinned - secondsPerDay - 1), "Ended 1 day ago"},
		{"ended days ago", Of(pinned - 10*secondsPerDay), "Ended 10 days ago"},
		{"thousand days left", Of(pinned + 1000*secondsPerDay), "1000 days left"},
		{"ended thousands of days ago", Of(pinned - 1500*secondsPerDay), "Ended 1500 days ago"},
		{"far future", Of(math.MaxInt64), "106751991146794 days left"},
		{"far past", Of(math.MinInt64), "Ended 106751991187807 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatRelativeTime(tt.ts))
		})
	}
}

func TestIsExpired(t *testing.T) {
	f := pinnedFormatter()
	assert.False(t, f.IsExpired(nil))
	assert.False(t, f.IsExpired(Of(0)), "zero is treated as unknown")
	assert.False(t, f.IsExpired(Of(pinned+secondsPerDay)))
	assert.False(t, f.IsExpired(Of(pinned)), "expiry requires now to be strictly later")
	assert.True(t, f.IsExpired(Of(pinned-1)))
}

func TestPassedAt(t *testing.T) {
	ts := Timestamp(pinned)
	assert.False(t, ts.PassedAt(time.Unix(pinned, 0)))
	assert.True(t, ts.PassedAt(time.Unix(pinned, 1)))
	assert.True(t, ts.PassedAt(time.Unix(pinned+1, 0)))
	assert.False(t, Timestamp(math.MaxInt64).PassedAt(time.Unix(pinned, 0)))
	assert.True(t, Timestamp(math.MinInt64).PassedAt(time.Unix(pinned, 0)))
}

func TestRelativeTimeAgreesWithExpiry(t *testing.T) {
	f := pinnedFormatter()
	for _, v := range []int64{math.MinInt64, math.MinInt64 + 1, -1, pinned - 1, pinned + 1, math.MaxInt64} {
		ended := strings.HasPrefix(f.FormatRelativeTime(Of(v)), "Ended ")
		assert.Equal(t, f.IsExpired(Of(v)), ended, "timestamp %d", v)
	}
}

func TestIsExpiredSubSecond(t *testing.T) {
	f := New(WithClock(func() time.Time { return time.Unix(pinned, int64(500*time.Millisecond)) }))
	assert.True(t, f.IsExpired(Of(pinned)))
}

func TestPackageLevelHelpers(t *testing.T) {
	now := time.Now()
	assert.Equal(t, Placeholder, FormatDate(nil, ""))
	assert.Equal(t, Placeholder, FormatDateTime(nil, ""))
	assert.Equal(t, Placeholder, FormatRelativeTime(Of(0)))
	assert.True(t, IsExpired(Of(now.Add(-time.Hour).Unix())))
	assert.False(t, IsExpired(Of(now.Add(time.Hour).Unix())))
	assert.Equal(t, "2 days left", FormatRelativeTime(Of(now.Add(2*24*time.Hour+time.Hour).Unix())))
}

func TestResolveLocale(t *testing.T) {
	assert.Equal(t, DefaultLocale, ResolveLocale(""))
	assert.Equal(t, "en-US", ResolveLocale("en-US"))
	assert.Equal(t, "en-GB", ResolveLocale("en-GB"))
	assert.Equal(t, "de", ResolveLocale("de-DE"))
	assert.Equal(t, "en-US", ResolveLocale("???"))
}

func TestTimestampConversions(t *testing.T) {
	at := time.Date(2026, 2, 22, 10, 30, 45, 999, time.UTC)
	ts := FromTime(at)
	assert.Equal(t, Timestamp(pinned+45), ts)
	assert.True(t, ts.Time().Equal(at.Truncate(time.Second)))
}
