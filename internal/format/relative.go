package format

import (
	"time"
)

const DefaultJustNow = 10 * time.Second

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// Past this point we stop counting years.
const longAgo = 100 * year

type unit int

const (
	justNowUnit unit = iota
	secondUnit
	minuteUnit
	hourUnit
	yesterdayUnit
	dayUnit
	weekUnit
	monthUnit
	yearUnit
	longAgoUnit
)

// Options for describing elapsed time.
type RelativeOpts struct {
	// Anything more recent than this is "just now". Zero means DefaultJustNow.
	JustNow time.Duration
}

func (opts RelativeOpts) justNow() time.Duration {
	if opts.JustNow <= 0 {
		return DefaultJustNow
	}

	return opts.JustNow
}

// Describes how long before now the given time was, e.g. "5 minutes ago".
//
// Times after now are treated as happening "just now".
func (opts RelativeOpts) RelativeTime(now time.Time, then time.Time) string {
	u, n := opts.bucket(now.Sub(then))

	switch u {
	case justNowUnit:
		return "just now"
	case secondUnit:
		return plural(n, "second")
	case minuteUnit:
		return plural(n, "minute")
	case hourUnit:
		return plural(n, "hour")
	case yesterdayUnit:
		return "yesterday"
	case dayUnit:
		return plural(n, "day")
	case weekUnit:
		return plural(n, "week")
	case monthUnit:
		return plural(n, "month")
	case yearUnit:
		return plural(n, "year")
	default:
		return "a long time ago"
	}
}

// Picks the bucket for an elapsed duration along with the count of that
// bucket's unit. Coarser buckets always have a larger unit value.
func (opts RelativeOpts) bucket(elapsed time.Duration) (unit, int64) {
	// time.Time.Sub saturates, so elapsed is never wrapped around
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < opts.justNow():
		return justNowUnit, 0
	case elapsed < time.Minute:
		return secondUnit, int64(elapsed / time.Second)
	case elapsed < time.Hour:
		return minuteUnit, int64(elapsed / time.Minute)
	case elapsed < day:
		return hourUnit, int64(elapsed / time.Hour)
	case elapsed < 2*day:
		return yesterdayUnit, 1
	case elapsed < week:
		return dayUnit, int64(elapsed / day)
	case elapsed < 31*day:
		return weekUnit, int64(elapsed / week)
	case elapsed < year:
		return monthUnit, int64(elapsed / month)
	case elapsed < longAgo:
		return yearUnit, int64(elapsed / year)
	default:
		return longAgoUnit, 0
	}
}

// Reports whether then is recent enough to be described as "just now".
func (opts RelativeOpts) IsJustNow(now time.Time, then time.Time) bool {
	u, _ := opts.bucket(now.Sub(then))
	return u == justNowUnit
}

// Reports whether then is too far back to count the years.
func (opts RelativeOpts) IsLongAgo(now time.Time, then time.Time) bool {
	u, _ := opts.bucket(now.Sub(then))
	return u == longAgoUnit
}

// RelativeTime with the default options.
func RelativeTime(now time.Time, then time.Time) string {
	return RelativeOpts{}.RelativeTime(now, then)
}

// Outside this range time.Unix overflows its internal representation.
const maxEpoch = 1 << 62

// Like time.Unix, but clamps epochs far enough out that time.Time cannot
// represent them.
func Unix(epoch int64) time.Time {
	if epoch > maxEpoch {
		epoch = maxEpoch
	} else if epoch < -maxEpoch {
		epoch = -maxEpoch
	}

	return time.Unix(epoch, 0)
}

var timeNow = time.Now

// Describes the given epoch timestamp relative to the current time.
func PrettyDate(epoch int64) string {
	return RelativeTime(timeNow(), Unix(epoch))
}
