// SPDX-License-Identifier: MIT

package sampler

import (
	"time"

	"github.com/katalvlaran/synthdata/dataset"
)

const (
	isoLayout       = "2006-01-02T15:04:05"
	isoMicros       = ".000000"
	isoOffsetLayout = "-07:00"
)

// Timestamps returns n ISO-8601 timestamps starting at d.Start, each one
// Interval after the previous.
//
// Hourly, daily and weekly steps are fixed durations. Monthly, quarterly and
// yearly steps are calendar steps taken from the previous timestamp: the day
// of month is kept when it exists and clamped to the month's last day when it
// does not, so monthly from Jan 31 gives Feb 29 (2024), then Mar 29.
func Timestamps(d dataset.SequentialDatetime, n int) []string {
	out := make([]string, n)
	cur := d.Start
	for i := range out {
		out[i] = FormatTimestamp(cur, d.Zoned)
		cur = Advance(cur, d.Interval)
	}

	return out
}

// Advance moves t forward by one interval.
func Advance(t time.Time, iv dataset.Interval) time.Time {
	switch iv {
	case dataset.Hourly:
		return t.Add(time.Hour)
	case dataset.Daily:
		return t.Add(24 * time.Hour)
	case dataset.Weekly:
		return t.Add(7 * 24 * time.Hour)
	case dataset.Monthly:
		return addMonths(t, 1)
	case dataset.Quarterly:
		return addMonths(t, 3)
	case dataset.Yearly:
		return addMonths(t, 12)
	}

	return t
}

// addMonths adds m calendar months, clamping the day to the target month.
// time.AddDate would normalize Jan 31 + 1 month to Mar 2 instead.
func addMonths(t time.Time, m int) time.Time {
	y, mo, d := t.Date()
	total := int(mo) - 1 + m
	year := y + total/12
	month := time.Month(total%12 + 1)
	if last := daysIn(year, month); d > last {
		d = last
	}
	h, mi, s := t.Clock()

	return time.Date(year, month, d, h, mi, s, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatTimestamp renders t as YYYY-MM-DDTHH:MM:SS, with a .ffffff suffix
// only when the sub-second part is non-zero, and a ±HH:MM offset only for
// zoned values.
func FormatTimestamp(t time.Time, zoned bool) string {
	layout := isoLayout
	if t.Nanosecond()/1000 != 0 {
		layout += isoMicros
	}
	if zoned {
		layout += isoOffsetLayout
	}

	return t.Format(layout)
}
