// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"time"
)

// zonedLayouts carry an explicit offset; naiveLayouts do not.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999Z07:00",
		"2006-01-02T15:04Z07:00",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02T15",
		"2006-01-02",
	}
)

// ParseTimestamp parses the ISO-8601 forms accepted for sequential_datetime
// start values: a date, a date and time (T or space separated, optional
// fractional seconds), with or without a UTC offset. zoned reports whether an
// offset was present; naive values are returned in UTC.
func ParseTimestamp(s string) (t time.Time, zoned bool, err error) {
	for _, layout := range zonedLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, true, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("dataset: %q is not an ISO-8601 datetime", s)
}
