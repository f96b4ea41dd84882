// Package schedule turns the intake form's date and time fields into a
// publish timestamp.
package schedule

import "time"

const (
	defaultTime = "09:00"
	layout      = "2006-01-02T15:04:05"
)

// Resolve combines a date string ("2006-01-02") and a time string ("15:04")
// into a local wall-clock instant. An empty date, or a combination that does
// not parse, yields no schedule rather than an error: the caller treats
// absence as "publish immediately". An empty time defaults to 09:00.
func Resolve(dateStr, timeStr string) (time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, false
	}
	if timeStr == "" {
		timeStr = defaultTime
	}
	ts, err := time.ParseInLocation(layout, dateStr+"T"+timeStr+":00", time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
