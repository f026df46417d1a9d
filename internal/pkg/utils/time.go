package utils

import (
	"careportal-service/internal/pkg/constvars"
	"time"
)

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func ParseDate(value string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, value, location)
}

func FormatDate(t time.Time) string {
	return t.Format(constvars.DateLayout)
}

// IsPastDate reports whether date falls on a calendar day before today.
func IsPastDate(date, today time.Time) bool {
	return StartOfDay(date).Before(StartOfDay(today))
}
