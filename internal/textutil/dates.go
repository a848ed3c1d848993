// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import "time"

const dateLayout = "02/01/2006"

// dayNames maps Gregorian weekday names to Indonesian.
var dayNames = map[string]string{
	"Monday":    "Senin",
	"Tuesday":   "Selasa",
	"Wednesday": "Rabu",
	"Thursday":  "Kamis",
	"Friday":    "Jumat",
	"Saturday":  "Sabtu",
	"Sunday":    "Minggu",
}

// LocalDayName translates an English weekday name. Unknown names are
// returned unchanged.
func LocalDayName(name string) string {
	if local, ok := dayNames[name]; ok {
		return local
	}
	return name
}

// DayName returns the Indonesian weekday name of t.
func DayName(t time.Time) string {
	return LocalDayName(t.Weekday().String())
}

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate accepts dd/mm/yyyy, dd-mm-yyyy, and yyyy-mm-dd in loc.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{dateLayout, "02-01-2006", "2006-01-02", "2/1/2006"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
