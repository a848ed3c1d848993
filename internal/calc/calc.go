// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package calc derives clinical-logistics values from a reference time and
// simple formulas: fasting onset, antibiotic timing, maintenance fluid rate,
// and drip rate. All functions are pure; invalid input yields a sentinel
// (ok == false or 0) instead of an error.
package calc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// String renders the clock as "HH.MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d.%02d", c.Hour, c.Minute)
}

var clockPattern = regexp.MustCompile(`^(\d{1,2})[.:](\d{1,2})$`)

// ParseTime reads "HH.MM" or "HH:MM" (one or two digits each). It reports
// false for unparseable text or an hour outside 0–23 or minute outside 0–59.
func ParseTime(s string) (Clock, bool) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Clock{}, false
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if h > 23 || mi > 59 {
		return Clock{}, false
	}
	return Clock{Hour: h, Minute: mi}, true
}

// SubtractMinutes moves a clock back by minutes, wrapping modulo 24 hours.
func SubtractMinutes(hour, minute, minutes int) (int, int) {
	total := ((hour*60+minute-minutes)%minutesPerDay + minutesPerDay) % minutesPerDay
	return total / 60, total % 60
}

// Minus is SubtractMinutes on a Clock.
func (c Clock) Minus(minutes int) Clock {
	h, m := SubtractMinutes(c.Hour, c.Minute, minutes)
	return Clock{Hour: h, Minute: m}
}

// MaintenanceRate returns the maintenance fluid rate in mL/hr for a body
// weight in kg: 4 mL/kg/hr for the first 10 kg, 2 mL/kg/hr for the next
// 10 kg, and 1 mL/kg/hr beyond 20 kg. Negative or non-finite weights count
// as 0.
func MaintenanceRate(weightKg float64) float64 {
	if math.IsNaN(weightKg) || weightKg <= 0 {
		return 0
	}
	if math.IsInf(weightKg, 1) {
		return 0
	}
	switch {
	case weightKg <= 10:
		return 4 * weightKg
	case weightKg <= 20:
		return 40 + 2*(weightKg-10)
	default:
		return 60 + (weightKg - 20)
	}
}

// DropsPerMinute converts mL/hr to drops/min for a drip factor in drops per
// mL: round(mlPerHr × factor / 60). Invalid input yields 0.
func DropsPerMinute(mlPerHr float64, dripFactor int) int {
	if math.IsNaN(mlPerHr) || math.IsInf(mlPerHr, 0) || mlPerHr <= 0 || dripFactor <= 0 {
		return 0
	}
	return int(math.Round(mlPerHr * float64(dripFactor) / 60))
}

// ParseNumber reads a decimal number written with either "." or "," as the
// separator, ignoring a trailing unit ("25 kg", "12,5"). It reports false
// when no number leads the text.
func ParseNumber(s string) (float64, bool) {
	m := numberPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var numberPattern = regexp.MustCompile(`^\d+(?:[.,]\d+)?`)
