// Package analysis implements the metric-computation pipeline: parsing the
// API's compact encodings, normalizing raw video items, date-range filtering,
// per-channel metric aggregation and cross-channel insight aggregation.
// Everything in this package is a pure function over its inputs.
package analysis

import (
	"regexp"
	"strconv"
)

// iso8601Duration matches the API's duration encoding with optional
// year/month/week/day components and fractional seconds,
// e.g. "PT1H30M", "P1DT2H", "P1W", "P1Y2M3DT4H5M6.5S".
var iso8601Duration = regexp.MustCompile(
	`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?`)

// ParseDuration converts an ISO 8601 duration string to total seconds.
// Empty or unparseable input yields 0; fractional seconds are floored after
// all components are summed.
//
// Years count as 365 days and months as 30 days. That is a heuristic, not a
// calendar conversion; consumers of span math must tolerate the resulting
// skew on multi-year durations.
func ParseDuration(dur string) int {
	if dur == "" {
		return 0
	}
	m := iso8601Duration.FindStringSubmatch(dur)
	if m == nil {
		return 0
	}

	years := atoiOrZero(m[1])
	months := atoiOrZero(m[2])
	weeks := atoiOrZero(m[3])
	days := atoiOrZero(m[4])
	hours := atoiOrZero(m[5])
	minutes := atoiOrZero(m[6])
	var seconds float64
	if m[7] != "" {
		if f, err := strconv.ParseFloat(m[7], 64); err == nil {
			seconds = f
		}
	}

	total := float64(years*365*86400+
		months*30*86400+
		weeks*7*86400+
		days*86400+
		hours*3600+
		minutes*60) + seconds
	return int(total)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
