package analysis

import (
	"fmt"
	"time"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

// Period names a preset rolling window.
type Period string

const (
	PeriodAll        Period = "all"
	PeriodLast7Days  Period = "last_7_days"
	PeriodLast30Days Period = "last_30_days"
	PeriodLast90Days Period = "last_90_days"
	PeriodLastYear   Period = "last_year"
)

const dateLayout = "2006-01-02"

// RangeSelection picks the videos to analyze: either a named rolling Period
// or an explicit From/To calendar-date pair ("YYYY-MM-DD"). A pair with
// either bound set takes precedence over the period; a pair with both bounds
// empty behaves exactly like PeriodAll.
type RangeSelection struct {
	Period Period
	From   string
	To     string
}

// FilterByRange returns the subset of records whose publish timestamp falls
// inside the selected window, inclusive on both ends. Explicit calendar-date
// bounds expand to start-of-day and end-of-day. Records without a timestamp
// never match a bounded window but survive an unbounded one.
//
// Invalid configurations (from after to, unparseable dates) degrade to a
// no-op with a caller-visible warning instead of an error.
func FilterByRange(videos []models.VideoRecord, sel RangeSelection, now time.Time) ([]models.VideoRecord, []string) {
	var warnings []string

	from, to, warn := sel.bounds(now)
	if warn != "" {
		warnings = append(warnings, warn)
	}
	if from == nil && to == nil {
		out := make([]models.VideoRecord, len(videos))
		copy(out, videos)
		return out, warnings
	}

	out := make([]models.VideoRecord, 0, len(videos))
	for _, v := range videos {
		if v.PublishedAt == nil {
			continue
		}
		pub := v.PublishedAt.UTC()
		if from != nil && pub.Before(*from) {
			continue
		}
		if to != nil && pub.After(*to) {
			continue
		}
		out = append(out, v)
	}
	return out, warnings
}

// bounds resolves the selection into absolute UTC instants. Both nil means
// no filtering.
func (sel RangeSelection) bounds(now time.Time) (from, to *time.Time, warning string) {
	if sel.From != "" || sel.To != "" {
		return sel.customBounds()
	}

	var days int
	switch sel.Period {
	case PeriodLast7Days:
		days = 7
	case PeriodLast30Days:
		days = 30
	case PeriodLast90Days:
		days = 90
	case PeriodLastYear:
		days = 365
	default:
		return nil, nil, ""
	}
	cutoff := now.UTC().AddDate(0, 0, -days)
	return &cutoff, nil, ""
}

func (sel RangeSelection) customBounds() (from, to *time.Time, warning string) {
	if sel.From != "" {
		t, err := time.Parse(dateLayout, sel.From)
		if err != nil {
			return nil, nil, fmt.Sprintf("invalid from date %q, expected YYYY-MM-DD; date filter skipped", sel.From)
		}
		t = t.UTC()
		from = &t
	}
	if sel.To != "" {
		t, err := time.Parse(dateLayout, sel.To)
		if err != nil {
			return nil, nil, fmt.Sprintf("invalid to date %q, expected YYYY-MM-DD; date filter skipped", sel.To)
		}
		// A bare calendar date means the whole day.
		endOfDay := t.UTC().Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Sprintf("from date %s is after to date %s; date filter skipped", sel.From, sel.To)
	}
	return from, to, ""
}
