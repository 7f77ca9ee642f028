package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

func datedVideo(id string, published time.Time) models.VideoRecord {
	return models.VideoRecord{ID: id, PublishedAt: &published}
}

func ids(videos []models.VideoRecord) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

func TestFilterByRangePresets(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	videos := []models.VideoRecord{
		datedVideo("recent", now.AddDate(0, 0, -3)),
		datedVideo("month", now.AddDate(0, 0, -20)),
		datedVideo("quarter", now.AddDate(0, 0, -80)),
		datedVideo("old", now.AddDate(-2, 0, 0)),
		{ID: "undated"},
	}

	tests := []struct {
		period Period
		want   []string
	}{
		{PeriodLast7Days, []string{"recent"}},
		{PeriodLast30Days, []string{"recent", "month"}},
		{PeriodLast90Days, []string{"recent", "month", "quarter"}},
		{PeriodLastYear, []string{"recent", "month", "quarter"}},
		{PeriodAll, []string{"recent", "month", "quarter", "old", "undated"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got, warnings := FilterByRange(videos, RangeSelection{Period: tt.period}, now)
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tt.want) {
				t.Fatalf("got %v, want %v", gotIDs, tt.want)
			}
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Errorf("got %v, want %v", gotIDs, tt.want)
					break
				}
			}
		})
	}
}

func TestFilterByRangeCustomWindowInclusive(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []models.VideoRecord{
		datedVideo("before", time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)),
		datedVideo("start", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		datedVideo("middle", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)),
		// End of the "to" day is still inside the window.
		datedVideo("end", time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)),
		datedVideo("after", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	sel := RangeSelection{From: "2024-03-01", To: "2024-03-31"}
	got, warnings := FilterByRange(videos, sel, now)
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := []string{"start", "middle", "end"}
	gotIDs := ids(got)
	if strings.Join(gotIDs, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", gotIDs, want)
	}
}

func TestFilterByRangeUndatedExcludedFromBoundedWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []models.VideoRecord{
		{ID: "undated"},
		datedVideo("dated", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
	}

	got, _ := FilterByRange(videos, RangeSelection{From: "2024-01-01"}, now)
	if len(got) != 1 || got[0].ID != "dated" {
		t.Errorf("undated record leaked into bounded window: %v", ids(got))
	}
}

func TestFilterByRangeFromAfterToIsNoOp(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []models.VideoRecord{
		datedVideo("v1", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		{ID: "undated"},
	}

	got, warnings := FilterByRange(videos, RangeSelection{From: "2024-04-01", To: "2024-03-01"}, now)
	if len(got) != len(videos) {
		t.Errorf("inverted window should be a no-op, got %v", ids(got))
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "after") {
		t.Errorf("expected an inverted-window warning, got %v", warnings)
	}
}

func TestFilterByRangeInvalidDateIsNoOp(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []models.VideoRecord{
		datedVideo("v1", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
	}

	got, warnings := FilterByRange(videos, RangeSelection{From: "03/15/2024"}, now)
	if len(got) != 1 {
		t.Errorf("invalid date should be a no-op, got %v", ids(got))
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "invalid from date") {
		t.Errorf("expected an invalid-date warning, got %v", warnings)
	}
}

func TestFilterByRangeEmptySelectionKeepsEverything(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []models.VideoRecord{
		datedVideo("v1", time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)),
		{ID: "undated"},
	}

	got, warnings := FilterByRange(videos, RangeSelection{}, now)
	if len(got) != 2 {
		t.Errorf("empty selection should keep all records, got %v", ids(got))
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestFilterByRangeReturnsCopy(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := []models.VideoRecord{datedVideo("v1", now)}

	got, _ := FilterByRange(videos, RangeSelection{Period: PeriodAll}, now)
	got[0].ID = "mutated"
	if videos[0].ID != "v1" {
		t.Error("FilterByRange should not alias the input slice")
	}
}
