package analysis

import (
	"reflect"
	"testing"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

func chanWith(uploads, shorts, avgViews float64, topics ...string) models.ChannelAnalysis {
	return models.ChannelAnalysis{
		AvgUploadsPerWeek:       uploads,
		AvgUploadsShortsPerWeek: shorts,
		AvgViewsSample:          avgViews,
		TopTopics:               topics,
	}
}

func TestAggregateInsightsEmpty(t *testing.T) {
	got := AggregateInsights(nil)
	if got.ChannelsAnalyzed != 0 {
		t.Errorf("ChannelsAnalyzed = %d, want 0", got.ChannelsAnalyzed)
	}
	if len(got.Suggestions) != 0 {
		t.Errorf("empty batch should carry no suggestions, got %v", got.Suggestions)
	}
}

func TestAggregateInsightsShortsFirst(t *testing.T) {
	// One shorts-heavy channel far outperforming two long-form channels.
	// Identical upload cadence keeps the correlation undefined, which lands
	// on the quality suggestion.
	analyses := []models.ChannelAnalysis{
		chanWith(1.0, 0.8, 5000),
		chanWith(1.0, 0.2, 2000),
		chanWith(1.0, 0.2, 2000),
	}

	got := AggregateInsights(analyses)

	if got.MedianShortsRatio != 0.2 {
		t.Errorf("MedianShortsRatio = %v, want 0.2", got.MedianShortsRatio)
	}
	if len(got.Suggestions) != 2 {
		t.Fatalf("Suggestions = %v, want two", got.Suggestions)
	}
	if got.Suggestions[0] != suggestionShortsFirst {
		t.Errorf("first suggestion = %q, want shorts-first", got.Suggestions[0])
	}
	if got.Suggestions[1] != suggestionQuality {
		t.Errorf("second suggestion = %q, want quality", got.Suggestions[1])
	}
}

func TestAggregateInsightsMixedStrategy(t *testing.T) {
	// Shorts-heavy channel exists but does not outperform by 1.3x.
	analyses := []models.ChannelAnalysis{
		chanWith(1.0, 0.8, 2100),
		chanWith(1.0, 0.2, 2000),
		chanWith(1.0, 0.2, 2000),
	}

	got := AggregateInsights(analyses)
	if len(got.Suggestions) == 0 || got.Suggestions[0] != suggestionMixed {
		t.Errorf("Suggestions = %v, want mixed-strategy first", got.Suggestions)
	}
}

func TestAggregateInsightsCadenceCorrelation(t *testing.T) {
	// Perfectly increasing uploads vs views; all channels long-form so the
	// shorts comparison stays silent.
	analyses := []models.ChannelAnalysis{
		chanWith(1.0, 0, 1000),
		chanWith(2.0, 0, 2000),
		chanWith(3.0, 0, 3000),
	}

	got := AggregateInsights(analyses)
	want := []string{suggestionCadence}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", got.Suggestions, want)
	}
}

func TestAggregateInsightsInsufficientData(t *testing.T) {
	analyses := []models.ChannelAnalysis{
		chanWith(1.0, 0, 1000),
		chanWith(2.0, 0, 2000),
	}

	got := AggregateInsights(analyses)
	want := []string{suggestionMoreData}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", got.Suggestions, want)
	}
}

func TestAggregateInsightsOrderIndependent(t *testing.T) {
	analyses := []models.ChannelAnalysis{
		chanWith(1.0, 0.8, 5000, "cooking"),
		chanWith(2.0, 0.2, 2000, "cooking", "baking"),
		chanWith(3.0, 0.1, 2500, "grilling"),
	}
	reversed := []models.ChannelAnalysis{analyses[2], analyses[1], analyses[0]}

	a := AggregateInsights(analyses)
	b := AggregateInsights(reversed)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("batch order changed the summary:\n%+v\n%+v", a, b)
	}
}

func TestOverallTopicsMergeAndTies(t *testing.T) {
	analyses := []models.ChannelAnalysis{
		{TopTopics: []string{"cooking", "baking"}},
		{TopTopics: []string{"cooking", "grilling"}},
		{TopTopics: []string{"baking"}},
	}

	got := overallTopics(analyses, 20)
	want := []models.TopicCount{
		{Topic: "baking", Count: 2},
		{Topic: "cooking", Count: 2},
		{Topic: "grilling", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("overallTopics = %v, want %v", got, want)
	}
}

func TestAggregateInsightsIgnoresZeroCadenceChannels(t *testing.T) {
	analyses := []models.ChannelAnalysis{
		chanWith(0, 0, 100), // no defined shorts ratio
		chanWith(1.0, 1.0, 500),
	}

	got := AggregateInsights(analyses)
	if got.MedianShortsRatio != 1.0 {
		t.Errorf("MedianShortsRatio = %v, want 1.0", got.MedianShortsRatio)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		in   []float64
		want float64
	}{
		{nil, 0},
		{[]float64{3}, 3},
		{[]float64{3, 1}, 2},
		{[]float64{5, 1, 3}, 3},
		{[]float64{4, 1, 3, 2}, 2.5},
	}
	for _, tt := range tests {
		if got := median(tt.in); got != tt.want {
			t.Errorf("median(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPearson(t *testing.T) {
	perfect := pearson([]float64{1, 2, 3}, []float64{10, 20, 30})
	if perfect < 0.999 {
		t.Errorf("pearson on perfect correlation = %v, want ~1", perfect)
	}

	inverse := pearson([]float64{1, 2, 3}, []float64{30, 20, 10})
	if inverse > -0.999 {
		t.Errorf("pearson on perfect inverse = %v, want ~-1", inverse)
	}

	flat := pearson([]float64{1, 1, 1}, []float64{10, 20, 30})
	if !isNaN(flat) {
		t.Errorf("pearson with zero variance = %v, want NaN", flat)
	}
}

func isNaN(v float64) bool { return v != v }
