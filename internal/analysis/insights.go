package analysis

import (
	"math"
	"sort"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

// Suggestion texts are fixed so the composed suggestion set is comparable
// across runs.
const (
	suggestionShortsFirst = "Shorts-heavy channels tend to get higher avg views — consider a shorts-first strategy for reach."
	suggestionMixed       = "Maintain a healthy mix of shorts and long-form; long-form drives depth and conversions."
	suggestionCadence     = "Increasing upload frequency correlates with higher avg views; aim for consistent cadence (e.g., 2-4/week)."
	suggestionQuality     = "Upload frequency has unclear correlation; prioritize content quality and targeted topics."
	suggestionMoreData    = "Insufficient data to assess upload frequency vs. views correlation; emphasize content quality."
)

// AggregateInsights derives cross-channel guidance from a batch of analyses.
// Pure, stateless and order-independent: identical batches produce identical
// summaries regardless of input order.
func AggregateInsights(analyses []models.ChannelAnalysis) *models.InsightSummary {
	summary := &models.InsightSummary{ChannelsAnalyzed: len(analyses)}
	if len(analyses) == 0 {
		return summary
	}

	// Shorts ratio per channel, clamped to [0,1]; channels with zero upload
	// cadence have no defined ratio and are ignored.
	ratios := make([]float64, 0, len(analyses))
	var highShorts, lowShorts []models.ChannelAnalysis
	for _, a := range analyses {
		if a.AvgUploadsPerWeek == 0 {
			continue
		}
		r := clamp01(a.AvgUploadsShortsPerWeek / a.AvgUploadsPerWeek)
		ratios = append(ratios, r)
		if r > 0.5 {
			highShorts = append(highShorts, a)
		} else {
			lowShorts = append(lowShorts, a)
		}
	}
	summary.MedianShortsRatio = round2(median(ratios))
	summary.TopOverallTopics = overallTopics(analyses, 20)

	var suggestions []string
	if len(highShorts) > 0 && len(lowShorts) > 0 {
		if meanViews(highShorts) > meanViews(lowShorts)*1.3 {
			suggestions = append(suggestions, suggestionShortsFirst)
		} else {
			suggestions = append(suggestions, suggestionMixed)
		}
	}

	xs := make([]float64, 0, len(analyses))
	ys := make([]float64, 0, len(analyses))
	for _, a := range analyses {
		if !isFinite(a.AvgUploadsPerWeek) || !isFinite(a.AvgViewsSample) {
			continue
		}
		xs = append(xs, a.AvgUploadsPerWeek)
		ys = append(ys, a.AvgViewsSample)
	}
	if len(xs) >= 3 {
		corr := pearson(xs, ys)
		if !math.IsNaN(corr) && corr > 0.2 {
			suggestions = append(suggestions, suggestionCadence)
		} else {
			suggestions = append(suggestions, suggestionQuality)
		}
	} else {
		suggestions = append(suggestions, suggestionMoreData)
	}

	summary.Suggestions = suggestions
	return summary
}

// overallTopics merges every channel's topic list into a batch-wide top-n
// frequency ranking. Ties break lexicographically so the ordering does not
// depend on batch order.
func overallTopics(analyses []models.ChannelAnalysis, n int) []models.TopicCount {
	freq := make(map[string]int)
	for _, a := range analyses {
		for _, t := range a.TopTopics {
			freq[t]++
		}
	}

	topics := make([]string, 0, len(freq))
	for t := range freq {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool {
		if freq[topics[i]] != freq[topics[j]] {
			return freq[topics[i]] > freq[topics[j]]
		}
		return topics[i] < topics[j]
	})
	if len(topics) > n {
		topics = topics[:n]
	}

	out := make([]models.TopicCount, len(topics))
	for i, t := range topics {
		out[i] = models.TopicCount{Topic: t, Count: freq[t]}
	}
	return out
}

func meanViews(analyses []models.ChannelAnalysis) float64 {
	if len(analyses) == 0 {
		return 0
	}
	var sum float64
	for _, a := range analyses {
		sum += a.AvgViewsSample
	}
	return sum / float64(len(analyses))
}

// median returns the standard median (mean of the two middle values for even
// counts), 0 for an empty slice.
func median(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// pearson computes the Pearson correlation coefficient; NaN when either
// series has zero variance.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return math.NaN()
	}
	meanX := mean(xs)
	meanY := mean(ys)

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}
