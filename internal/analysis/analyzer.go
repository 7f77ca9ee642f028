package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

var titleToken = regexp.MustCompile(`[a-z0-9+#]+`)

// Analyzer computes one ChannelAnalysis per channel. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	cfg       Config
	stopwords map[string]struct{}
}

// NewAnalyzer builds an Analyzer around the given configuration.
func NewAnalyzer(cfg Config) *Analyzer {
	stopwords := make(map[string]struct{}, len(cfg.Stopwords))
	for _, w := range cfg.Stopwords {
		stopwords[w] = struct{}{}
	}
	return &Analyzer{cfg: cfg, stopwords: stopwords}
}

// AnalyzeChannel turns a channel's identity, reported totals and its filtered
// video records into one ChannelAnalysis. A nil result means the channel had
// no videos in range; that is a normal outcome, not an error.
//
// Videos without a publish timestamp count toward totals, bucket sizes and
// keyword scans but are excluded from every date-span and weekly computation.
func (a *Analyzer) AnalyzeChannel(ch models.ChannelInfo, videos []models.VideoRecord) *models.ChannelAnalysis {
	if len(videos) == 0 {
		return nil
	}

	sorted := sortByPublishedAt(videos)
	total := len(sorted)

	dated := make([]models.VideoRecord, 0, total)
	for _, v := range sorted {
		if v.PublishedAt != nil {
			dated = append(dated, v)
		}
	}

	weeksSpan, datedCount, shortsDated, longsDated := a.cadenceInputs(dated, total)
	uploadsPerWeek := safeDiv(float64(datedCount), weeksSpan)
	shortsPerWeek := safeDiv(float64(shortsDated), weeksSpan)
	longsPerWeek := safeDiv(float64(longsDated), weeksSpan)

	var (
		shortsCount, longsCount         int
		shortsRuntimeSum, longsRuntime  float64
		viewsSum, likesSum, commentsSum int64
	)
	for _, v := range sorted {
		if a.isShort(v) {
			shortsCount++
			shortsRuntimeSum += float64(v.DurationSeconds)
		} else {
			longsCount++
			longsRuntime += float64(v.DurationSeconds)
		}
		viewsSum += v.Views
		likesSum += v.Likes
		commentsSum += v.Comments
	}
	avgRuntimeLong := safeDiv(longsRuntime, float64(longsCount))
	avgRuntimeShorts := safeDiv(shortsRuntimeSum, float64(shortsCount))
	avgViews := safeDiv(float64(viewsSum), float64(total))

	topEngagementPct := a.topDecileEngagementPct(sorted)

	byViews := sortByViewsDesc(sorted)
	top5Longs := topTitles(byViews, 5, func(v models.VideoRecord) bool { return !a.isShort(v) })
	top5Shorts := topTitles(byViews, 5, a.isShort)

	ctaCounts, monetCounts, videosWithCommunity := a.scanKeywords(sorted)

	topTopics, topicDiversity := a.extractTopics(sorted)

	weekly := weeklyViewSeries(dated)
	estViews := forecastViews(weekly, a.cfg.ForecastWeeks)
	estSubs := int64(estViews * a.cfg.SubsConversionRate)

	// Engagement rate is a fraction here; the exported field is a percent.
	engagementRate := safeDiv(float64(likesSum+commentsSum), float64(viewsSum))

	quality := a.qualityScore(longsCount, shortsCount, avgRuntimeLong, avgRuntimeShorts, engagementRate, topicDiversity)
	community := a.communityScore(commentsSum, videosWithCommunity, total)

	return &models.ChannelAnalysis{
		ChannelID:            ch.ID,
		ChannelTitle:         ch.Title,
		Subscribers:          ch.Subscribers,
		ChannelTotalViews:    ch.TotalViews,
		SampleVideosAnalyzed: total,

		AvgUploadsPerWeek:       round2(uploadsPerWeek),
		AvgUploadsLongPerWeek:   round2(longsPerWeek),
		AvgUploadsShortsPerWeek: round2(shortsPerWeek),

		AvgRuntimeLongSeconds:   round2(avgRuntimeLong),
		AvgRuntimeShortsSeconds: round2(avgRuntimeShorts),

		EngagementPctPopularVideos: round2(topEngagementPct),
		AvgViewsSample:             round2(avgViews),
		EngagementRateOverallPct:   round2(engagementRate * 100),

		Top5LongTitles:   top5Longs,
		Top5ShortsTitles: top5Shorts,
		CTACounts:        topKeywords(ctaCounts, a.cfg.CTAWords, 10),
		TopTopics:        topTopics,

		EstViewsNext6Months: int64(estViews),
		EstSubsNext6Months:  estSubs,

		QualityScore:   quality,
		CommunityScore: community,

		MonetizationInference: a.monetizationInference(monetCounts, ctaCounts),
	}
}

func (a *Analyzer) isShort(v models.VideoRecord) bool {
	return v.DurationSeconds <= a.cfg.ShortsThresholdSeconds
}

// cadenceInputs derives the week span and the dated counts feeding the
// per-week rates. The span has a floor of one day for same-day batches and a
// floor of one week when only a single dated video exists, so a lone upload
// never reads as "7 per week". With no dated videos at all, the whole sample
// counts against a one-week default span.
func (a *Analyzer) cadenceInputs(dated []models.VideoRecord, total int) (weeksSpan float64, datedCount, shortsDated, longsDated int) {
	if len(dated) == 0 {
		return 1, total, 0, 0
	}

	first := dated[0].PublishedAt
	last := dated[len(dated)-1].PublishedAt
	daysSpan := int(last.Sub(*first).Hours() / 24)
	if daysSpan == 0 {
		daysSpan = 1
	}
	if len(dated) == 1 {
		weeksSpan = 1
	} else {
		weeksSpan = math.Max(float64(daysSpan)/7, 1.0/7.0)
	}

	datedCount = len(dated)
	for _, v := range dated {
		if a.isShort(v) {
			shortsDated++
		}
	}
	longsDated = datedCount - shortsDated
	return weeksSpan, datedCount, shortsDated, longsDated
}

// topDecileEngagementPct averages (likes+comments)/views over the top
// ceil(10%) of videos by view count (at least one). Zero-view videos would
// make the ratio undefined, so they are excluded rather than zero-filled.
func (a *Analyzer) topDecileEngagementPct(videos []models.VideoRecord) float64 {
	nTop := int(math.Ceil(0.10 * float64(len(videos))))
	if nTop < 1 {
		nTop = 1
	}
	top := sortByViewsDesc(videos)
	if nTop > len(top) {
		nTop = len(top)
	}
	top = top[:nTop]

	var sum float64
	var n int
	for _, v := range top {
		if v.Views == 0 {
			continue
		}
		sum += float64(v.Likes+v.Comments) / float64(v.Views)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) * 100
}

// scanKeywords lower-cases each description once and counts substring
// presence against the CTA, monetization and community vocabularies. The
// third return value is the number of videos containing at least one
// community keyword.
func (a *Analyzer) scanKeywords(videos []models.VideoRecord) (cta, monet map[string]int, videosWithCommunity int) {
	cta = make(map[string]int)
	monet = make(map[string]int)
	for _, v := range videos {
		desc := strings.ToLower(v.Description)
		for _, kw := range a.cfg.CTAWords {
			if strings.Contains(desc, kw) {
				cta[kw]++
			}
		}
		for _, kw := range a.cfg.MonetWords {
			if strings.Contains(desc, kw) {
				monet[kw]++
			}
		}
		hasCommunity := false
		for _, kw := range a.cfg.CommunityWords {
			if strings.Contains(desc, kw) {
				hasCommunity = true
			}
		}
		if hasCommunity {
			videosWithCommunity++
		}
	}
	return cta, monet, videosWithCommunity
}

// extractTopics tokenizes all titles, drops stopwords and tokens shorter
// than three characters, and returns the 20 most frequent tokens (ties by
// first appearance) plus the unique-token ratio used by the quality score.
func (a *Analyzer) extractTopics(videos []models.VideoRecord) (topics []string, diversity float64) {
	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	totalTokens := 0

	for _, v := range videos {
		for _, tok := range titleToken.FindAllString(strings.ToLower(v.Title), -1) {
			if len(tok) <= 2 {
				continue
			}
			if _, stop := a.stopwords[tok]; stop {
				continue
			}
			if _, seen := freq[tok]; !seen {
				firstSeen[tok] = totalTokens
			}
			freq[tok]++
			totalTokens++
		}
	}

	ordered := make([]string, 0, len(freq))
	for tok := range freq {
		ordered = append(ordered, tok)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if freq[ordered[i]] != freq[ordered[j]] {
			return freq[ordered[i]] > freq[ordered[j]]
		}
		return firstSeen[ordered[i]] < firstSeen[ordered[j]]
	})
	if len(ordered) > 20 {
		ordered = ordered[:20]
	}

	denom := totalTokens
	if denom < 1 {
		denom = 1
	}
	return ordered, float64(len(freq)) / float64(denom)
}

func (a *Analyzer) qualityScore(longsCount, shortsCount int, avgRuntimeLong, avgRuntimeShorts, engagementRate, topicDiversity float64) float64 {
	var scoreRuntime float64
	if longsCount > 0 {
		scoreRuntime = clamp01(avgRuntimeLong / a.cfg.LongRuntimeBaselineSeconds)
	} else if shortsCount > 0 {
		// Shorts-only channels are measured against a shorts baseline
		// instead of being penalized for never reaching long-form length.
		scoreRuntime = clamp01(avgRuntimeShorts / a.cfg.ShortsRuntimeBaselineSeconds)
	}
	scoreEng := clamp01(engagementRate * 10)
	scoreTopic := clamp01(topicDiversity * 2)

	return round2((scoreRuntime*a.cfg.RuntimeWeight +
		scoreEng*a.cfg.EngagementWeight +
		scoreTopic*a.cfg.TopicWeight) * 10)
}

func (a *Analyzer) communityScore(commentsSum int64, videosWithCommunity, total int) float64 {
	avgComments := safeDiv(float64(commentsSum), float64(total))
	commentsScore := clamp01(avgComments / a.cfg.CommentsBaseline)

	denom := total
	if denom < 1 {
		denom = 1
	}
	presence := clamp01(float64(videosWithCommunity) / float64(denom))

	return round2((commentsScore*a.cfg.CommentsWeight +
		presence*a.cfg.CommunityPresenceWeight) * 10)
}

// monetizationInference classifies the channel's monetization signals: the
// top matched monetization keywords when any matched, a lighter-weight
// sponsorship classification when only CTA sponsor terms appeared, otherwise
// none.
func (a *Analyzer) monetizationInference(monet, cta map[string]int) string {
	if len(monet) > 0 {
		top := topKeywords(monet, a.cfg.MonetWords, 5)
		words := make([]string, len(top))
		for i, kc := range top {
			words[i] = kc.Keyword
		}
		return "Detected: " + strings.Join(words, ", ")
	}
	for kw, n := range cta {
		if n > 0 && strings.Contains(kw, "sponsor") {
			return "Sponsorship Mentions"
		}
	}
	return "None Detected"
}

// weeklyViewSeries buckets dated videos into ISO calendar weeks (Monday
// start, UTC) and returns summed views ordered chronologically, indexed
// 0..W-1. Gap weeks are not zero-filled; the index is positional.
func weeklyViewSeries(dated []models.VideoRecord) []float64 {
	if len(dated) == 0 {
		return nil
	}

	sums := make(map[time.Time]int64)
	for _, v := range dated {
		sums[weekStart(*v.PublishedAt)] += v.Views
	}

	weeks := make([]time.Time, 0, len(sums))
	for w := range sums {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	series := make([]float64, len(weeks))
	for i, w := range weeks {
		series[i] = float64(sums[w])
	}
	return series
}

// weekStart floors t to the Monday of its ISO week, midnight UTC.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// forecastViews projects total views over the next horizon weeks. With two
// or more weekly buckets it fits an ordinary-least-squares line over the
// finite non-negative buckets, projects the next horizon indices, clamps
// each projection to >= 0 and sums. A projection summing to <= 0 falls back
// to mean(last min(8, available) weeks) * horizon. A single bucket projects
// that week's views * horizon; no buckets means 0.
func forecastViews(weekly []float64, horizon int) float64 {
	switch len(weekly) {
	case 0:
		return 0
	case 1:
		v := weekly[0]
		if v <= 0 || !isFinite(v) {
			return 0
		}
		return v * float64(horizon)
	}

	var xs, ys []float64
	for i, v := range weekly {
		if !isFinite(v) || v < 0 {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v)
	}
	if len(xs) < 2 {
		return math.Max(0, mean(ys)*float64(horizon))
	}

	slope, intercept := olsFit(xs, ys)
	last := xs[len(xs)-1]
	var total float64
	for k := 1; k <= horizon; k++ {
		y := intercept + slope*(last+float64(k))
		if y > 0 {
			total += y
		}
	}
	if total <= 0 {
		recent := len(ys)
		if recent > 8 {
			recent = 8
		}
		total = math.Max(0, mean(ys[len(ys)-recent:])*float64(horizon))
	}
	return total
}

// olsFit returns the least-squares line for the given points. A degenerate x
// spread yields a flat line at the mean.
func olsFit(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	den := n*sumXX - sumX*sumX
	if den == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// sortByPublishedAt orders records by publish time ascending. Undated
// records sink to the end keeping their relative input order.
func sortByPublishedAt(videos []models.VideoRecord) []models.VideoRecord {
	out := make([]models.VideoRecord, len(videos))
	copy(out, videos)
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := out[i].PublishedAt, out[j].PublishedAt
		if vi == nil || vj == nil {
			return vj == nil && vi != nil
		}
		return vi.Before(*vj)
	})
	return out
}

func sortByViewsDesc(videos []models.VideoRecord) []models.VideoRecord {
	out := make([]models.VideoRecord, len(videos))
	copy(out, videos)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	return out
}

// topTitles collects up to n titles from the already view-ordered records
// matching the bucket predicate.
func topTitles(byViews []models.VideoRecord, n int, match func(models.VideoRecord) bool) []string {
	titles := make([]string, 0, n)
	for _, v := range byViews {
		if !match(v) {
			continue
		}
		titles = append(titles, v.Title)
		if len(titles) == n {
			break
		}
	}
	return titles
}

// topKeywords orders matched vocabulary words by count descending, ties by
// vocabulary order, truncated to n.
func topKeywords(counts map[string]int, vocab []string, n int) []models.KeywordCount {
	out := make([]models.KeywordCount, 0, len(counts))
	for _, kw := range vocab {
		if c, ok := counts[kw]; ok && c > 0 {
			out = append(out, models.KeywordCount{Keyword: kw, Count: c})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// safeDiv is the single zero-denominator guard: every ratio in the pipeline
// goes through it so no NaN or Inf can reach an emitted field.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	v := num / den
	if !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp01(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return math.Round(v*100) / 100
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
