package models

import "time"

// KeywordCount is one keyword with its accumulated occurrence count.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TopicCount is one title token with its batch-wide frequency.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// ChannelAnalysis is the full metric record for one channel, produced by
// exactly one aggregator call and immutable afterwards. Every numeric field
// is finite and non-negative.
type ChannelAnalysis struct {
	ChannelID            string `json:"channel_id"`
	ChannelTitle         string `json:"channel_title"`
	Subscribers          *int64 `json:"subscribers"`
	ChannelTotalViews    int64  `json:"channel_total_views"`
	SampleVideosAnalyzed int    `json:"sample_videos_analyzed"`

	AvgUploadsPerWeek       float64 `json:"avg_uploads_per_week"`
	AvgUploadsLongPerWeek   float64 `json:"avg_uploads_long_per_week"`
	AvgUploadsShortsPerWeek float64 `json:"avg_uploads_shorts_per_week"`

	AvgRuntimeLongSeconds   float64 `json:"avg_runtime_long_seconds"`
	AvgRuntimeShortsSeconds float64 `json:"avg_runtime_shorts_seconds"`

	EngagementPctPopularVideos float64 `json:"engagement_pct_popular_videos"`
	AvgViewsSample             float64 `json:"avg_views_sample"`
	EngagementRateOverallPct   float64 `json:"engagement_rate_overall_pct"`

	Top5LongTitles   []string       `json:"top_5_long_titles"`
	Top5ShortsTitles []string       `json:"top_5_shorts_titles"`
	CTACounts        []KeywordCount `json:"cta_counts"`
	TopTopics        []string       `json:"top_topics"`

	EstViewsNext6Months int64 `json:"est_views_next_6_months"`
	EstSubsNext6Months  int64 `json:"est_subs_next_6_months"`

	QualityScore   float64 `json:"quality_score_0_10"`
	CommunityScore float64 `json:"community_score_0_10"`

	MonetizationInference string `json:"monetization_inference"`
}

// InsightSummary is the cross-channel view derived from a batch of analyses.
type InsightSummary struct {
	ChannelsAnalyzed  int          `json:"channels_analyzed"`
	MedianShortsRatio float64      `json:"median_shorts_ratio"`
	TopOverallTopics  []TopicCount `json:"top_overall_topics"`
	Suggestions       []string     `json:"suggestions"`
}

// RunReport summarizes one completed batch run for reporting collaborators.
type RunReport struct {
	Date        time.Time       `json:"date"`
	Analyzed    int             `json:"analyzed"`
	Skipped     int             `json:"skipped"`
	SkipReasons []string        `json:"skip_reasons,omitempty"`
	Insights    *InsightSummary `json:"insights,omitempty"`
	Narrative   string          `json:"narrative,omitempty"`
	ExportPaths []string        `json:"export_paths,omitempty"`
}
