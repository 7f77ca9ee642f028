package models

import "time"

// RawVideoItem is the wire-shaped video record handed over by the fetch
// collaborator. Count fields keep the API's string encoding; an empty string
// means the field was absent from the response. Normalization into a
// VideoRecord owns all defaulting.
type RawVideoItem struct {
	ID           string
	Title        string
	Description  string
	PublishedAt  string
	Duration     string
	ViewCount    string
	LikeCount    string
	CommentCount string
}

// VideoRecord is one normalized video. Built once per raw API item and
// immutable afterwards; it only lives for the duration of one analysis run.
type VideoRecord struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	DurationSeconds int        `json:"duration_seconds"`
	Views           int64      `json:"views"`
	Likes           int64      `json:"likes"`
	Comments        int64      `json:"comments"`
}

// ChannelInfo carries channel identity and the totals the API reports.
// Subscribers is nil when the channel hides its subscriber count.
type ChannelInfo struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Subscribers     *int64 `json:"subscribers"`
	TotalViews      int64  `json:"total_views"`
	UploadsPlaylist string `json:"-"`
}

// VideoMetrics is one row of the per-video export: the raw counts plus the
// derived per-video ratios. Ratio fields are zero when views are zero.
type VideoMetrics struct {
	ChannelID          string     `json:"channel_id"`
	ChannelTitle       string     `json:"channel_title"`
	VideoID            string     `json:"video_id"`
	Title              string     `json:"title"`
	PublishedAt        *time.Time `json:"published_at,omitempty"`
	DurationSeconds    int        `json:"duration_seconds"`
	Views              int64      `json:"views"`
	Likes              int64      `json:"likes"`
	Comments           int64      `json:"comments"`
	DaysSincePublish   float64    `json:"days_since_publish"`
	AvgViewsPerDay     float64    `json:"avg_views_per_day"`
	LikeToViewRatio    float64    `json:"like_to_view_ratio"`
	CommentToViewRatio float64    `json:"comment_to_view_ratio"`
	EngagementRatePct  float64    `json:"engagement_rate_pct"`
	URL                string     `json:"url"`
}
