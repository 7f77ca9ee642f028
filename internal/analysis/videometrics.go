package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

// minDaysSincePublish floors the publish age so very recent videos do not
// blow up the views-per-day rate (0.1 days ~ 2.4 hours).
const minDaysSincePublish = 0.1

// ComputeVideoMetrics derives the per-video export rows for one channel's
// records. Undated videos keep zero age-based fields; zero-view videos keep
// zero ratios.
func ComputeVideoMetrics(ch models.ChannelInfo, videos []models.VideoRecord, now time.Time) []models.VideoMetrics {
	rows := make([]models.VideoMetrics, 0, len(videos))
	for _, v := range videos {
		row := models.VideoMetrics{
			ChannelID:       ch.ID,
			ChannelTitle:    ch.Title,
			VideoID:         v.ID,
			Title:           v.Title,
			PublishedAt:     v.PublishedAt,
			DurationSeconds: v.DurationSeconds,
			Views:           v.Views,
			Likes:           v.Likes,
			Comments:        v.Comments,
			URL:             fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.ID),
		}

		if v.PublishedAt != nil {
			days := now.UTC().Sub(v.PublishedAt.UTC()).Hours() / 24
			if days < minDaysSincePublish {
				days = minDaysSincePublish
			}
			row.DaysSincePublish = round2(days)
			row.AvgViewsPerDay = round2(safeDiv(float64(v.Views), days))
		}

		// Per-view ratios are tiny; two decimals would flatten them to zero.
		row.LikeToViewRatio = round4(safeDiv(float64(v.Likes), float64(v.Views)))
		row.CommentToViewRatio = round4(safeDiv(float64(v.Comments), float64(v.Views)))
		row.EngagementRatePct = round2(safeDiv(float64(v.Likes+v.Comments), float64(v.Views)) * 100)

		rows = append(rows, row)
	}
	return rows
}

func round4(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return math.Round(v*10000) / 10000
}
