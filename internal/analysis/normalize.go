package analysis

import (
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

// NormalizeVideo maps one raw API item onto a VideoRecord, substituting the
// documented defaults for anything absent or malformed: empty strings for
// text, nil for an unparseable publish timestamp, zero for counts and
// duration. It never fails.
func NormalizeVideo(item models.RawVideoItem) models.VideoRecord {
	return models.VideoRecord{
		ID:              item.ID,
		Title:           item.Title,
		Description:     item.Description,
		PublishedAt:     ParseTimestamp(item.PublishedAt),
		DurationSeconds: ParseDuration(item.Duration),
		Views:           ParseCount(item.ViewCount),
		Likes:           ParseCount(item.LikeCount),
		Comments:        ParseCount(item.CommentCount),
	}
}

// NormalizeVideos converts a raw batch in input order.
func NormalizeVideos(items []models.RawVideoItem) []models.VideoRecord {
	records := make([]models.VideoRecord, 0, len(items))
	for _, item := range items {
		records = append(records, NormalizeVideo(item))
	}
	return records
}
