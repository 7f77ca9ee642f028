// Package export writes analysis results to disk as CSV and JSON files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

// utf8BOM lets spreadsheet tools detect UTF-8 when opening the file.
const utf8BOM = "\uFEFF"

// channelCSVHeaders are the human-readable column names, in export order.
var channelCSVHeaders = []string{
	"Channel ID",
	"Channel Name",
	"Subscribers",
	"Total Channel Views",
	"Videos Analyzed",
	"Average Uploads Per Week",
	"Long Videos Per Week",
	"Shorts Per Week",
	"Average Long Video Duration (seconds)",
	"Average Shorts Duration (seconds)",
	"Engagement % (Top Videos)",
	"Top 5 Long Videos",
	"Top 5 Shorts",
	"Call-to-Action Keywords",
	"Top Topics",
	"Estimated Views (6 Months)",
	"Estimated New Subscribers (6 Months)",
	"Quality Score (0-10)",
	"Community Score (0-10)",
	"Monetization Strategy",
	"Average Views Per Video",
	"Overall Engagement Rate %",
}

// WriteChannelCSV writes one row per channel analysis. Structured fields
// (title lists, keyword counts) are serialized as JSON inside their cells so
// the file stays one row per channel.
func WriteChannelCSV(path string, analyses []*models.ChannelAnalysis) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(channelCSVHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, a := range analyses {
		subscribers := ""
		if a.Subscribers != nil {
			subscribers = strconv.FormatInt(*a.Subscribers, 10)
		}
		row := []string{
			a.ChannelID,
			a.ChannelTitle,
			subscribers,
			strconv.FormatInt(a.ChannelTotalViews, 10),
			strconv.Itoa(a.SampleVideosAnalyzed),
			formatFloat(a.AvgUploadsPerWeek),
			formatFloat(a.AvgUploadsLongPerWeek),
			formatFloat(a.AvgUploadsShortsPerWeek),
			formatFloat(a.AvgRuntimeLongSeconds),
			formatFloat(a.AvgRuntimeShortsSeconds),
			formatFloat(a.EngagementPctPopularVideos),
			jsonCell(a.Top5LongTitles),
			jsonCell(a.Top5ShortsTitles),
			jsonCell(a.CTACounts),
			jsonCell(a.TopTopics),
			strconv.FormatInt(a.EstViewsNext6Months, 10),
			strconv.FormatInt(a.EstSubsNext6Months, 10),
			formatFloat(a.QualityScore),
			formatFloat(a.CommunityScore),
			a.MonetizationInference,
			formatFloat(a.AvgViewsSample),
			formatFloat(a.EngagementRateOverallPct),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", a.ChannelID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

var videoCSVHeaders = []string{
	"Channel ID",
	"Channel Name",
	"Video ID",
	"Title",
	"Published At",
	"Duration (seconds)",
	"Views",
	"Likes",
	"Comments",
	"Days Since Publish",
	"Average Views Per Day",
	"Like/View Ratio",
	"Comment/View Ratio",
	"Engagement Rate %",
	"URL",
}

// WriteVideoCSV writes one row per video with the derived per-video metrics.
func WriteVideoCSV(path string, rows []models.VideoMetrics) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(videoCSVHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, v := range rows {
		published := ""
		if v.PublishedAt != nil {
			published = v.PublishedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			v.ChannelID,
			v.ChannelTitle,
			v.VideoID,
			v.Title,
			published,
			strconv.Itoa(v.DurationSeconds),
			strconv.FormatInt(v.Views, 10),
			strconv.FormatInt(v.Likes, 10),
			strconv.FormatInt(v.Comments, 10),
			formatFloat(v.DaysSincePublish),
			formatFloat(v.AvgViewsPerDay),
			strconv.FormatFloat(v.LikeToViewRatio, 'f', 4, 64),
			strconv.FormatFloat(v.CommentToViewRatio, 'f', 4, 64),
			formatFloat(v.EngagementRatePct),
			v.URL,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", v.VideoID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// jsonCell serializes a structured value for embedding in a single CSV cell.
func jsonCell(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips characters that are unsafe in file names and
// collapses runs of them into single underscores.
func SanitizeFilename(name string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(name, "_")
	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		return "export"
	}
	return cleaned
}

// DefaultFilename builds a timestamped export file name like
// "youtube_analysis_2024-03-01_09-00.csv".
func DefaultFilename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(prefix), now.Format("2006-01-02_15-04"), ext)
}
