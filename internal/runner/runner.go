// Package runner orchestrates one analysis batch: resolve channels, fetch
// and normalize their videos, compute metrics, aggregate insights and hand
// the results to the export and report collaborators.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/analysis"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/config"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/export"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/monitoring"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/report"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/youtube"
)

// Fetcher is the upstream collaborator boundary; tests substitute a fake.
type Fetcher interface {
	ResolveChannel(ctx context.Context, identifier string) (*models.ChannelInfo, error)
	FetchUploads(ctx context.Context, playlistID string, maxVideos int) ([]string, error)
	FetchVideoDetails(ctx context.Context, ids []string) ([]models.RawVideoItem, error)
}

// Runner is the analysis agent: one instance per process, one RunOnce per
// batch.
type Runner struct {
	cfg         *config.Config
	identifiers []string
	selection   analysis.RangeSelection

	fetcher  Fetcher
	analyzer *analysis.Analyzer
	monitor  *monitoring.Monitor
	narrator *report.Narrator
	mailer   *report.Mailer

	now func() time.Time
}

func New(cfg *config.Config, identifiers []string) *Runner {
	return &Runner{
		cfg:         cfg,
		identifiers: identifiers,
		selection: analysis.RangeSelection{
			Period: analysis.Period(cfg.Analysis.Period),
			From:   cfg.Analysis.FromDate,
			To:     cfg.Analysis.ToDate,
		},
		analyzer: analysis.NewAnalyzer(analyzerConfig(&cfg.Analysis)),
		monitor:  monitoring.NewMonitor(),
		now:      time.Now,
	}
}

func (r *Runner) Name() string {
	return "youtube-analyzer"
}

// Initialize builds the collaborators that need credentials. The fetcher is
// only constructed when absent so tests can inject a fake beforehand.
func (r *Runner) Initialize(ctx context.Context) error {
	if len(r.identifiers) == 0 {
		return fmt.Errorf("no channels to analyze: pass identifiers or set channels in the config")
	}

	if r.fetcher == nil {
		if !r.cfg.HasCredentials() {
			return fmt.Errorf("no YouTube credentials configured")
		}
		client, err := youtube.NewClient(ctx, &r.cfg.YouTube)
		if err != nil {
			return fmt.Errorf("failed to initialize YouTube client: %w", err)
		}
		r.fetcher = client
	}

	if r.cfg.AI.GeminiAPIKey != "" && r.narrator == nil {
		narrator, err := report.NewNarrator(&r.cfg.AI)
		if err != nil {
			log.Printf("Warning: AI narrator unavailable: %v", err)
		} else {
			r.narrator = narrator
		}
	}

	if r.cfg.EmailConfigured() && r.mailer == nil {
		r.mailer = report.NewMailer(&r.cfg.Email)
	}

	return nil
}

// RunOnce analyzes every configured channel. A channel that cannot be
// resolved or analyzed is skipped with a logged reason; the run only fails
// when nothing could be analyzed or an export could not be written.
func (r *Runner) RunOnce(ctx context.Context) error {
	start := r.now()
	log.Printf("Analyzing %d channel(s)...", len(r.identifiers))

	var (
		analyses    []*models.ChannelAnalysis
		videoRows   []models.VideoMetrics
		skipReasons []string
	)

	for _, raw := range r.identifiers {
		identifier := analysis.ExtractChannelIdentifier(raw)

		a, rows, err := r.analyzeOne(ctx, identifier)
		if err != nil {
			reason := fmt.Sprintf("%s: %v", identifier, err)
			log.Printf("Skipping channel %s", reason)
			skipReasons = append(skipReasons, reason)
			continue
		}

		log.Printf("Analyzed %s: %d videos, %.2f uploads/week, quality %.1f/10",
			a.ChannelTitle, a.SampleVideosAnalyzed, a.AvgUploadsPerWeek, a.QualityScore)
		analyses = append(analyses, a)
		videoRows = append(videoRows, rows...)
	}

	if len(analyses) == 0 {
		err := fmt.Errorf("no channels could be analyzed (%d skipped)", len(skipReasons))
		r.monitor.RecordCriticalFailure(err, time.Since(start))
		return err
	}

	values := make([]models.ChannelAnalysis, len(analyses))
	for i, a := range analyses {
		values[i] = *a
	}
	insights := analysis.AggregateInsights(values)
	for _, s := range insights.Suggestions {
		log.Printf("Insight: %s", s)
	}

	exportPaths, err := r.writeExports(analyses, insights, videoRows)
	if err != nil {
		r.monitor.RecordCriticalFailure(fmt.Errorf("export failed: %w", err), time.Since(start))
		return fmt.Errorf("export failed: %w", err)
	}
	for _, p := range exportPaths {
		log.Printf("Exported %s", p)
	}

	rep := &models.RunReport{
		Date:        start,
		Analyzed:    len(analyses),
		Skipped:     len(skipReasons),
		SkipReasons: skipReasons,
		Insights:    insights,
		ExportPaths: exportPaths,
	}

	if r.narrator != nil {
		narrative, err := r.narrator.Narrate(ctx, insights, analyses)
		if err != nil {
			r.monitor.RecordPartialFailure(fmt.Errorf("narrative generation failed: %w", err), time.Since(start))
		} else {
			rep.Narrative = narrative
		}
	}

	if r.mailer != nil {
		if err := r.mailer.SendReport(rep); err != nil {
			r.monitor.RecordPartialFailure(fmt.Errorf("email send failed: %w", err), time.Since(start))
		} else {
			log.Printf("Report emailed to %s", r.cfg.Email.ToEmail)
		}
	}

	summary := fmt.Sprintf("%d channel(s) analyzed, %d skipped", len(analyses), len(skipReasons))
	r.monitor.RecordSuccess(summary, time.Since(start))
	return nil
}

func (r *Runner) analyzeOne(ctx context.Context, identifier string) (*models.ChannelAnalysis, []models.VideoMetrics, error) {
	info, err := r.fetcher.ResolveChannel(ctx, identifier)
	if err != nil {
		if errors.Is(err, youtube.ErrChannelNotFound) {
			return nil, nil, fmt.Errorf("channel not found")
		}
		return nil, nil, fmt.Errorf("failed to resolve channel: %w", err)
	}

	ids, err := r.fetcher.FetchUploads(ctx, info.UploadsPlaylist, r.cfg.YouTube.MaxVideosPerChannel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("channel has no uploads")
	}

	items, err := r.fetcher.FetchVideoDetails(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch video details: %w", err)
	}

	videos := analysis.NormalizeVideos(items)
	filtered, warnings := analysis.FilterByRange(videos, r.selection, r.now())
	for _, w := range warnings {
		log.Printf("Warning for %s: %s", identifier, w)
	}

	a := r.analyzer.AnalyzeChannel(*info, filtered)
	if a == nil {
		return nil, nil, fmt.Errorf("no videos in the selected date range")
	}

	var rows []models.VideoMetrics
	if r.cfg.Export.PerVideo {
		rows = analysis.ComputeVideoMetrics(*info, filtered, r.now())
	}
	return a, rows, nil
}

func (r *Runner) writeExports(analyses []*models.ChannelAnalysis, insights *models.InsightSummary, videoRows []models.VideoMetrics) ([]string, error) {
	outDir := r.cfg.Export.OutputDir
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	now := r.now()
	format := strings.ToLower(r.cfg.Export.Format)
	var paths []string

	if format == "csv" || format == "both" {
		path := filepath.Join(outDir, export.DefaultFilename("youtube_analysis", "csv", now))
		if err := export.WriteChannelCSV(path, analyses); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	if format == "json" || format == "both" {
		path := filepath.Join(outDir, export.DefaultFilename("youtube_analysis", "json", now))
		if err := export.WriteJSON(path, analyses, insights); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	if r.cfg.Export.PerVideo && len(videoRows) > 0 {
		path := filepath.Join(outDir, export.DefaultFilename("youtube_videos", "csv", now))
		if err := export.WriteVideoCSV(path, videoRows); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// analyzerConfig merges the optional config overrides onto the defaults.
func analyzerConfig(a *config.AnalysisConfig) analysis.Config {
	cfg := analysis.DefaultConfig()
	if a.ShortsThresholdSeconds > 0 {
		cfg.ShortsThresholdSeconds = a.ShortsThresholdSeconds
	}
	if a.ForecastWeeks > 0 {
		cfg.ForecastWeeks = a.ForecastWeeks
	}
	if a.SubsConversionRate > 0 {
		cfg.SubsConversionRate = a.SubsConversionRate
	}
	if a.RuntimeWeight > 0 {
		cfg.RuntimeWeight = a.RuntimeWeight
	}
	if a.EngagementWeight > 0 {
		cfg.EngagementWeight = a.EngagementWeight
	}
	if a.TopicWeight > 0 {
		cfg.TopicWeight = a.TopicWeight
	}
	if a.CommentsWeight > 0 {
		cfg.CommentsWeight = a.CommentsWeight
	}
	if a.CommunityWeight > 0 {
		cfg.CommunityPresenceWeight = a.CommunityWeight
	}
	return cfg
}
