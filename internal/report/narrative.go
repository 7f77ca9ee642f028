// Package report turns finished batch results into human-facing output: an
// optional AI-written narrative and an HTML email digest.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/config"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"

	"google.golang.org/genai"
)

// Narrator asks Gemini for a short prose summary of a batch run. It is an
// optional collaborator; callers treat its errors as non-fatal.
type Narrator struct {
	client *genai.Client
	model  string
}

func NewNarrator(cfg *config.AIConfig) (*Narrator, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Narrator{client: client, model: cfg.Model}, nil
}

// Narrate produces a few paragraphs of plain prose about the batch. Returns
// an error rather than a partial narrative when the model gives nothing back.
func (n *Narrator) Narrate(ctx context.Context, insights *models.InsightSummary, analyses []*models.ChannelAnalysis) (string, error) {
	prompt := buildNarrativePrompt(insights, analyses)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := n.client.Models.GenerateContent(ctx, n.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate narrative: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("empty narrative response from model")
	}
	return text, nil
}

func buildNarrativePrompt(insights *models.InsightSummary, analyses []*models.ChannelAnalysis) string {
	var b strings.Builder
	b.WriteString("You are an analyst writing a short digest of YouTube channel metrics.\n")
	b.WriteString("Write 2-3 plain prose paragraphs summarizing the batch below. ")
	b.WriteString("Mention notable channels, posting cadence, and the cross-channel suggestions. ")
	b.WriteString("No markdown, no bullet points.\n\nCHANNELS:\n")

	for _, a := range analyses {
		subs := "hidden"
		if a.Subscribers != nil {
			subs = fmt.Sprintf("%d", *a.Subscribers)
		}
		fmt.Fprintf(&b, "- %s: %d videos analyzed, %.2f uploads/week (%.2f shorts), avg views %.0f, engagement %.2f%%, quality %.1f/10, subscribers %s, monetization: %s\n",
			a.ChannelTitle, a.SampleVideosAnalyzed, a.AvgUploadsPerWeek,
			a.AvgUploadsShortsPerWeek, a.AvgViewsSample, a.EngagementRateOverallPct,
			a.QualityScore, subs, a.MonetizationInference)
	}

	if insights != nil {
		fmt.Fprintf(&b, "\nCROSS-CHANNEL: median shorts ratio %.2f across %d channels.\n",
			insights.MedianShortsRatio, insights.ChannelsAnalyzed)
		for _, s := range insights.Suggestions {
			fmt.Fprintf(&b, "Suggestion: %s\n", s)
		}
		if len(insights.TopOverallTopics) > 0 {
			topics := make([]string, 0, len(insights.TopOverallTopics))
			for _, t := range insights.TopOverallTopics {
				topics = append(topics, fmt.Sprintf("%s (%d)", t.Topic, t.Count))
			}
			fmt.Fprintf(&b, "Top topics: %s\n", strings.Join(topics, ", "))
		}
	}

	return b.String()
}
