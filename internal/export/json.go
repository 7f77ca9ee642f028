package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"
)

// batchDocument is the top-level JSON export shape.
type batchDocument struct {
	Analyses []*models.ChannelAnalysis `json:"analyses"`
	Insights *models.InsightSummary    `json:"insights,omitempty"`
}

// WriteJSON writes the batch of analyses and the cross-channel insights as a
// single indented JSON document.
func WriteJSON(path string, analyses []*models.ChannelAnalysis, insights *models.InsightSummary) error {
	doc := batchDocument{Analyses: analyses, Insights: insights}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analyses: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}
