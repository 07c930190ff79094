package output

import (
	"encoding/json"

	"github.com/stellarraise/display/internal/domain"
)

// JSONFormatter serializes the campaign report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }
func (j JSONFormatter) Ext() string  { return "json" }

func (j JSONFormatter) Format(report *domain.CampaignReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
