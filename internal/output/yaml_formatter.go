package output

import (
	"github.com/stellarraise/display/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the campaign report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }
func (y YAMLFormatter) Ext() string  { return "yaml" }

func (y YAMLFormatter) Format(report *domain.CampaignReport) ([]byte, error) {
	return yaml.Marshal(report)
}
