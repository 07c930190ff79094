package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stellarraise/display/internal/domain"
	"github.com/stellarraise/display/pkg/amount"
	"github.com/stellarraise/display/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// DefaultTopContributors is how many contributors a summary lists when unset.
const DefaultTopContributors = 3

// InputParser handles parsing of campaign display files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// DefaultDisplaySettings returns the settings used for keys a file leaves out.
func DefaultDisplaySettings() domain.DisplaySettings {
	return domain.DisplaySettings{
		Symbol:          amount.DefaultSymbol,
		Decimals:        amount.DefaultDecimals,
		Locale:          dateutil.DefaultLocale,
		TopContributors: DefaultTopContributors,
	}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML document. Keys missing from the
// display block keep their defaults.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{Display: DefaultDisplaySettings()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validate.Struct(&config.Display); err != nil {
		return fmt.Errorf("display settings: %w", describe(err))
	}

	if len(config.Campaigns) == 0 {
		return fmt.Errorf("no campaigns provided")
	}

	seen := make(map[string]int, len(config.Campaigns))
	for i := range config.Campaigns {
		c := &config.Campaigns[i]
		if err := ip.validateCampaign(c); err != nil {
			return fmt.Errorf("campaign %d (%q) validation failed: %w", i, c.Title, err)
		}
		if prev, dup := seen[c.Title]; dup {
			return fmt.Errorf("campaign %d duplicates the title of campaign %d: %q", i, prev, c.Title)
		}
		seen[c.Title] = i
	}

	return nil
}

// validateCampaign validates a single campaign
func (ip *InputParser) validateCampaign(c *domain.Campaign) error {
	if err := ip.validate.Struct(c); err != nil {
		return describe(err)
	}
	return c.CheckConsistency()
}

// Location resolves the configured timezone. An empty timezone means time.Local.
func Location(s domain.DisplaySettings) (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

// CreateExampleConfiguration builds a sample file with one campaign in each phase relative to now.
func (ip *InputParser) CreateExampleConfiguration(now time.Time) *domain.Configuration {
	day := 24 * time.Hour
	return &domain.Configuration{
		Display: DefaultDisplaySettings(),
		Campaigns: []domain.Campaign{
			{
				Title:       "Community Solar Array",
				Description: "Rooftop panels for the neighborhood center",
				Creator:     "GCREATORSOLAR",
				Token:       "CTOKENXLM",
				Goal:        50_000 * amount.Scale,
				Deadline:    dateutil.FromTime(now.Add(12 * day)),
				TotalRaised: 12_500 * amount.Scale,
				Contributors: []domain.Contribution{
					{Address: "GALICE", Amount: 10_000 * amount.Scale},
					{Address: "GBOB", Amount: 2_500 * amount.Scale},
				},
			},
			{
				Title:       "Open Source Wallet Audit",
				Description: "Independent security review",
				Creator:     "GCREATORAUDIT",
				Token:       "CTOKENXLM",
				Goal:        2_000_000 * amount.Scale,
				Deadline:    dateutil.FromTime(now.Add(-3 * day)),
				TotalRaised: 2_150_000 * amount.Scale,
			},
			{
				Title:       "Library Book Drive",
				Description: "New titles for the school library",
				Creator:     "GCREATORBOOKS",
				Token:       "CTOKENXLM",
				Goal:        900 * amount.Scale,
				Deadline:    dateutil.FromTime(now.Add(-10 * day)),
				TotalRaised: 250 * amount.Scale,
			},
		},
	}
}

// WriteExample marshals an example configuration to filename.
func (ip *InputParser) WriteExample(filename string, now time.Time) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration(now))
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
