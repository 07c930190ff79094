package domain

import (
	"errors"
	"time"
)

// ErrInconsistentTotal marks a campaign whose contributor list disagrees with its total.
var ErrInconsistentTotal = errors.New("inconsistent campaign total")

// DisplaySettings controls how amounts and dates are rendered.
type DisplaySettings struct {
	Symbol   string `yaml:"symbol" json:"symbol"`
	Decimals int    `yaml:"decimals" json:"decimals" validate:"gte=0,lte=20"`
	Locale   string `yaml:"locale" json:"locale"`
	Timezone string `yaml:"timezone" json:"timezone" validate:"omitempty,timezone"`
	// TopContributors limits how many contributors each summary lists.
	TopContributors int `yaml:"top_contributors" json:"top_contributors" validate:"gte=0"`
}

// Configuration is the root of a campaign display file.
type Configuration struct {
	Display   DisplaySettings `yaml:"display" json:"display"`
	Campaigns []Campaign      `yaml:"campaigns" json:"campaigns"`
}

// ContributorLine is one rendered contributor entry.
type ContributorLine struct {
	Address string `json:"address" yaml:"address"`
	Amount  string `json:"amount" yaml:"amount"`
	Share   string `json:"share" yaml:"share"`
}

// CampaignSummary holds the display strings for one campaign.
type CampaignSummary struct {
	Title         string            `json:"title" yaml:"title"`
	Status        Status            `json:"status" yaml:"status"`
	Raised        string            `json:"raised" yaml:"raised"`
	RaisedCompact string            `json:"raised_compact" yaml:"raised_compact"`
	Goal          string            `json:"goal" yaml:"goal"`
	GoalCompact   string            `json:"goal_compact" yaml:"goal_compact"`
	Progress      string            `json:"progress" yaml:"progress"`
	Deadline      string            `json:"deadline" yaml:"deadline"`
	DeadlineFull  string            `json:"deadline_full" yaml:"deadline_full"`
	TimeLeft      string            `json:"time_left" yaml:"time_left"`
	Expired       bool              `json:"expired" yaml:"expired"`
	Contributors  int               `json:"contributors" yaml:"contributors"`
	Top           []ContributorLine `json:"top,omitempty" yaml:"top,omitempty"`
}

// CampaignReport is the rendered view of every configured campaign.
type CampaignReport struct {
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Locale      string            `json:"locale" yaml:"locale"`
	Campaigns   []CampaignSummary `json:"campaigns" yaml:"campaigns"`
	TotalRaised string            `json:"total_raised" yaml:"total_raised"`
	Active      int               `json:"active" yaml:"active"`
	Successful  int               `json:"successful" yaml:"successful"`
	Failed      int               `json:"failed" yaml:"failed"`
}
