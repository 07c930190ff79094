package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/stellarraise/display/pkg/amount"
	"github.com/stellarraise/display/pkg/dateutil"
)

// Status is the lifecycle phase of a crowdfunding campaign.
type Status string

const (
	// StatusActive campaigns accept contributions until the deadline.
	StatusActive Status = "active"
	// StatusSuccessful campaigns met their goal; the creator may withdraw.
	StatusSuccessful Status = "successful"
	// StatusFailed campaigns missed their goal; contributors are refunded.
	StatusFailed Status = "failed"
)

// Label returns a capitalized display label.
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Contribution is one contributor's running total.
type Contribution struct {
	Address string         `yaml:"address" json:"address" validate:"required"`
	Amount  amount.Stroops `yaml:"amount" json:"amount" validate:"gt=0"`
}

// Campaign mirrors the on-chain crowdfunding contract state needed for display.
type Campaign struct {
	Title        string             `yaml:"title" json:"title" validate:"required"`
	Description  string             `yaml:"description" json:"description" validate:"required"`
	Creator      string             `yaml:"creator" json:"creator" validate:"required"`
	Token        string             `yaml:"token" json:"token" validate:"required"`
	Symbol       string             `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Goal         amount.Stroops     `yaml:"goal" json:"goal" validate:"gt=0"`
	Deadline     dateutil.Timestamp `yaml:"deadline" json:"deadline" validate:"gt=0"`
	TotalRaised  amount.Stroops     `yaml:"total_raised" json:"total_raised" validate:"gte=0"`
	Contributors []Contribution     `yaml:"contributors,omitempty" json:"contributors,omitempty" validate:"omitempty,dive"`
}

// Status derives the campaign phase at now. The deadline itself is still
// inside the contribution window.
func (c *Campaign) Status(now time.Time) Status {
	if !c.Deadline.PassedAt(now) {
		return StatusActive
	}
	if c.TotalRaised >= c.Goal {
		return StatusSuccessful
	}
	return StatusFailed
}

// ContributionTotal sums the recorded contributions.
func (c *Campaign) ContributionTotal() amount.Stroops {
	var total amount.Stroops
	for _, ct := range c.Contributors {
		total += ct.Amount
	}
	return total
}

// CheckConsistency reports a mismatch between TotalRaised and the listed
// contributions. Campaigns without a contributor list are not checked.
func (c *Campaign) CheckConsistency() error {
	if len(c.Contributors) == 0 {
		return nil
	}
	if sum := c.ContributionTotal(); sum != c.TotalRaised {
		return fmt.Errorf("%w: contributions sum to %d, total_raised is %d", ErrInconsistentTotal, sum, c.TotalRaised)
	}
	return nil
}
