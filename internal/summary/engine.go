// Package summary renders configured campaigns into display-ready reports.
package summary

import (
	"fmt"
	"sort"
	"time"

	"github.com/stellarraise/display/internal/config"
	"github.com/stellarraise/display/internal/domain"
	"github.com/stellarraise/display/pkg/amount"
	"github.com/stellarraise/display/pkg/dateutil"
)

// Engine builds campaign reports.
type Engine struct {
	Logger Logger
	// Now is read once per Build so every campaign in a report shares one instant.
	Now dateutil.Clock
}

// NewEngine creates an engine using the system clock and a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}, Now: time.Now}
}

// SetLogger replaces the engine's logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// Build renders every campaign in cfg.
func (e *Engine) Build(cfg *domain.Configuration) (*domain.CampaignReport, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil configuration")
	}
	loc, err := config.Location(cfg.Display)
	if err != nil {
		return nil, err
	}

	clock := e.Now
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	tf := dateutil.New(
		dateutil.WithClock(func() time.Time { return now }),
		dateutil.WithLocation(loc),
	)

	report := &domain.CampaignReport{
		GeneratedAt: now.In(loc),
		Locale:      dateutil.ResolveLocale(cfg.Display.Locale),
		Campaigns:   make([]domain.CampaignSummary, 0, len(cfg.Campaigns)),
	}

	var total amount.Stroops
	for i := range cfg.Campaigns {
		c := &cfg.Campaigns[i]
		s := e.summarize(c, cfg.Display, tf)
		report.Campaigns = append(report.Campaigns, s)

		switch s.Status {
		case domain.StatusActive:
			report.Active++
		case domain.StatusSuccessful:
			report.Successful++
		case domain.StatusFailed:
			report.Failed++
		}

		if symbolOf(c, cfg.Display) != displaySymbol(cfg.Display) {
			e.logger().Warnf("campaign %q raised in %s, excluded from the %s total", c.Title, c.Symbol, displaySymbol(cfg.Display))
			continue
		}
		total += c.TotalRaised
	}
	report.TotalRaised = amount.FormatCurrency(&total,
		amount.WithDecimals(cfg.Display.Decimals),
		amount.WithSymbol(cfg.Display.Symbol))

	e.logger().Infof("rendered %d campaigns (%d active, %d successful, %d failed)",
		len(report.Campaigns), report.Active, report.Successful, report.Failed)
	return report, nil
}

func (e *Engine) summarize(c *domain.Campaign, ds domain.DisplaySettings, tf *dateutil.Formatter) domain.CampaignSummary {
	sym := amount.WithSymbol(symbolOf(c, ds))
	dec := amount.WithDecimals(ds.Decimals)
	status := c.Status(tf.Now())

	s := domain.CampaignSummary{
		Title:         c.Title,
		Status:        status,
		Raised:        amount.FormatCurrency(&c.TotalRaised, dec, sym),
		RaisedCompact: amount.FormatCompact(&c.TotalRaised, sym),
		Goal:          amount.FormatCurrency(&c.Goal, dec, sym),
		GoalCompact:   amount.FormatCompact(&c.Goal, sym),
		Progress:      amount.FormatProgress(c.TotalRaised, c.Goal),
		Deadline:      tf.FormatDate(&c.Deadline, ds.Locale),
		DeadlineFull:  tf.FormatDateTime(&c.Deadline, ds.Locale),
		TimeLeft:      tf.FormatRelativeTime(&c.Deadline),
		Expired:       tf.IsExpired(&c.Deadline),
		Contributors:  len(c.Contributors),
		Top:           topContributors(c, ds.TopContributors, dec, sym),
	}
	e.logger().Debugf("campaign %q: %s of %s (%s), %s", c.Title, s.Raised, s.Goal, s.Progress, status)
	return s
}

// topContributors lists the n largest contributions, ties broken by address.
func topContributors(c *domain.Campaign, n int, opts ...amount.Option) []domain.ContributorLine {
	if n <= 0 || len(c.Contributors) == 0 {
		return nil
	}
	sorted := append([]domain.Contribution(nil), c.Contributors...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Amount != sorted[j].Amount {
			return sorted[i].Amount > sorted[j].Amount
		}
		return sorted[i].Address < sorted[j].Address
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	lines := make([]domain.ContributorLine, 0, len(sorted))
	for _, ct := range sorted {
		lines = append(lines, domain.ContributorLine{
			Address: ct.Address,
			Amount:  amount.FormatCurrency(&ct.Amount, opts...),
			Share:   amount.FormatProgress(ct.Amount, c.TotalRaised),
		})
	}
	return lines
}

func displaySymbol(ds domain.DisplaySettings) string {
	if ds.Symbol == "" {
		return amount.DefaultSymbol
	}
	return ds.Symbol
}

func symbolOf(c *domain.Campaign, ds domain.DisplaySettings) string {
	if c.Symbol != "" {
		return c.Symbol
	}
	return displaySymbol(ds)
}
