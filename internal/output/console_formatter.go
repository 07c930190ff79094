package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/stellarraise/display/internal/domain"
)

// ConsoleFormatter renders an aligned plain-text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(report *domain.CampaignReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CAMPAIGN SUMMARY")
	fmt.Fprintln(&buf, "================================")

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tSTATUS\tRAISED\tGOAL\tPROGRESS\tDEADLINE\tTIME LEFT")
	for _, s := range report.Campaigns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Title, s.Status.Label(), s.RaisedCompact, s.GoalCompact, s.Progress, s.Deadline, s.TimeLeft)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	for _, s := range report.Campaigns {
		if len(s.Top) == 0 {
			continue
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Top contributors to %s:\n", s.Title)
		for _, line := range s.Top {
			fmt.Fprintf(&buf, "  %s  %s (%s)\n", line.Address, line.Amount, line.Share)
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total raised: %s\n", report.TotalRaised)
	fmt.Fprintf(&buf, "Active: %d  Successful: %d  Failed: %d\n", report.Active, report.Successful, report.Failed)
	return buf.Bytes(), nil
}
