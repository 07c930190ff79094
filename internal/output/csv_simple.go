package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/stellarraise/display/internal/domain"
)

// CSVFormatter implements the summary CSV output (one row per campaign).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }
func (c CSVFormatter) Ext() string  { return "csv" }

func (c CSVFormatter) Format(report *domain.CampaignReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Title", "Status", "Raised", "Goal", "Progress", "Deadline", "TimeLeft", "Expired", "Contributors"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range report.Campaigns {
		row := []string{
			s.Title,
			string(s.Status),
			s.Raised,
			s.Goal,
			s.Progress,
			s.DeadlineFull,
			s.TimeLeft,
			strconv.FormatBool(s.Expired),
			strconv.Itoa(s.Contributors),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
