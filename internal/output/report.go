package output

import (
	"fmt"
	"io"

	"github.com/stellarraise/display/internal/domain"
)

// Render formats report by name and writes it to w.
func Render(w io.Writer, report *domain.CampaignReport, format string) error {
	f, err := Lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
