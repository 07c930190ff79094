package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"

	"github.com/stellarraise/display/internal/domain"
)

// HTMLFormatter produces a standalone HTML page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }
func (h HTMLFormatter) Ext() string  { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	// width turns a rendered percentage into a CSS width, trusting only digits and a dot.
	"width": func(progress string) template.CSS {
		v := strings.TrimSuffix(progress, "%")
		if v == "" || strings.Trim(v, "0123456789.") != "" {
			return "0%"
		}
		return template.CSS(v + "%")
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.CampaignReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
