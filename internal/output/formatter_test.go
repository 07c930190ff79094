package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stellarraise/display/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestReport() *domain.CampaignReport {
	return &domain.CampaignReport{
		GeneratedAt: time.Date(2026, 2, 22, 10, 30, 0, 0, time.UTC),
		Locale:      "en-US",
		TotalRaised: "12,750.00 XLM",
		Active:      1,
		Failed:      1,
		Campaigns: []domain.CampaignSummary{
			{
				Title: "Solar", Status: domain.StatusActive,
				Raised: "12,500.00 XLM", RaisedCompact: "12.50K XLM",
				Goal: "50,000.00 XLM", GoalCompact: "50.00K XLM",
				Progress: "25.00%", Deadline: "Mar 6, 2026", DeadlineFull: "Mar 6, 2026, 10:30 AM",
				TimeLeft: "12 days left", Contributors: 1,
				Top: []domain.ContributorLine{{Address: "GALICE", Amount: "12,500.00 XLM", Share: "100.00%"}},
			},
			{
				Title: "Books, \"new\"", Status: domain.StatusFailed,
				Raised: "250.00 XLM", RaisedCompact: "250.00 XLM",
				Goal: "900.00 XLM", GoalCompact: "900.00 XLM",
				Progress: "27.78%", Deadline: "Feb 12, 2026", DeadlineFull: "Feb 12, 2026, 10:30 AM",
				TimeLeft: "Ended 10 days ago", Expired: true,
			},
		},
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "CAMPAIGN SUMMARY")
	assert.Contains(t, content, "12 days left")
	assert.Contains(t, content, "Ended 10 days ago")
	assert.Contains(t, content, "Top contributors to Solar:")
	assert.Contains(t, content, "GALICE  12,500.00 XLM (100.00%)")
	assert.Contains(t, content, "Total raised: 12,750.00 XLM")
	assert.Contains(t, content, "Active: 1  Successful: 0  Failed: 1")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][0])
	assert.Equal(t, []string{"Solar", "active", "12,500.00 XLM", "50,000.00 XLM", "25.00%", "Mar 6, 2026, 10:30 AM", "12 days left", "false", "1"}, rows[1])
	assert.Equal(t, "Books, \"new\"", rows[2][0], "quoting survives the round trip")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "12,750.00 XLM", decoded["total_raised"])
	campaigns := decoded["campaigns"].([]any)
	assert.Equal(t, "25.00%", campaigns[0].(map[string]any)["progress"])
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded domain.CampaignReport
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, buildTestReport().Campaigns, decoded.Campaigns)
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "<html lang=\"en-US\">")
	assert.Contains(t, content, "width: 25.00%")
	assert.Contains(t, content, "status-failed")
	assert.Contains(t, content, "Books, &#34;new&#34;")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(content), "</html>"))
}

func TestGetFormatterByName(t *testing.T) {
	tests := map[string]string{
		"console":     "console",
		" TEXT ":      "console",
		"yml":         "yaml",
		"json":        "json",
		"json-pretty": "json",
		"csv":         "csv",
		"html":        "html",
	}
	for in, want := range tests {
		f := GetFormatterByName(in)
		require.NotNil(t, f, in)
		assert.Equal(t, want, f.Name())
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestLookupUnsupported(t *testing.T) {
	_, err := Lookup("pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "console, csv, html, json, yaml")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, buildTestReport(), "json"))
	assert.True(t, json.Valid(buf.Bytes()))
	assert.Error(t, Render(&buf, buildTestReport(), "pdf"))
}

func TestWriteFormatted(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFormatted(CSVFormatter{}, buildTestReport(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "campaign_report_20260222_103000.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("Title,Status")))
}
