package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/getaway-cli/internal/model"
)

var fixedTime = time.Date(2025, 3, 7, 16, 5, 9, 0, time.UTC)

func sampleResult() *model.ResultSet {
	return &model.ResultSet{
		Source:  "Delhi",
		Outcome: model.OutcomeRanked,
		Places: []model.ScoredPlace{
			{
				Place:      model.Place{City: "Agra", State: "Uttar Pradesh", Name: "Taj Mahal", Rating: 4.6, Popularity: 2.5},
				DistanceKM: 178.06,
				Score:      0.772971,
			},
			{
				Place:      model.Place{City: "Jaipur", State: "Rajasthan", Name: "Amber Fort", Rating: 4.6, Popularity: 0.81},
				DistanceKM: 235.29,
				Score:      0.4972,
			},
		},
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Delhi_weekend_getaways_20250307_160509.txt", Filename("Delhi", fixedTime))
	assert.Equal(t, "Cooch_Behar_weekend_getaways_20250307_160509.txt", Filename("Cooch Behar", fixedTime))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), fixedTime))

	banner := "=============================================================================="
	rule := "------------------------------------------------------------------------------"
	want := banner + "\n" +
		"WEEKEND GETAWAY RECOMMENDATIONS FROM DELHI\n" +
		banner + "\n" +
		"Generated on: Friday, March 07, 2025 at 04:05:09 PM\n" +
		"Total Destinations Found: 2\n" +
		banner + "\n\n" +
		"#1 TAJ MAHAL\n" +
		rule + "\n" +
		"  Location   : Agra, Uttar Pradesh\n" +
		"  Distance   : 178.06 km\n" +
		"  Rating     : 4.6 / 5.0\n" +
		"  Popularity : 2.50 lakhs reviews\n" +
		"  Score      : 0.7730\n\n" +
		"#2 AMBER FORT\n" +
		rule + "\n" +
		"  Location   : Jaipur, Rajasthan\n" +
		"  Distance   : 235.29 km\n" +
		"  Rating     : 4.6 / 5.0\n" +
		"  Popularity : 0.81 lakhs reviews\n" +
		"  Score      : 0.4972\n\n" +
		banner + "\n" +
		"END OF REPORT\n" +
		banner + "\n"

	assert.Equal(t, want, buf.String())
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &model.ResultSet{Source: "Goa"}, fixedTime))
	assert.Contains(t, buf.String(), "Total Destinations Found: 0")
	assert.Contains(t, buf.String(), "No recommendations available")
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	w := NewWriter(dir, clockwork.NewFakeClockAt(fixedTime))

	path, err := w.Write(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Delhi_weekend_getaways_20250307_160509.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#1 TAJ MAHAL")
	assert.Contains(t, string(data), "Generated on: Friday, March 07, 2025 at 04:05:09 PM")
}

func TestWriter_SkipsEmptyResults(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, clockwork.NewFakeClockAt(fixedTime))

	for _, rs := range []*model.ResultSet{
		nil,
		{Source: "Delhi", Outcome: model.OutcomeNoMatches},
		{Source: "Atlantis", Outcome: model.OutcomeUnknownCity},
	} {
		_, err := w.Write(rs)
		assert.Error(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriter_DirIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewWriter(file, clockwork.NewFakeClockAt(fixedTime)).Write(sampleResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report: create output dir")
}
