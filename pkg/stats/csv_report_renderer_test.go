package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvReportRendererImpl_RenderReport(t *testing.T) {
	renderer := NewCsvReportRenderer()
	report := Report{
		Weeks: []WeeklyTotal{
			{Week: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), Estimated: 6.7, Actual: 12.0, Difference: 5.3},
			{Week: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), Estimated: 6.7, Actual: 0.0, Difference: -6.7},
		},
	}

	got, err := renderer.RenderReport(report)

	require.NoError(t, err)
	want := "Week,Estimated Hours,Actual Hours,Difference\n" +
		"2025-01-06,6.7,12.0,5.3\n" +
		"2025-01-13,6.7,0.0,-6.7\n"
	assert.Equal(t, want, got)
}

func TestCsvReportRendererImpl_RenderReport_Empty(t *testing.T) {
	renderer := NewCsvReportRenderer()

	got, err := renderer.RenderReport(Report{})

	require.NoError(t, err)
	assert.Equal(t, "Week,Estimated Hours,Actual Hours,Difference\n", got)
}
