package tracker

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hartlabs/hourtrack/internal/utils"
	"github.com/hartlabs/hourtrack/pkg/stats"
	"github.com/hartlabs/hourtrack/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchorDate = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
var clock = &utils.MockClock{FixedNow: time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)}

const baselineCsv = `Project Full Name,Project Start Date,Project Due Date,Current Budget Hours,Actual Hours,Remaining
Proj A,2025-01-06,2025-01-20,30,10,999
Proj B,,2025-02-01,10,0,10
`

const actualsCsv = `Project Full Name,Actual Hours
Proj A,5
Proj B,7
`

func newService(s store.Store) *ServiceImpl {
	statsService := stats.NewStatsServiceImpl(clock, false)
	return NewServiceImpl(s, statsService, anchorDate)
}

func uploadSession(t *testing.T, service *ServiceImpl) {
	t.Helper()
	ctx := context.Background()

	count, err := service.UploadBaseline(ctx, strings.NewReader(baselineCsv))
	require.NoError(t, err)
	require.Equal(t, 2, count)

	weeks, err := service.UploadActuals(ctx, []Batch{
		{Filename: "actuals_2025-01-06.csv", Content: strings.NewReader(actualsCsv)},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"2025-01-06"}, weeks)
}

func TestServiceImpl_Reconcile(t *testing.T) {
	service := newService(store.NewStubStore())
	uploadSession(t, service)

	report, err := service.Reconcile(context.Background())
	require.NoError(t, err)

	// grid: Mondays Jan 6 - Jan 27 (Proj B's due date stretches the span),
	// plus the mandatory anchor
	require.Len(t, report.Weeks, 5)
	assert.Equal(t, 6.7, report.Weeks[0].Estimated)
	assert.Equal(t, 12.0, report.Weeks[0].Actual)
	assert.Equal(t, 5.3, report.Weeks[0].Difference)
	assert.Equal(t, 6.7, report.Weeks[2].Estimated)
	assert.Equal(t, 0.0, report.Weeks[3].Estimated)
	assert.Equal(t, anchorDate, report.Weeks[4].Week)

	assert.Equal(t, []string{"Proj B"}, report.Skipped)
	assert.Equal(t, 20.0, report.Summary.GrandEstimated)
	assert.Equal(t, 10.0, report.Summary.GrandActual)
	assert.Equal(t, 13.4, report.Summary.AsOfEstimated)
	assert.Equal(t, 10.0, report.Summary.AsOfActual)
	assert.Equal(t, 74.6, report.Summary.AsOfPercent)

	require.Len(t, report.Projects, 2)
	assert.Equal(t, stats.ProjectRow{Name: "Proj A", Budget: 30, Actual: 10, Remaining: 20}, report.Projects[0])
	assert.Equal(t, stats.ProjectRow{Name: "Proj B", Budget: 10, Actual: 0, Remaining: 10}, report.Projects[1])
}

func TestServiceImpl_ReconcileWithoutSessionData(t *testing.T) {
	ctx := context.Background()
	stubStore := store.NewStubStore()
	service := newService(stubStore)

	_, err := service.Reconcile(ctx)
	assert.ErrorIs(t, err, store.ErrNoBaseline)

	_, uploadErr := service.UploadBaseline(ctx, strings.NewReader(baselineCsv))
	require.NoError(t, uploadErr)
	_, err = service.Reconcile(ctx)
	assert.ErrorIs(t, err, store.ErrNoActuals)
}

func TestServiceImpl_ReconcileSurvivesRestart(t *testing.T) {
	// persisting and reloading the cache yields the identical report
	dir := t.TempDir()
	first := newService(store.NewFileStore(dir))
	uploadSession(t, first)

	firstReport, err := first.Reconcile(context.Background())
	require.NoError(t, err)

	second := newService(store.NewFileStore(dir))
	secondReport, err := second.Reconcile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, firstReport, secondReport)
}

func TestServiceImpl_DegenerateBaselineStillReports(t *testing.T) {
	ctx := context.Background()
	service := newService(store.NewStubStore())

	noDates := `Name,Start,Due,Budget,Actual,Remaining
Proj X,,,15,0,15
`
	_, err := service.UploadBaseline(ctx, strings.NewReader(noDates))
	require.NoError(t, err)
	_, err = service.UploadActuals(ctx, []Batch{
		{Filename: "actuals_2025-01-06.csv", Content: strings.NewReader(actualsCsv)},
	})
	require.NoError(t, err)

	report, err := service.Reconcile(ctx)
	require.NoError(t, err)

	// the grid degenerates to the mandatory anchor; nothing crashes
	require.Len(t, report.Weeks, 1)
	assert.Equal(t, anchorDate, report.Weeks[0].Week)
	assert.Equal(t, 0.0, report.Weeks[0].Estimated)
	assert.Equal(t, []string{"Proj X"}, report.Skipped)
	assert.Equal(t, 0.0, report.Summary.GrandEstimated)
	assert.Equal(t, 0.0, report.Summary.AsOfPercent)
}

func TestServiceImpl_UploadActualsReplacesPreviousSet(t *testing.T) {
	ctx := context.Background()
	service := newService(store.NewStubStore())
	uploadSession(t, service)

	_, err := service.UploadActuals(ctx, []Batch{
		{Filename: "actuals_2025-01-13.csv", Content: strings.NewReader("Project,Hours\nProj A,4\n")},
	})
	require.NoError(t, err)

	report, err := service.Reconcile(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.Weeks[0].Actual, "old week no longer present")
	assert.Equal(t, 4.0, report.Weeks[1].Actual)
}

func TestReportToDTO(t *testing.T) {
	service := newService(store.NewStubStore())
	uploadSession(t, service)
	report, err := service.Reconcile(context.Background())
	require.NoError(t, err)

	dto := ReportToDTO(report)

	require.Len(t, dto.Weeks, 5)
	assert.Equal(t, WeeklyTotalDTO{Week: "2025-01-06", Estimated: 6.7, Actual: 12.0, Difference: 5.3}, dto.Weeks[0])
	assert.Equal(t, "2025-01-15", dto.Summary.Today)
	assert.Equal(t, []string{"Proj B"}, dto.SkippedProjects)
}
