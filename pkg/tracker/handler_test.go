package tracker

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hartlabs/hourtrack/internal/rest"
	"github.com/hartlabs/hourtrack/pkg/recap"
	"github.com/hartlabs/hourtrack/pkg/stats"
	"github.com/hartlabs/hourtrack/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() (*Handler, *ServiceImpl) {
	service := newService(store.NewStubStore())
	handler := NewHandler(service, stats.NewCsvReportRenderer(), recap.NewHtmlRenderer())
	return handler, service
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestHandler_GetReportWithoutSession(t *testing.T) {
	handler, _ := newHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	recorder := httptest.NewRecorder()
	handler.GetReport(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	var errResponse rest.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&errResponse))
	assert.Equal(t, "No session data stored yet", errResponse.Error)
}

func TestHandler_UploadAndGetReport(t *testing.T) {
	handler, _ := newHandler()

	// upload baseline
	body, contentType := multipartBody(t, "baseline", "baseline.csv", baselineCsv)
	req := httptest.NewRequest(http.MethodPost, "/api/baseline", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	handler.UploadBaseline(recorder, req)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var baselineResponse UploadBaselineResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&baselineResponse))
	assert.Equal(t, 2, baselineResponse.Projects)

	// upload actuals
	body, contentType = multipartBody(t, "actuals", "actuals_2025-01-06.csv", actualsCsv)
	req = httptest.NewRequest(http.MethodPost, "/api/actuals", body)
	req.Header.Set("Content-Type", contentType)
	recorder = httptest.NewRecorder()
	handler.UploadActuals(recorder, req)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var actualsResponse UploadActualsResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&actualsResponse))
	assert.Equal(t, []string{"2025-01-06"}, actualsResponse.Weeks)

	// fetch the report
	req = httptest.NewRequest(http.MethodGet, "/api/report", nil)
	recorder = httptest.NewRecorder()
	handler.GetReport(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var report ReportDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&report))
	assert.Equal(t, []string{"Proj B"}, report.SkippedProjects)
	assert.Equal(t, 20.0, report.Summary.GrandEstimated)
	require.NotEmpty(t, report.Weeks)
	assert.Equal(t, "2025-01-06", report.Weeks[0].Week)
}

func TestHandler_UploadActualsWithoutFiles(t *testing.T) {
	handler, _ := newHandler()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/actuals", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	handler.UploadActuals(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_GetReportCsv(t *testing.T) {
	handler, service := newHandler()
	uploadSession(t, service)

	req := httptest.NewRequest(http.MethodGet, "/api/report/csv", nil)
	recorder := httptest.NewRecorder()
	handler.GetReportCsv(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(recorder.Body.String(), "Week,Estimated Hours,Actual Hours,Difference\n"))
}

func TestHandler_GetExport(t *testing.T) {
	handler, service := newHandler()
	uploadSession(t, service)

	req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	recorder := httptest.NewRecorder()
	handler.GetExport(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "weekly_hours_chart.html")
	assert.Contains(t, recorder.Body.String(), "Plotly.newPlot")
}

func TestHandler_ResetSession(t *testing.T) {
	handler, service := newHandler()
	uploadSession(t, service)

	req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
	recorder := httptest.NewRecorder()
	handler.ResetSession(recorder, req)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/report", nil)
	recorder = httptest.NewRecorder()
	handler.GetReport(recorder, req)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}
