package tracker

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hartlabs/hourtrack/internal/rest"
	"github.com/hartlabs/hourtrack/pkg/recap"
	"github.com/hartlabs/hourtrack/pkg/schedule"
	"github.com/hartlabs/hourtrack/pkg/stats"
	"github.com/hartlabs/hourtrack/pkg/store"
	log "github.com/sirupsen/logrus"
)

type WeeklyTotalDTO struct {
	Week       string  `json:"week"`
	Estimated  float64 `json:"estimatedHours"`
	Actual     float64 `json:"actualHours"`
	Difference float64 `json:"difference"`
}

type ProjectRowDTO struct {
	Name      string  `json:"name"`
	Budget    float64 `json:"budgetHours"`
	Actual    float64 `json:"actualHours"`
	Remaining float64 `json:"remainingHours"`
}

type SummaryDTO struct {
	GrandEstimated float64 `json:"grandEstimatedHours"`
	GrandActual    float64 `json:"grandActualHours"`
	AsOfEstimated  float64 `json:"asOfEstimatedHours"`
	AsOfActual     float64 `json:"asOfActualHours"`
	AsOfPercent    float64 `json:"asOfPercentUsed"`
	Today          string  `json:"today"`
}

type ReportDTO struct {
	Weeks           []WeeklyTotalDTO `json:"weeks"`
	Projects        []ProjectRowDTO  `json:"projects"`
	Summary         SummaryDTO       `json:"summary"`
	SkippedProjects []string         `json:"skippedProjects"`
}

type UploadBaselineResponseDTO struct {
	Projects int `json:"projects"`
}

type UploadActualsResponseDTO struct {
	Weeks []string `json:"weeks"`
}

type Handler struct {
	trackerService Service
	csvRenderer    stats.ReportRenderer
	recapRenderer  recap.Renderer
}

func NewHandler(trackerService Service, csvRenderer stats.ReportRenderer, recapRenderer recap.Renderer) *Handler {
	return &Handler{
		trackerService: trackerService,
		csvRenderer:    csvRenderer,
		recapRenderer:  recapRenderer,
	}
}

// UploadBaseline godoc
// @Summary Upload a new baseline
// @Description Store a baseline CSV (max 10MB), replacing the previous one
// @Tags Tracker
// @Accept multipart/form-data
// @Param baseline formData file true "Baseline CSV"
// @Success 201 {object} UploadBaselineResponseDTO
// @Failure 400 {object} rest.ErrorResponse "File too large or invalid"
// @Router /api/baseline [post]
func (h *Handler) UploadBaseline(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Uploading baseline")

	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		log.Debugf("Baseline upload rejected: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Baseline file is too large",
			Details: "Maximum size is 10MB. Please try again with a smaller file.",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	file, header, err := r.FormFile("baseline")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()
	log.Debugf("Uploaded baseline file: %s (%d bytes)", header.Filename, header.Size)

	count, err := h.trackerService.UploadBaseline(r.Context(), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(UploadBaselineResponseDTO{Projects: count}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// UploadActuals godoc
// @Summary Upload actuals batches
// @Description Store one or more weekly actuals CSVs, replacing the previous set. The week label is taken from each file name.
// @Tags Tracker
// @Accept multipart/form-data
// @Param actuals formData file true "Actuals CSVs"
// @Success 201 {object} UploadActualsResponseDTO
// @Failure 400 {object} rest.ErrorResponse "Files too large or missing"
// @Router /api/actuals [post]
func (h *Handler) UploadActuals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Uploading actuals")

	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		log.Debugf("Actuals upload rejected: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Actuals upload is too large",
			Details: "Maximum total size is 10MB. Please try again with smaller files.",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	headers := r.MultipartForm.File["actuals"]
	if len(headers) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "At least one actuals file is required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	batches := make([]Batch, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		batches = append(batches, Batch{Filename: header.Filename, Content: file})
	}

	weeks, err := h.trackerService.UploadActuals(r.Context(), batches)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(UploadActualsResponseDTO{Weeks: weeks}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetReport godoc
// @Summary Get the reconciliation report
// @Description Run one reconciliation pass over the stored baseline and actuals
// @Tags Tracker
// @Produce json
// @Success 200 {object} ReportDTO
// @Failure 409 {object} rest.ErrorResponse "No session data stored yet"
// @Router /api/report [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, ok := h.reconcile(w, r)
	if !ok {
		return
	}
	if err := json.NewEncoder(w).Encode(ReportToDTO(report)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetReportCsv godoc
// @Summary Get the weekly totals as CSV
// @Tags Tracker
// @Produce text/csv
// @Success 200 {string} string "CSV data"
// @Failure 409 {object} rest.ErrorResponse "No session data stored yet"
// @Router /api/report/csv [get]
func (h *Handler) GetReportCsv(w http.ResponseWriter, r *http.Request) {
	report, ok := h.reconcile(w, r)
	if !ok {
		return
	}
	csvData, err := h.csvRenderer.RenderReport(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	if _, err := w.Write([]byte(csvData)); err != nil {
		log.Errorf("Error writing csv response: %v", err)
	}
}

// GetRecap godoc
// @Summary Get the recap as an HTML fragment
// @Tags Tracker
// @Produce text/html
// @Success 200 {string} string "HTML fragment"
// @Failure 409 {object} rest.ErrorResponse "No session data stored yet"
// @Router /api/recap [get]
func (h *Handler) GetRecap(w http.ResponseWriter, r *http.Request) {
	report, ok := h.reconcile(w, r)
	if !ok {
		return
	}
	html, err := h.recapRenderer.RenderRecap(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		log.Errorf("Error writing recap response: %v", err)
	}
}

// GetExport godoc
// @Summary Download the chart and recap as a standalone HTML document
// @Tags Tracker
// @Produce text/html
// @Success 200 {file} text/html
// @Failure 409 {object} rest.ErrorResponse "No session data stored yet"
// @Router /api/export [get]
func (h *Handler) GetExport(w http.ResponseWriter, r *http.Request) {
	report, ok := h.reconcile(w, r)
	if !ok {
		return
	}
	document, err := h.recapRenderer.RenderExport(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="weekly_hours_chart.html"`)
	if _, err := w.Write(document); err != nil {
		log.Errorf("Error writing export response: %v", err)
	}
}

// GetChart godoc
// @Summary Get the weekly chart payload
// @Tags Tracker
// @Produce json
// @Success 200 {array} recap.ChartPoint
// @Failure 409 {object} rest.ErrorResponse "No session data stored yet"
// @Router /api/chart [get]
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, ok := h.reconcile(w, r)
	if !ok {
		return
	}
	if err := json.NewEncoder(w).Encode(recap.ChartPoints(report)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// ResetSession godoc
// @Summary Reset the session
// @Description Clear the stored baseline and actuals
// @Tags Tracker
// @Success 204 "No Content"
// @Router /api/session [delete]
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	log.Debug("Resetting session")
	if err := h.trackerService.Reset(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) (stats.Report, bool) {
	report, err := h.trackerService.Reconcile(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoBaseline) || errors.Is(err, store.ErrNoActuals) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "No session data stored yet",
				Details: "Upload a baseline file and at least one actuals file to get started.",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return stats.Report{}, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return stats.Report{}, false
	}
	return report, true
}

func ReportToDTO(report stats.Report) ReportDTO {
	weeks := make([]WeeklyTotalDTO, 0, len(report.Weeks))
	for _, week := range report.Weeks {
		weeks = append(weeks, WeeklyTotalDTO{
			Week:       schedule.Label(week.Week),
			Estimated:  week.Estimated,
			Actual:     week.Actual,
			Difference: week.Difference,
		})
	}
	projects := make([]ProjectRowDTO, 0, len(report.Projects))
	for _, row := range report.Projects {
		projects = append(projects, ProjectRowDTO{
			Name:      row.Name,
			Budget:    row.Budget,
			Actual:    row.Actual,
			Remaining: row.Remaining,
		})
	}
	return ReportDTO{
		Weeks:           weeks,
		Projects:        projects,
		SkippedProjects: report.Skipped,
		Summary: SummaryDTO{
			GrandEstimated: report.Summary.GrandEstimated,
			GrandActual:    report.Summary.GrandActual,
			AsOfEstimated:  report.Summary.AsOfEstimated,
			AsOfActual:     report.Summary.AsOfActual,
			AsOfPercent:    report.Summary.AsOfPercent,
			Today:          schedule.Label(report.Summary.Today),
		},
	}
}
