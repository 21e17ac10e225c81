package app

import (
	"github.com/gorilla/mux"
	"github.com/hartlabs/hourtrack/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Uploads
	r.HandleFunc("/api/baseline", deps.TrackerHandler.UploadBaseline).Methods("POST")
	r.HandleFunc("/api/actuals", deps.TrackerHandler.UploadActuals).Methods("POST")

	// Reconciliation report
	r.HandleFunc("/api/report", deps.TrackerHandler.GetReport).Methods("GET")
	r.HandleFunc("/api/report/csv", deps.TrackerHandler.GetReportCsv).Methods("GET")
	r.HandleFunc("/api/chart", deps.TrackerHandler.GetChart).Methods("GET")
	r.HandleFunc("/api/recap", deps.TrackerHandler.GetRecap).Methods("GET")
	r.HandleFunc("/api/export", deps.TrackerHandler.GetExport).Methods("GET")

	// Session
	r.HandleFunc("/api/session", deps.TrackerHandler.ResetSession).Methods("DELETE")
}
