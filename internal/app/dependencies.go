package app

import (
	"fmt"
	"time"

	"github.com/hartlabs/hourtrack/internal/config"
	"github.com/hartlabs/hourtrack/internal/utils"
	"github.com/hartlabs/hourtrack/pkg/recap"
	"github.com/hartlabs/hourtrack/pkg/stats"
	"github.com/hartlabs/hourtrack/pkg/store"
	"github.com/hartlabs/hourtrack/pkg/tracker"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Store store.Store

	StatsService  *stats.StatsServiceImpl
	CsvRenderer   *stats.CsvReportRendererImpl
	RecapRenderer *recap.HtmlRendererImpl

	TrackerService *tracker.ServiceImpl
	TrackerHandler *tracker.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	anchorDate, err := time.Parse("2006-01-02", cfg.Tracker.AnchorDate)
	if err != nil {
		return nil, fmt.Errorf("invalid tracker.anchordate %q: %w", cfg.Tracker.AnchorDate, err)
	}

	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.Store = store.NewFileStore(cfg.Storage.Dir)

	deps.StatsService = stats.NewStatsServiceImpl(deps.Clock, cfg.Tracker.ActualsAsOfFilter)
	deps.CsvRenderer = stats.NewCsvReportRenderer()
	deps.RecapRenderer = recap.NewHtmlRenderer()

	deps.TrackerService = tracker.NewServiceImpl(deps.Store, deps.StatsService, anchorDate)
	deps.TrackerHandler = tracker.NewHandler(deps.TrackerService, deps.CsvRenderer, deps.RecapRenderer)

	return deps, nil
}
