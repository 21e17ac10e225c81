package tracker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hartlabs/hourtrack/pkg/actuals"
	"github.com/hartlabs/hourtrack/pkg/baseline"
	"github.com/hartlabs/hourtrack/pkg/schedule"
	"github.com/hartlabs/hourtrack/pkg/stats"
	"github.com/hartlabs/hourtrack/pkg/store"
	log "github.com/sirupsen/logrus"
)

// Batch is one uploaded actuals file. The week label is derived from the
// file name.
type Batch struct {
	Filename string
	Content  io.Reader
}

type Service interface {
	// UploadBaseline stores a new baseline, replacing the previous one, and
	// returns the number of records it holds.
	UploadBaseline(ctx context.Context, r io.Reader) (int, error)
	// UploadActuals stores a new set of actuals batches, replacing the
	// previous one, and returns the week labels in upload order.
	UploadActuals(ctx context.Context, batches []Batch) ([]string, error)
	// Reconcile runs one full pass over the stored baseline and actuals:
	// normalize, build the week grid, distribute hours and aggregate.
	Reconcile(ctx context.Context) (stats.Report, error)
	// Reset clears the stored session so the next pass starts fresh.
	Reset(ctx context.Context) error
}

type ServiceImpl struct {
	store        store.Store
	statsService stats.StatsService
	anchorDate   time.Time
}

func NewServiceImpl(store store.Store, statsService stats.StatsService, anchorDate time.Time) *ServiceImpl {
	return &ServiceImpl{
		store:        store,
		statsService: statsService,
		anchorDate:   anchorDate,
	}
}

func (s *ServiceImpl) UploadBaseline(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read baseline upload: %w", err)
	}

	projects, err := baseline.Parse(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}

	// The upload is stored verbatim; normalization happens on every pass.
	if err := s.store.SaveBaseline(ctx, data); err != nil {
		return 0, err
	}
	log.Infof("Stored baseline with %d records", len(projects))
	return len(projects), nil
}

func (s *ServiceImpl) UploadActuals(ctx context.Context, batches []Batch) ([]string, error) {
	var records []actuals.Record
	weeks := make([]string, 0, len(batches))
	for _, batch := range batches {
		week := actuals.WeekLabel(batch.Filename)
		batchRecords, err := actuals.ParseBatch(batch.Content, week)
		if err != nil {
			return nil, fmt.Errorf("failed to parse actuals batch %s: %w", batch.Filename, err)
		}
		records = append(records, batchRecords...)
		weeks = append(weeks, week)
	}

	data, err := actuals.WriteCombined(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode actuals: %w", err)
	}
	if err := s.store.SaveActuals(ctx, data); err != nil {
		return nil, err
	}
	log.Infof("Stored %d actuals records for weeks %v", len(records), weeks)
	return weeks, nil
}

func (s *ServiceImpl) Reconcile(ctx context.Context) (stats.Report, error) {
	baselineData, err := s.store.LoadBaseline(ctx)
	if err != nil {
		return stats.Report{}, err
	}
	actualsData, err := s.store.LoadActuals(ctx)
	if err != nil {
		return stats.Report{}, err
	}

	projects, err := baseline.Parse(bytes.NewReader(baselineData))
	if err != nil {
		return stats.Report{}, err
	}
	records, err := actuals.ParseCombined(bytes.NewReader(actualsData))
	if err != nil {
		return stats.Report{}, err
	}

	grid := schedule.NewWeekGrid(projects, s.anchorDate)
	dist := schedule.Distribute(projects, grid)
	return s.statsService.Summarize(dist, records), nil
}

func (s *ServiceImpl) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}
