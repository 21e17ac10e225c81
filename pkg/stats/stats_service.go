package stats

import (
	"math"
	"sort"
	"time"

	"github.com/hartlabs/hourtrack/internal/utils"
	"github.com/hartlabs/hourtrack/pkg/actuals"
	"github.com/hartlabs/hourtrack/pkg/schedule"
	log "github.com/sirupsen/logrus"
)

type StatsService interface {
	Summarize(dist schedule.Distribution, records []actuals.Record) Report
}

type StatsServiceImpl struct {
	clock utils.Clock
	// filterAsOfActuals restricts as-of-today actual hours to weeks up to
	// today. The historical behavior (off) reports the lifetime actual
	// total in the as-of-today block even though the estimated side is
	// date-filtered.
	filterAsOfActuals bool
}

func NewStatsServiceImpl(clock utils.Clock, filterAsOfActuals bool) *StatsServiceImpl {
	return &StatsServiceImpl{clock: clock, filterAsOfActuals: filterAsOfActuals}
}

// Summarize aggregates a distribution and the reported actuals into weekly
// totals and scalar summary figures. All sums are commutative group-bys, so
// input row order never changes the output.
func (s *StatsServiceImpl) Summarize(dist schedule.Distribution, records []actuals.Record) Report {
	actualsByWeek := make(map[string]float64, len(records))
	for _, rec := range records {
		actualsByWeek[rec.Week] += rec.Hours
	}

	today := midnight(s.clock.Now())
	todayLabel := schedule.Label(today)

	weeks := make([]WeeklyTotal, 0, len(dist.Grid.Anchors))
	grandEstimated := 0.0
	asOfEstimated := 0.0
	for i, anchor := range dist.Grid.Anchors {
		estimated := 0.0
		for _, row := range dist.Rows {
			estimated += row.Cells[i]
		}
		grandEstimated += estimated
		if !anchor.After(today) {
			asOfEstimated += estimated
		}

		actual := actualsByWeek[schedule.Label(anchor)]
		estimated = utils.Round1(estimated)
		actual = utils.Round1(actual)
		weeks = append(weeks, WeeklyTotal{
			Week:       anchor,
			Estimated:  estimated,
			Actual:     actual,
			Difference: utils.Round1(actual - estimated),
		})
	}

	grandActual := 0.0
	for _, row := range dist.Rows {
		grandActual += row.Project.Actual.OrZero()
	}
	grandActual = utils.Round2(grandActual)

	asOfActual := grandActual
	if s.filterAsOfActuals {
		asOfActual = 0.0
		for week, hours := range actualsByWeek {
			// Canonical labels are YYYY-MM-DD, so lexical order is
			// chronological order.
			if week <= todayLabel {
				asOfActual += hours
			}
		}
		asOfActual = utils.Round2(asOfActual)
	}

	asOfEstimated = utils.Round1(asOfEstimated)
	asOfPercent := 0.0
	if asOfEstimated > 0 {
		asOfPercent = utils.Round1(asOfActual / asOfEstimated * 100)
	}
	log.Debugf("Summarized %d weeks, %d projects, %d skipped", len(weeks), len(dist.Rows), len(dist.Skipped))

	return Report{
		Weeks:    weeks,
		Projects: projectRows(dist),
		Skipped:  dist.Skipped,
		Summary: Summary{
			GrandEstimated: math.Round(grandEstimated),
			GrandActual:    grandActual,
			AsOfEstimated:  asOfEstimated,
			AsOfActual:     asOfActual,
			AsOfPercent:    asOfPercent,
			Today:          today,
		},
	}
}

func projectRows(dist schedule.Distribution) []ProjectRow {
	rows := make([]ProjectRow, 0, len(dist.Rows))
	for _, row := range dist.Rows {
		rows = append(rows, ProjectRow{
			Name:      row.Project.Name,
			Budget:    row.Project.Budget.OrZero(),
			Actual:    row.Project.Actual.OrZero(),
			Remaining: row.Project.Remaining.OrZero(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})
	return rows
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
