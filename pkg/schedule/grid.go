package schedule

import (
	"time"

	"github.com/hartlabs/hourtrack/pkg/baseline"
	log "github.com/sirupsen/logrus"
)

// WeekLabelLayout is the canonical string form of a week anchor. Actuals
// batches are matched against anchors through this form.
const WeekLabelLayout = "2006-01-02"

// WeekGrid is the ordered set of Monday-aligned week anchors spanning all
// projects, always including the configured mandatory anchor.
type WeekGrid struct {
	Anchors []time.Time
}

// Label renders a week anchor in its canonical string form.
func Label(t time.Time) string {
	return t.Format(WeekLabelLayout)
}

// NewWeekGrid computes weekly anchors from the first Monday at or after the
// earliest known start date through the latest known due date, at 7-day
// steps. The mandatory anchor is inserted in chronological position when the
// natural span does not contain it. When no project has a known start or due
// date the grid degenerates to the mandatory anchor alone, so downstream
// stages always have at least one week to report on.
func NewWeekGrid(projects []baseline.Project, anchorDate time.Time) WeekGrid {
	minStart, maxDue := dateSpan(projects)
	if minStart == nil || maxDue == nil {
		log.Warn("no project has both dates known; week grid reduced to the mandatory anchor")
		return WeekGrid{Anchors: []time.Time{anchorDate}}
	}

	anchors := WeeksBetween(*minStart, *maxDue)
	anchors = insertAnchor(anchors, anchorDate)
	return WeekGrid{Anchors: anchors}
}

// Labels returns the canonical string form of every anchor, in grid order.
func (g WeekGrid) Labels() []string {
	labels := make([]string, len(g.Anchors))
	for i, anchor := range g.Anchors {
		labels[i] = Label(anchor)
	}
	return labels
}

// Index returns the position of the given anchor in the grid, or -1 when
// the grid does not contain it.
func (g WeekGrid) Index(anchor time.Time) int {
	for i, a := range g.Anchors {
		if a.Equal(anchor) {
			return i
		}
	}
	return -1
}

// WeeksBetween lists the Mondays falling inside [start, due], in order.
// A due date before the first Monday yields an empty list.
func WeeksBetween(start, due time.Time) []time.Time {
	var weeks []time.Time
	for w := mondayOnOrAfter(start); !w.After(due); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, w)
	}
	return weeks
}

func mondayOnOrAfter(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, offset)
}

func dateSpan(projects []baseline.Project) (minStart, maxDue *time.Time) {
	for _, p := range projects {
		if p.StartDate != nil && (minStart == nil || p.StartDate.Before(*minStart)) {
			minStart = p.StartDate
		}
		if p.DueDate != nil && (maxDue == nil || p.DueDate.After(*maxDue)) {
			maxDue = p.DueDate
		}
	}
	return minStart, maxDue
}

func insertAnchor(anchors []time.Time, anchor time.Time) []time.Time {
	for i, a := range anchors {
		if a.Equal(anchor) {
			return anchors
		}
		if a.After(anchor) {
			out := make([]time.Time, 0, len(anchors)+1)
			out = append(out, anchors[:i]...)
			out = append(out, anchor)
			out = append(out, anchors[i:]...)
			return out
		}
	}
	return append(anchors, anchor)
}
