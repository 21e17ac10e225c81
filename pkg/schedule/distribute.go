package schedule

import (
	"github.com/hartlabs/hourtrack/internal/utils"
	"github.com/hartlabs/hourtrack/pkg/baseline"
	log "github.com/sirupsen/logrus"
)

// ProjectAllocation holds one project's estimated hours per grid week.
// Cells are aligned with the grid's anchors; weeks outside the project's
// own start-to-due range stay zero.
type ProjectAllocation struct {
	Project baseline.Project
	PerWeek float64
	Cells   []float64
}

// Distribution is the output of one hour-distribution pass over a baseline.
type Distribution struct {
	Grid    WeekGrid
	Rows    []ProjectAllocation
	Skipped []string
}

// Distribute spreads every schedulable project's remaining hours equally
// across the Mondays between its start and due date. The split is a plain
// equal split of the remaining budget, rounded to one decimal per week; the
// rounding drift against the project's remaining total is accepted.
// Projects missing either date allocate nothing and are collected into the
// skipped list, which is a warning for the caller rather than an error.
func Distribute(projects []baseline.Project, grid WeekGrid) Distribution {
	dist := Distribution{
		Grid:    grid,
		Rows:    make([]ProjectAllocation, 0, len(projects)),
		Skipped: []string{},
	}

	for _, p := range projects {
		row := ProjectAllocation{
			Project: p,
			Cells:   make([]float64, len(grid.Anchors)),
		}

		if !p.Schedulable() {
			dist.Skipped = append(dist.Skipped, p.Name)
			dist.Rows = append(dist.Rows, row)
			continue
		}

		weeks := WeeksBetween(*p.StartDate, *p.DueDate)
		if len(weeks) > 0 {
			row.PerWeek = utils.Round1(p.Remaining.OrZero() / float64(len(weeks)))
		}
		for _, week := range weeks {
			if i := grid.Index(week); i >= 0 {
				row.Cells[i] = row.PerWeek
			}
		}
		dist.Rows = append(dist.Rows, row)
	}

	if len(dist.Skipped) > 0 {
		log.Warnf("Skipped %d projects due to missing start or due dates: %v", len(dist.Skipped), dist.Skipped)
	}
	return dist
}
