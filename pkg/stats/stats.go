package stats

import "time"

// WeeklyTotal reconciles one reporting week: the sum of all projects'
// estimated hours for that week against the actuals reported under the
// week's label.
type WeeklyTotal struct {
	Week       time.Time
	Estimated  float64
	Actual     float64
	Difference float64
}

// ProjectRow is the per-project breakdown shown in the recap table.
// Unknown hour values are rendered as zero.
type ProjectRow struct {
	Name      string
	Budget    float64
	Actual    float64
	Remaining float64
}

// Summary holds the scalar figures of one reconciliation pass. AsOf fields
// are restricted to weeks up to Today; see StatsServiceImpl for the actual
// hours caveat.
type Summary struct {
	GrandEstimated float64
	GrandActual    float64
	AsOfEstimated  float64
	AsOfActual     float64
	AsOfPercent    float64
	Today          time.Time
}

// Report is the full output of one reconciliation pass, consumed by the
// JSON API, the CSV renderer and the recap builder.
type Report struct {
	Weeks    []WeeklyTotal
	Projects []ProjectRow
	Summary  Summary
	Skipped  []string
}
