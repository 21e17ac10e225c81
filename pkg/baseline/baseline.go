package baseline

import "time"

// Hours is an hour count that may be unknown when the source field did not
// parse as a number.
type Hours struct {
	Value float64
	Known bool
}

func KnownHours(value float64) Hours {
	return Hours{Value: value, Known: true}
}

// OrZero returns the value, counting unknown as zero so that aggregate sums
// are not poisoned by unparseable fields.
func (h Hours) OrZero() float64 {
	if !h.Known {
		return 0
	}
	return h.Value
}

// Project is one normalized baseline record. StartDate and DueDate are nil
// when the source value did not parse as a date; such a project cannot be
// scheduled. Remaining is always recomputed from Budget and Actual, never
// taken from the input.
type Project struct {
	Name      string
	StartDate *time.Time
	DueDate   *time.Time
	Budget    Hours
	Actual    Hours
	Remaining Hours
}

// Schedulable reports whether the project has both dates and can take part
// in hour distribution.
func (p Project) Schedulable() bool {
	return p.StartDate != nil && p.DueDate != nil
}
