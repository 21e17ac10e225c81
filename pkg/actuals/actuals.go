package actuals

import (
	"strings"
)

// Record is one reported line of actual hours: a project, an opaque week
// label identifying the upload batch, and the hours logged.
type Record struct {
	Project string
	Week    string
	Hours   float64
}

// WeekLabel derives the week label for an uploaded batch from its file name.
// The convention is a date token between the first underscore and the file
// extension, e.g. "actuals_2025-01-06.csv" -> "2025-01-06". A name without
// an underscore falls back to the whole name without extension.
func WeekLabel(filename string) string {
	name := filename
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}
