package baseline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hartlabs/hourtrack/internal/utils"
	log "github.com/sirupsen/logrus"
)

// The first six baseline columns are bound positionally, whatever the header
// row calls them: name, start date, due date, budget hours, actual hours and
// a remaining column that is discarded and recomputed.
const minColumns = 6

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Parse reads a raw baseline CSV and normalizes it into Project records.
// Only a malformed CSV stream is an error; unparseable field values are
// coerced to unknown and handled by later stages.
func Parse(r io.Reader) ([]Project, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline csv: %w", err)
	}
	return Normalize(rows), nil
}

// Normalize converts raw tabular rows (header row first) into Project
// records. It never fails: invalid dates and numbers become unknown values.
func Normalize(rows [][]string) []Project {
	if len(rows) == 0 {
		return []Project{}
	}

	// The header row only marks where data starts; column binding is
	// positional, so drifting header text is tolerated.
	projects := make([]Project, 0, len(rows)-1)
	for _, row := range rows[1:] {
		projects = append(projects, normalizeRow(row))
	}
	log.Debugf("Normalized %d baseline records", len(projects))
	return projects
}

func normalizeRow(row []string) Project {
	p := Project{
		Name:      strings.TrimSpace(field(row, 0)),
		StartDate: parseDate(field(row, 1)),
		DueDate:   parseDate(field(row, 2)),
		Budget:    parseHours(field(row, 3)),
		Actual:    parseHours(field(row, 4)),
	}
	if p.Budget.Known && p.Actual.Known {
		p.Remaining = KnownHours(utils.Round1(p.Budget.Value - p.Actual.Value))
	}
	return p
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}
	log.Tracef("unparseable date %q coerced to unknown", raw)
	return nil
}

func parseHours(raw string) Hours {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return Hours{}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Tracef("unparseable number %q coerced to unknown", raw)
		return Hours{}
	}
	return KnownHours(value)
}
