package actuals

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// combinedHeader is the header of the persisted concatenation of all
// uploaded batches, part of the session cache file layout.
var combinedHeader = []string{"Project Full Name", "Actual Hours", "Week"}

// ParseBatch reads one uploaded actuals CSV. The first row is a header and
// is discarded; every following row contributes (project, hours) with the
// batch's week label attached. Unparseable hour values contribute zero.
func ParseBatch(r io.Reader, week string) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read actuals csv: %w", err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{
			Project: strings.TrimSpace(rowField(row, 0)),
			Week:    week,
			Hours:   parseHours(rowField(row, 1)),
		})
	}
	log.Debugf("Parsed %d actuals records for week %s", len(records), week)
	return records, nil
}

// ParseCombined reads the persisted three-column concatenation written by
// WriteCombined.
func ParseCombined(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read stored actuals: %w", err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{
			Project: strings.TrimSpace(rowField(row, 0)),
			Hours:   parseHours(rowField(row, 1)),
			Week:    strings.TrimSpace(rowField(row, 2)),
		})
	}
	return records, nil
}

// WriteCombined renders records into the persisted three-column form.
func WriteCombined(records []Record) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	if err := writer.Write(combinedHeader); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := []string{rec.Project, strconv.FormatFloat(rec.Hours, 'f', -1, 64), rec.Week}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func rowField(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func parseHours(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Tracef("unparseable actual hours %q counted as zero", raw)
		return 0
	}
	return value
}
