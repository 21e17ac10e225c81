package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/hartlabs/hourtrack/pkg/schedule"
	log "github.com/sirupsen/logrus"
)

type ReportRenderer interface {
	RenderReport(report Report) (string, error)
}

// CsvReportRendererImpl renders the weekly totals table as CSV for download
// and for the one-shot CLI output.
type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

func (t *CsvReportRendererImpl) RenderReport(report Report) (string, error) {
	data := make([][]string, 0, len(report.Weeks)+1)
	data = append(data, []string{"Week", "Estimated Hours", "Actual Hours", "Difference"})
	for _, week := range report.Weeks {
		data = append(data, []string{
			schedule.Label(week.Week),
			formatHours(week.Estimated),
			formatHours(week.Actual),
			formatHours(week.Difference),
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
