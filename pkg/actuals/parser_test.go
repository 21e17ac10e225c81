package actuals

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekLabel(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"actuals_2025-01-06.csv", "2025-01-06"},
		{"hours_2025-02-10.CSV", "2025-02-10"},
		{"2025-01-06.csv", "2025-01-06"},
		{"noextension_2025-03-03", "2025-03-03"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekLabel(tt.filename))
		})
	}
}

func TestParseBatch_DiscardsHeaderAndAttachesWeek(t *testing.T) {
	csvData := `Project Full Name,Actual Hours
Proj A,5
Proj B,7.25
`

	records, err := ParseBatch(strings.NewReader(csvData), "2025-01-06")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Record{Project: "Proj A", Week: "2025-01-06", Hours: 5}, records[0])
	assert.Equal(t, Record{Project: "Proj B", Week: "2025-01-06", Hours: 7.25}, records[1])
}

func TestParseBatch_UnparseableHoursCountAsZero(t *testing.T) {
	csvData := `Project,Hours
Proj A,n/a
Proj B,"1,204.5"
`

	records, err := ParseBatch(strings.NewReader(csvData), "2025-01-06")

	require.NoError(t, err)
	assert.Equal(t, 0.0, records[0].Hours)
	assert.Equal(t, 1204.5, records[1].Hours)
}

func TestParseBatch_EmptyInput(t *testing.T) {
	records, err := ParseBatch(strings.NewReader(""), "2025-01-06")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCombinedRoundTrip(t *testing.T) {
	records := []Record{
		{Project: "Proj A", Week: "2025-01-06", Hours: 5},
		{Project: "Proj B", Week: "2025-01-06", Hours: 7.25},
		{Project: "Proj A", Week: "2025-01-13", Hours: 0},
	}

	data, err := WriteCombined(records)
	require.NoError(t, err)

	parsed, err := ParseCombined(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, records, parsed)
}

func TestWriteCombined_Empty(t *testing.T) {
	data, err := WriteCombined(nil)

	require.NoError(t, err)
	assert.Equal(t, "Project Full Name,Actual Hours,Week\n", string(data))
}
