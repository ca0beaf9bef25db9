package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbook_RoundTrip(t *testing.T) {
	wb := NewWorkbook("Schedules")
	defer wb.Close()

	require.NoError(t, wb.WriteHeader([]string{"Start", "End", "Name"}))
	require.NoError(t, wb.WriteRow([]interface{}{"2026-10-16 09:00", "2026-10-16 10:00", "Tanaka"}))

	var buf bytes.Buffer
	_, err := wb.WriteTo(&buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Schedules")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Start", "End", "Name"}, rows[0])
	assert.Equal(t, "Tanaka", rows[1][2])
}
