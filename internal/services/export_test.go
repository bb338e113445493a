package services

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"attendance-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteSpreadsheet(t *testing.T) {
	records := []models.Record{
		{ID: 10, AttendantName: "Ana", Municipality: "Belém", Date: "2024-01-01", Reason: "Visita"},
		{ID: 11, AttendantName: "Bia", Municipality: "Marabá", Date: "2024-01-02"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSpreadsheet(records, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendances")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ExportColumns, rows[0])
	assert.Equal(t, "Ana", rows[1][0])
	assert.Equal(t, "Belém", rows[1][3])
	assert.Equal(t, "Visita", rows[1][8])
	assert.Equal(t, "Bia", rows[2][0])
}

func TestExportFile_UniqueNames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	records := []models.Record{{AttendantName: "Ana"}}

	p1, err := ExportFile(records, dir)
	require.NoError(t, err)
	p2, err := ExportFile(records, dir)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	for _, p := range []string{p1, p2} {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}
