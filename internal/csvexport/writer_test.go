package csvexport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nexgen/internal/domain"
)

func sampleEntries() []domain.PincodeEntry {
	return []domain.PincodeEntry{
		{Pincode: json.Number("110001"), City: "New Delhi", State: "Delhi"},
		{Pincode: "744101", City: "South Andaman", State: "Andaman & Nicobar Islands"},
		{Pincode: json.Number("560001"), City: nil, State: "Karnataka"},
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"Pincode", "City", "State"}, row)
}

func TestWriteEntries(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteEntries(sampleEntries()))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"110001", "New Delhi", "Delhi"}, rows[1])
	assert.Equal(t, []string{"744101", "South Andaman", "Andaman & Nicobar Islands"}, rows[2])
	assert.Equal(t, []string{"560001", "", "Karnataka"}, rows[3])
}

func TestNewWorkbook(t *testing.T) {
	f, err := NewWorkbook(sampleEntries())
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, SheetName, f.GetSheetName(0))

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Pincode", "City", "State"}, rows[0])
	assert.Equal(t, []string{"110001", "New Delhi", "Delhi"}, rows[1])
	assert.Equal(t, "Karnataka", rows[3][2])
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pincodes.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleEntries()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue(SheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "South Andaman", v)
}
