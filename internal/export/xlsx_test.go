package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leads-cli/internal/lead"
)

func strp(s string) *string { return &s }

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.xlsx")

	leads := []lead.Lead{
		{
			ID:          "1",
			FullName:    strp("Jane Doe"),
			Email:       strp("jane@example.com"),
			Company:     strp("Acme Tech Inc"),
			Industry:    strp("IT & Software"),
			LastUpdated: "2025-06-01T12:00:00Z",
			Source:      "webform",
			Address:     lead.Address{City: strp("Berlin")},
		},
		{ID: "2", Source: "Unknown"},
	}

	require.NoError(t, WriteXLSX(path, leads))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	require.Len(t, sheet.Rows, 3) // header + 2 leads

	header := sheet.Rows[0]
	assert.Equal(t, "id", header.Cells[0].String())
	assert.Equal(t, "full_name", header.Cells[1].String())

	first := sheet.Rows[1]
	assert.Equal(t, "1", first.Cells[0].String())
	assert.Equal(t, "Jane Doe", first.Cells[1].String())
	assert.Equal(t, "jane@example.com", first.Cells[4].String())
	assert.Equal(t, "Berlin", first.Cells[9].String())
	assert.Equal(t, "2025-06-01T12:00:00Z", first.Cells[16].String())

	second := sheet.Rows[2]
	assert.Equal(t, "2", second.Cells[0].String())
	assert.Equal(t, "", second.Cells[1].String())
}

func TestCollectDir(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"),
		[]byte(`[{"id":"2","source":"Unknown","address":{"street":null,"city":null,"postal_code":null,"country":null}}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"),
		[]byte(`[{"id":"1","source":"CRM","address":{"street":null,"city":null,"postal_code":null,"country":null}}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte(`x`), 0o644))

	leads, err := CollectDir(dir)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	// filename order
	assert.Equal(t, "1", leads[0].ID)
	assert.Equal(t, "2", leads[1].ID)
}

func TestCollectDir_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{oops`), 0o644))

	_, err := CollectDir(dir)
	assert.Error(t, err)
}
