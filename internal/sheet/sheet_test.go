package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/registry-enrich/internal/model"
)

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	content := "Business Name,Account Manager\nAcme Widgets Ltd,Jo\n,Sam\nB Ltd,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	input, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Business Name", "Account Manager"}, input.Columns)
	assert.Equal(t, []string{"Acme Widgets Ltd", "", "B Ltd"}, input.Names)
}

func TestLoadCSVMissingNameColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("Company,Owner\nAcme,Jo\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Business Name")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("names.txt")
	require.Error(t, err)
}

func TestOutputColumns(t *testing.T) {
	columns := OutputColumns([]string{"Business Name", "Account Manager"})

	// Input columns come first, in their original order.
	assert.Equal(t, "Business Name", columns[0])
	assert.Equal(t, "Account Manager", columns[1])

	// Canonical fields follow, minus ones the input already carried.
	assert.Equal(t, "Address", columns[2])
	assert.Contains(t, columns, "Sector")
	assert.Contains(t, columns, "CRN")

	counts := map[string]int{}
	for _, col := range columns {
		counts[col]++
	}
	assert.Equal(t, 1, counts["Business Name"])
}

func TestCheckpointPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "temp_results.xlsx"), CheckpointPath(filepath.Join("out", "results.xlsx")))
	assert.Equal(t, "temp_results.xlsx", CheckpointPath("results.xlsx"))
}

func TestWriteAndReloadXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")

	record := model.NewCanonicalRecord("Acme Widgets Ltd")
	record.CompanyNumber = "01234567"
	record.City = "Manchester"

	require.NoError(t, WriteRecords(path, []string{"Business Name"}, []model.CanonicalRecord{record}))

	input, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Widgets Ltd"}, input.Names)
	assert.Equal(t, "Business Name", input.Columns[0])
	assert.Contains(t, input.Columns, "CRN")
}
