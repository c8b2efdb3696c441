package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/registry-enrich/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestBatchLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	batch, err := st.CreateBatch(ctx, "input.csv", 25)
	require.NoError(t, err)
	assert.NotEmpty(t, batch.ID)
	assert.Equal(t, BatchStatusRunning, batch.Status)

	require.NoError(t, st.FinishBatch(ctx, batch.ID, 25, BatchStatusComplete))

	got, err := st.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "input.csv", got.InputPath)
	assert.Equal(t, 25, got.Total)
	assert.Equal(t, 25, got.Processed)
	assert.Equal(t, BatchStatusComplete, got.Status)
}

func TestFinishBatchUnknownID(t *testing.T) {
	st := newTestStore(t)

	err := st.FinishBatch(context.Background(), "no-such-batch", 0, BatchStatusFailed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveAndListRecords(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	batch, err := st.CreateBatch(ctx, "input.csv", 2)
	require.NoError(t, err)

	first := model.NewCanonicalRecord("Acme Widgets Ltd")
	first.CompanyNumber = "01234567"
	first.Source = model.SourceBoth

	second := model.NewCanonicalRecord("B Ltd")

	_, err = st.SaveRecord(ctx, batch.ID, first)
	require.NoError(t, err)
	_, err = st.SaveRecord(ctx, batch.ID, second)
	require.NoError(t, err)

	records, err := st.ListRecords(ctx, RecordFilter{BatchID: batch.ID})
	require.NoError(t, err)
	require.Len(t, records, 2)

	byCompany, err := st.ListRecords(ctx, RecordFilter{Company: "Acme Widgets Ltd"})
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "01234567", byCompany[0].Record.CompanyNumber)
	assert.Equal(t, model.SourceBoth, byCompany[0].Record.Source)
}

func TestListRecordsLimit(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	batch, err := st.CreateBatch(ctx, "input.csv", 5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := st.SaveRecord(ctx, batch.ID, model.NewCanonicalRecord("Ghost Ltd"))
		require.NoError(t, err)
	}

	records, err := st.ListRecords(ctx, RecordFilter{BatchID: batch.ID, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
