// Package store persists batch runs and enriched company records to
// SQLite so progress survives interruption and results stay queryable.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/registry-enrich/internal/model"
)

// BatchStatus tracks the lifecycle of a batch run.
type BatchStatus string

const (
	BatchStatusRunning  BatchStatus = "running"
	BatchStatusComplete BatchStatus = "complete"
	BatchStatusFailed   BatchStatus = "failed"
)

// Batch is one execution of the enrichment loop over an input file.
type Batch struct {
	ID        string      `json:"id"`
	InputPath string      `json:"input_path"`
	Total     int         `json:"total"`
	Processed int         `json:"processed"`
	Status    BatchStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// StoredRecord is an enriched record together with its storage identity.
type StoredRecord struct {
	ID        string                `json:"id"`
	BatchID   string                `json:"batch_id"`
	Company   string                `json:"company"`
	Record    model.CanonicalRecord `json:"record"`
	CreatedAt time.Time             `json:"created_at"`
}

// RecordFilter narrows ListRecords.
type RecordFilter struct {
	BatchID string
	Company string
	Limit   int
	Offset  int
}

// SQLiteStore persists batches and records using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS batches (
	id         TEXT PRIMARY KEY,
	input_path TEXT NOT NULL,
	total      INTEGER NOT NULL,
	processed  INTEGER NOT NULL DEFAULT 0,
	status     TEXT NOT NULL DEFAULT 'running',
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS records (
	id         TEXT PRIMARY KEY,
	batch_id   TEXT NOT NULL REFERENCES batches(id),
	company    TEXT NOT NULL,
	record     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_batches_status ON batches(status);
CREATE INDEX IF NOT EXISTS idx_records_batch_id ON records(batch_id);
CREATE INDEX IF NOT EXISTS idx_records_company ON records(company);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateBatch registers a new batch run over the given input.
func (s *SQLiteStore) CreateBatch(ctx context.Context, inputPath string, total int) (*Batch, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO batches (id, input_path, total, processed, status, created_at, updated_at)
		 VALUES (?, ?, ?, 0, ?, ?, ?)`,
		id, inputPath, total, string(BatchStatusRunning), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert batch")
	}

	return &Batch{
		ID:        id,
		InputPath: inputPath,
		Total:     total,
		Status:    BatchStatusRunning,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FinishBatch records the final state of a batch run.
func (s *SQLiteStore) FinishBatch(ctx context.Context, batchID string, processed int, status BatchStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE batches SET processed = ?, status = ?, updated_at = ? WHERE id = ?`,
		processed, string(status), time.Now().UTC(), batchID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: finish batch %s", batchID)
	}
	return checkRowsAffected(res, "batch", batchID)
}

// GetBatch fetches a single batch run.
func (s *SQLiteStore) GetBatch(ctx context.Context, batchID string) (*Batch, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, input_path, total, processed, status, created_at, updated_at
		 FROM batches WHERE id = ?`,
		batchID,
	)

	var b Batch
	err := row.Scan(&b.ID, &b.InputPath, &b.Total, &b.Processed, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("batch not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan batch")
	}
	return &b, nil
}

// SaveRecord stores one enriched record under its batch.
func (s *SQLiteStore) SaveRecord(ctx context.Context, batchID string, record model.CanonicalRecord) (*StoredRecord, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal record")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (id, batch_id, company, record, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, batchID, record.CompanyName, string(recordJSON), now,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: insert record for batch %s", batchID)
	}

	return &StoredRecord{
		ID:        id,
		BatchID:   batchID,
		Company:   record.CompanyName,
		Record:    record,
		CreatedAt: now,
	}, nil
}

// ListRecords returns stored records, newest first.
func (s *SQLiteStore) ListRecords(ctx context.Context, filter RecordFilter) ([]StoredRecord, error) {
	query := `SELECT id, batch_id, company, record, created_at FROM records WHERE 1=1`
	var args []any

	if filter.BatchID != "" {
		query += ` AND batch_id = ?`
		args = append(args, filter.BatchID)
	}
	if filter.Company != "" {
		query += ` AND company = ?`
		args = append(args, filter.Company)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list records")
	}
	defer rows.Close()

	var records []StoredRecord
	for rows.Next() {
		var sr StoredRecord
		var recordJSON string
		if err := rows.Scan(&sr.ID, &sr.BatchID, &sr.Company, &recordJSON, &sr.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan record")
		}
		if err := json.Unmarshal([]byte(recordJSON), &sr.Record); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal record")
		}
		records = append(records, sr)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: list records iterate")
}

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
