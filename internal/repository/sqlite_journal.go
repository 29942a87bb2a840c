package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/projectionctl/internal/db"
	"github.com/alexanderramin/projectionctl/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db db.DBTX
}

// NewSQLiteJournalRepo creates a new SQLiteJournalRepo.
func NewSQLiteJournalRepo(db db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: db}
}

// journalTimeLayout is fixed-width so created_at sorts chronologically as text.
const journalTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const journalColumns = `id, operation, target_kind, target_id, plan_id, summary, document_path, created_at`

func (r *SQLiteJournalRepo) Record(ctx context.Context, c *domain.ChangeRecord) error {
	query := `INSERT INTO change_journal (` + journalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Operation,
		c.TargetKind,
		c.TargetID,
		c.PlanID,
		c.Summary,
		c.DocumentPath,
		c.CreatedAt.UTC().Format(journalTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting change record: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, id string) (*domain.ChangeRecord, error) {
	query := `SELECT ` + journalColumns + ` FROM change_journal WHERE id = ?`
	var c domain.ChangeRecord
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Operation, &c.TargetKind, &c.TargetID, &c.PlanID, &c.Summary, &c.DocumentPath, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("change record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning change record: %w", err)
	}
	if c.CreatedAt, err = time.Parse(journalTimeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}

// ListRecent returns up to limit entries, newest first.
func (r *SQLiteJournalRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ChangeRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + journalColumns + ` FROM change_journal
		ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing change records: %w", err)
	}
	defer rows.Close()

	var records []*domain.ChangeRecord
	for rows.Next() {
		var c domain.ChangeRecord
		var createdAt string
		if err := rows.Scan(
			&c.ID, &c.Operation, &c.TargetKind, &c.TargetID, &c.PlanID, &c.Summary, &c.DocumentPath, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning change record row: %w", err)
		}
		if c.CreatedAt, err = time.Parse(journalTimeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		records = append(records, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating change records: %w", err)
	}
	return records, nil
}

// NoopJournalRepo discards records. Used when journaling is disabled.
type NoopJournalRepo struct{}

func (NoopJournalRepo) Record(context.Context, *domain.ChangeRecord) error { return nil }

func (NoopJournalRepo) GetByID(_ context.Context, id string) (*domain.ChangeRecord, error) {
	return nil, fmt.Errorf("change record: %w", ErrNotFound)
}

func (NoopJournalRepo) ListRecent(context.Context, int) ([]*domain.ChangeRecord, error) {
	return nil, nil
}
