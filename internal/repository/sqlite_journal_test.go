package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/projectionctl/internal/db"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

func newRecord(id string, at time.Time) *domain.ChangeRecord {
	return &domain.ChangeRecord{
		ID:           id,
		Operation:    "add_income_event",
		TargetKind:   "income event",
		TargetID:     "evt-" + id,
		PlanID:       "plan-1",
		Summary:      "added income event " + id,
		DocumentPath: "/tmp/plan.json",
		CreatedAt:    at,
	}
}

func TestSQLiteJournalRepo_RecordAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteJournalRepo(newTestDB(t))

	at := time.Date(2026, 1, 15, 9, 30, 0, 123, time.UTC)
	rec := newRecord("c1", at)
	require.NoError(t, repo.Record(ctx, rec))

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, rec.Operation, got.Operation)
	assert.Equal(t, rec.TargetKind, got.TargetKind)
	assert.Equal(t, rec.TargetID, got.TargetID)
	assert.Equal(t, rec.PlanID, got.PlanID)
	assert.Equal(t, rec.Summary, got.Summary)
	assert.Equal(t, rec.DocumentPath, got.DocumentPath)
	assert.True(t, at.Equal(got.CreatedAt), "nanoseconds survive the text encoding")
}

func TestSQLiteJournalRepo_EmptyOptionalFields(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteJournalRepo(newTestDB(t))

	rec := &domain.ChangeRecord{
		ID:           "c1",
		Operation:    "update_plan_variables",
		TargetKind:   "plan variables",
		Summary:      "updated inflation",
		DocumentPath: "plan.json",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Record(ctx, rec))

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, got.TargetID)
	assert.Empty(t, got.PlanID)
}

func TestSQLiteJournalRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteJournalRepo(newTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteJournalRepo_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteJournalRepo(newTestDB(t))

	require.NoError(t, repo.Record(ctx, newRecord("c1", time.Now())))
	assert.Error(t, repo.Record(ctx, newRecord("c1", time.Now())))
}

func TestSQLiteJournalRepo_ListRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteJournalRepo(newTestDB(t))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, newRecord(fmt.Sprintf("c%d", i), base.Add(time.Duration(i)*time.Minute))))
	}

	recent, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "c4", recent[0].ID)
	assert.Equal(t, "c3", recent[1].ID)
	assert.Equal(t, "c2", recent[2].ID)

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5, "non-positive limit falls back to the default")
}

func TestSQLiteJournalRepo_ListRecent_SameTimestampUsesInsertOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteJournalRepo(newTestDB(t))

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, newRecord("first", at)))
	require.NoError(t, repo.Record(ctx, newRecord("second", at)))

	recent, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].ID)
}

func TestSQLiteJournalRepo_ListRecent_Empty(t *testing.T) {
	repo := NewSQLiteJournalRepo(newTestDB(t))

	recent, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

// TestSQLiteJournalRepo_ReadDuringWrite checks that listing the journal while
// a writer appends never fails or returns half-written rows.
func TestSQLiteJournalRepo_ReadDuringWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteJournalRepo(newConcurrentTestDB(t))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			if err := repo.Record(ctx, newRecord(fmt.Sprintf("c%02d", i), base.Add(time.Duration(i)*time.Second))); err != nil {
				t.Errorf("writer: record %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				recent, err := repo.ListRecent(ctx, 50)
				if err != nil {
					t.Errorf("reader %d: list recent: %v", reader, err)
					return
				}
				for _, c := range recent {
					if c.ID == "" || c.Operation == "" {
						t.Errorf("reader %d: incomplete record %+v", reader, c)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	recent, err := repo.ListRecent(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, recent, 20)
}

func TestNoopJournalRepo(t *testing.T) {
	ctx := context.Background()
	var repo NoopJournalRepo

	require.NoError(t, repo.Record(ctx, newRecord("c1", time.Now())))
	_, err := repo.GetByID(ctx, "c1")
	assert.ErrorIs(t, err, ErrNotFound)
	recent, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestSQLiteJournalRepo_InsideTransaction(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)

	tx, err := database.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteJournalRepo(tx).Record(ctx, newRecord("c1", time.Now())))
	require.NoError(t, tx.Rollback())

	_, err = NewSQLiteJournalRepo(database).GetByID(ctx, "c1")
	assert.ErrorIs(t, err, ErrNotFound, "rolled back entries are gone")
}
