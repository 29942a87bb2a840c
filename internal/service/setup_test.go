package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/repository"
	"github.com/alexanderramin/projectionctl/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc     *Services
	repo    *repository.MemoryDocumentRepo
	journal *repository.SQLiteJournalRepo
}

// newTestEnv loads the sample document into a session backed by an
// in-memory repo and an in-memory journal. New ids come out as id-1, id-2...
func newTestEnv(t *testing.T, opts ...testutil.DocumentOption) *testEnv {
	t.Helper()
	repo := testutil.SampleRepo(t, opts...)
	journal := repository.NewSQLiteJournalRepo(testutil.NewTestDB(t))

	session := NewSession(repo,
		WithJournal(journal),
		WithIDGenerator(NewSequenceGenerator("id-")),
		WithClock(testutil.FixedClock),
	)
	_, err := session.Load(context.Background(), testutil.SampleDocumentPath)
	require.NoError(t, err)

	return &testEnv{svc: NewServices(session, journal), repo: repo, journal: journal}
}

// stored decodes what the repo last wrote.
func (e *testEnv) stored(t *testing.T) *domain.Document {
	t.Helper()
	var doc domain.Document
	require.NoError(t, json.Unmarshal(e.repo.Bytes(testutil.SampleDocumentPath), &doc))
	return &doc
}

func (e *testEnv) journalEntries(t *testing.T) []*domain.ChangeRecord {
	t.Helper()
	records, err := e.journal.ListRecent(context.Background(), 100)
	require.NoError(t, err)
	return records
}

func ptr[T any](v T) *T { return &v }

func raw(s string) json.RawMessage { return json.RawMessage(s) }
