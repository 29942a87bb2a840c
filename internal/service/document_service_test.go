package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/repository"
	"github.com/alexanderramin/projectionctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_LoadAndCurrent(t *testing.T) {
	ctx := context.Background()
	svc := NewServices(NewSession(testutil.SampleRepo(t)), nil)

	status, err := svc.Documents.Load(ctx, contract.LoadDocumentRequest{Path: testutil.SampleDocumentPath})
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), status.LastUpdated)
	assert.Equal(t, 2, status.Plans)

	current, err := svc.Documents.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, status, current)
}

func TestDocumentService_Summary(t *testing.T) {
	env := newTestEnv(t)

	s, err := env.svc.Documents.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, s.SavingsAccounts)
	assert.Equal(t, "17500.50", s.Savings)
	assert.Equal(t, "85001.00", s.Investment)
	assert.Equal(t, "410000.00", s.AssetTotal)
	assert.Equal(t, "240000.00", s.DebtTotal)
	assert.Equal(t, "272501.50", s.NetWorth)
	require.Len(t, s.Plans, 2)
}

func TestDocumentService_Validate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	report, err := env.svc.Documents.Validate(ctx)
	require.NoError(t, err)
	assert.False(t, report.Valid)
	require.Len(t, report.Problems, 1)
	assert.Contains(t, report.Problems[0], `"shared"`)

	_, err = env.svc.Accounts.Delete(ctx, "shared")
	require.NoError(t, err)

	report, err = env.svc.Documents.Validate(ctx)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.NotNil(t, report.Problems)
}

func TestDocumentService_CheckDateReference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ref, err := env.svc.Documents.CheckDateReference(ctx, contract.CheckDateReferenceRequest{
		Reference: raw(`{"type": "date", "value": "2031-04"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "date", ref.Type)

	_, err = env.svc.Documents.CheckDateReference(ctx, contract.CheckDateReferenceRequest{
		Field: "end", Reference: raw(`{"type": "year", "value": "31"}`),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end.value", verr.Field)

	_, err = env.svc.Documents.CheckDateReference(ctx, contract.CheckDateReferenceRequest{})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reference", verr.Field)
	assert.Equal(t, 0, env.repo.Saves())
}

func TestDocumentService_CheckCriteria(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	criteria := raw(`[{"type": "milestone", "value": "ghost", "refId": "ghost"}]`)

	_, err := env.svc.Documents.CheckCriteria(ctx, contract.CheckCriteriaRequest{Criteria: criteria})
	assert.NoError(t, err, "milestone refs are not resolved without a plan")

	_, err = env.svc.Documents.CheckCriteria(ctx, contract.CheckCriteriaRequest{PlanID: "plan-1", Criteria: criteria})
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	_, err = env.svc.Documents.CheckCriteria(ctx, contract.CheckCriteriaRequest{PlanID: "plan-9", Criteria: criteria})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProgressService_Record(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	empty, err := env.svc.Progress.Get(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)

	pt, err := env.svc.Progress.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutil.FixedTime.UnixMilli(), pt.Date)
	assert.Equal(t, 272501.5, pt.NetWorth)
	assert.Equal(t, 240000.0, pt.Debt)

	progress, err := env.svc.Progress.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, progress.Data, 1)

	entries := env.journalEntries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "recorded net worth 272501.50", entries[0].Summary)
}

func TestJournalService_Recent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	none, err := env.svc.Journal.Recent(ctx, contract.RecentChangesRequest{})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	for i := 0; i < 3; i++ {
		_, err := env.svc.Progress.Record(ctx)
		require.NoError(t, err)
	}
	recent, err := env.svc.Journal.Recent(ctx, contract.RecentChangesRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	_, err = env.svc.Journal.Recent(ctx, contract.RecentChangesRequest{Limit: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	disabled := NewJournalService(repository.NoopJournalRepo{})
	records, err := disabled.Recent(ctx, contract.RecentChangesRequest{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
