package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_AddDefaultsBoundaries(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"absent", "", ""},
		{"null", "null", "null"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := env.svc.Events.Add(ctx, domain.EventPriority, contract.AddEventRequest{
				PlanID: "plan-1",
				Name:   "Emergency fund top-up",
				Start:  raw(tc.start),
				End:    raw(tc.end),
			})
			require.NoError(t, err)
			s, _ := e.Start.Value.AsString()
			en, _ := e.End.Value.AsString()
			assert.Equal(t, "keyword", e.Start.Type)
			assert.Equal(t, domain.KeywordNow, s)
			assert.Equal(t, domain.KeywordEndOfPlan, en)
		})
	}

	stored := env.stored(t)
	p, err := stored.FindPlan("plan-1")
	require.NoError(t, err)
	assert.Len(t, p.Events(domain.EventPriority), 2, "priorities list is created on first add")
}

func TestEventService_AddValidatesReferences(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.Events.Add(ctx, domain.EventExpense, contract.AddEventRequest{
		PlanID: "plan-1", Name: "Wedding", End: raw(`{"type": "date", "value": "next spring"}`),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end.value", verr.Field)

	_, err = env.svc.Events.Add(ctx, domain.EventExpense, contract.AddEventRequest{PlanID: "plan-1", Name: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.svc.Events.Add(ctx, "bonus", contract.AddEventRequest{PlanID: "plan-1", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.svc.Events.Add(ctx, domain.EventExpense, contract.AddEventRequest{PlanID: "plan-9", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 0, env.repo.Saves())
}

func TestEventService_AddKeepsSuppliedFields(t *testing.T) {
	env := newTestEnv(t)

	e, err := env.svc.Events.Add(context.Background(), domain.EventIncome, contract.AddEventRequest{
		PlanID:    "plan-1",
		Name:      "Pension",
		Amount:    ptr(24000.0),
		Frequency: ptr("annual"),
		Start:     raw(`{"type": "milestone", "value": "retirement"}`),
		End:       raw(`{"type": "keyword", "value": "never"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", e.ID)
	assert.Equal(t, "annual", e.Frequency)
	assert.Equal(t, "milestone", e.Start.Type)
	assert.Equal(t, "keyword", e.End.Type)
}

func TestEventService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	e, err := env.svc.Events.Update(ctx, domain.EventIncome, contract.UpdateEventRequest{
		PlanID: "plan-1", EventID: "inc-1", Amount: ptr(0.0),
		End: raw(`{"type": "year", "value": "2050", "modifier": 1}`),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *e.Amount)
	assert.Equal(t, "Salary", e.Name)
	assert.Equal(t, "year", e.End.Type)
	assert.Equal(t, "keyword", e.Start.Type, "start untouched")

	out := string(env.repo.Bytes(testutil.SampleDocumentPath))
	assert.Contains(t, out, `"color": "#8ec07c"`, "unknown event keys survive updates")
}

func TestEventService_UpdateRejectsNullBoundary(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Events.Update(context.Background(), domain.EventIncome, contract.UpdateEventRequest{
		PlanID: "plan-1", EventID: "inc-1", Start: raw(`null`),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "start", verr.Field)
	assert.Contains(t, verr.Problem, "required")
	assert.Equal(t, 0, env.repo.Saves())
}

func TestEventService_KindsAreSeparate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.Events.Get(ctx, domain.EventExpense, "plan-1", "inc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.svc.Events.Delete(ctx, domain.EventExpense, "plan-1", "inc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := env.svc.Events.Delete(ctx, domain.EventIncome, "plan-1", "inc-1")
	require.NoError(t, err)
	assert.Equal(t, "Salary", res.Deleted)

	events, err := env.svc.Events.List(ctx, domain.EventIncome, "plan-1")
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events)
}

func TestEventService_ListOnPlanWithoutEvents(t *testing.T) {
	env := newTestEnv(t)

	events, err := env.svc.Events.List(context.Background(), domain.EventExpense, "plan-2")
	require.NoError(t, err)
	assert.Empty(t, events)
}
