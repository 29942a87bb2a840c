package contract

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresent(t *testing.T) {
	assert.False(t, Present(nil))
	assert.False(t, Present(json.RawMessage("  ")))
	assert.True(t, Present(json.RawMessage("null")))
	assert.True(t, Present(json.RawMessage(`{"type":"keyword"}`)))

	assert.False(t, PresentNonNull(nil))
	assert.False(t, PresentNonNull(json.RawMessage(" null ")))
	assert.True(t, PresentNonNull(json.RawMessage(`0`)))
}

func TestUpdateRequests_ZeroValuesArePresent(t *testing.T) {
	var req UpdateDebtRequest
	require.NoError(t, json.Unmarshal([]byte(`{"debtId": "d1", "amount": 0, "name": ""}`), &req))

	require.NotNil(t, req.Amount)
	assert.Equal(t, 0.0, *req.Amount)
	require.NotNil(t, req.Name)
	assert.Empty(t, *req.Name)
	assert.Nil(t, req.InterestRate)
}

func TestUpdateEventRequest_KeepsRawReferences(t *testing.T) {
	var req UpdateEventRequest
	require.NoError(t, json.Unmarshal([]byte(`{"planId": "p", "eventId": "e", "end": null}`), &req))

	assert.False(t, Present(req.Start))
	assert.True(t, Present(req.End), "explicit null is supplied")
	assert.False(t, PresentNonNull(req.End))
}

func TestAccountView_MarshalFlattensKind(t *testing.T) {
	view := AccountView{
		Kind:    domain.AccountInvestment,
		Account: &domain.Account{ID: "a1", Name: "Brokerage", Balance: domain.Float64Ptr(10)},
	}
	out, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "a1", "name": "Brokerage", "balance": 10, "kind": "investment"}`, string(out))
}
