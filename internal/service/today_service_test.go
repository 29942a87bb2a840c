package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_ListAndLookupOrder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	all, err := env.svc.Accounts.List(ctx, contract.ListAccountsRequest{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, domain.AccountSavings, all[0].Kind)
	assert.Equal(t, domain.AccountInvestment, all[3].Kind)

	inv, err := env.svc.Accounts.List(ctx, contract.ListAccountsRequest{Kind: "investment"})
	require.NoError(t, err)
	assert.Len(t, inv, 2)

	_, err = env.svc.Accounts.List(ctx, contract.ListAccountsRequest{Kind: "checking"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	shared, err := env.svc.Accounts.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountSavings, shared.Kind, "savings are searched first")
	assert.Equal(t, "Joint savings", shared.Account.Name)
}

func TestAccountService_Add(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	view, err := env.svc.Accounts.Add(ctx, contract.AddAccountRequest{
		Kind: "investment", Name: "Roth IRA", Type: ptr("roth"), Balance: ptr(6500.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", view.Account.ID)
	assert.Equal(t, domain.AccountInvestment, view.Kind)

	stored := env.stored(t)
	require.Len(t, stored.Today.InvestmentAccounts, 3)
	assert.Equal(t, "Roth IRA", stored.Today.InvestmentAccounts[2].Name)
	assert.Equal(t, 6500.0, *stored.Today.InvestmentAccounts[2].Balance)
}

func TestAccountService_AddValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.Accounts.Add(ctx, contract.AddAccountRequest{Kind: "crypto", Name: "Coins"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.svc.Accounts.Add(ctx, contract.AddAccountRequest{Kind: "savings", Name: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, env.repo.Saves())
}

func TestAccountService_UpdateOverwritesZeroValues(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	view, err := env.svc.Accounts.Update(ctx, contract.UpdateAccountRequest{
		AccountID: "sav-1", Balance: ptr(0.0), Type: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *view.Account.Balance)
	assert.Empty(t, view.Account.Type)
	assert.Equal(t, "Emergency fund", view.Account.Name, "absent fields are kept")

	_, err = env.svc.Accounts.Update(ctx, contract.UpdateAccountRequest{AccountID: "sav-1", Name: ptr("")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.svc.Accounts.Update(ctx, contract.UpdateAccountRequest{AccountID: "ghost", Balance: ptr(1.0)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountService_DeleteSharedIDRemovesSavingsFirst(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	res, err := env.svc.Accounts.Delete(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "Joint savings", res.Deleted)

	next, err := env.svc.Accounts.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountInvestment, next.Kind)

	_, err = env.svc.Accounts.Delete(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDebtService_CRUD(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	debt, err := env.svc.Debts.Add(ctx, contract.AddDebtRequest{Name: "Student loan", Amount: ptr(18000.0), InterestRate: ptr(0.0)})
	require.NoError(t, err)
	require.NotNil(t, debt.InterestRate)
	assert.Equal(t, 0.0, *debt.InterestRate)
	assert.Nil(t, debt.MonthlyPayment)

	updated, err := env.svc.Debts.Update(ctx, contract.UpdateDebtRequest{DebtID: debt.ID, MonthlyPayment: ptr(220.0), Amount: ptr(0.0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *updated.Amount)
	assert.Equal(t, 220.0, *updated.MonthlyPayment)
	assert.Equal(t, "Student loan", updated.Name)

	list, err := env.svc.Debts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	res, err := env.svc.Debts.Delete(ctx, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Student loan", res.Deleted)

	_, err = env.svc.Debts.Get(ctx, debt.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDebtService_UnknownIDWritesNothing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.Debts.Get(ctx, "debt-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = env.svc.Debts.Update(ctx, contract.UpdateDebtRequest{DebtID: "debt-404", Amount: ptr(1.0)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = env.svc.Debts.Delete(ctx, "debt-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 0, env.repo.Saves())
	assert.Empty(t, env.journalEntries(t))
	list, err := env.svc.Debts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAssetService_CRUD(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	asset, err := env.svc.Assets.Add(ctx, contract.AddAssetRequest{Name: "Boat"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *asset.Amount)

	_, err = env.svc.Assets.Update(ctx, contract.UpdateAssetRequest{AssetID: "asset-1", Amount: ptr(425000.0)})
	require.NoError(t, err)
	house, err := env.svc.Assets.Get(ctx, "asset-1")
	require.NoError(t, err)
	assert.Equal(t, 425000.0, *house.Amount)

	_, err = env.svc.Assets.Delete(ctx, "asset-9")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := env.svc.Assets.Delete(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "Boat", res.Deleted)
	assert.Equal(t, asset.ID, res.ID)
}
