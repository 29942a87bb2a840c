package tools

import (
	"context"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTodayTools() {
	accounts, debts, assets := s.svc.Accounts, s.svc.Debts, s.svc.Assets

	addTool(s, mcp.NewTool("list_accounts",
		mcp.WithDescription("List savings and investment accounts, savings first."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("kind", mcp.Enum("savings", "investment"), mcp.Description("Only list one kind")),
	), accounts.List)

	addTool(s, mcp.NewTool("get_account",
		mcp.WithDescription("Get an account by id. Savings accounts are searched before investment accounts."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("accountId", mcp.Required()),
	), func(ctx context.Context, req contract.AccountRequest) (contract.AccountView, error) {
		return accounts.Get(ctx, req.AccountID)
	})

	addTool(s, mcp.NewTool("add_account",
		mcp.WithDescription("Add a savings or investment account."),
		mcp.WithString("kind", mcp.Required(), mcp.Enum("savings", "investment")),
		mcp.WithString("name", mcp.Required()),
		mcp.WithString("type"),
		mcp.WithNumber("balance"),
	), accounts.Add)

	addTool(s, mcp.NewTool("update_account",
		mcp.WithDescription("Update the supplied fields of an account."),
		mcp.WithString("accountId", mcp.Required()),
		mcp.WithString("name"),
		mcp.WithString("type"),
		mcp.WithNumber("balance"),
	), accounts.Update)

	addTool(s, mcp.NewTool("delete_account",
		mcp.WithDescription("Delete an account."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("accountId", mcp.Required()),
	), func(ctx context.Context, req contract.AccountRequest) (*contract.DeleteResult, error) {
		return accounts.Delete(ctx, req.AccountID)
	})

	addTool(s, mcp.NewTool("list_debts",
		mcp.WithDescription("List debts."),
		mcp.WithReadOnlyHintAnnotation(true),
	), func(ctx context.Context, _ struct{}) ([]*domain.Debt, error) {
		return debts.List(ctx)
	})

	addTool(s, mcp.NewTool("get_debt",
		mcp.WithDescription("Get a debt by id."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("debtId", mcp.Required()),
	), func(ctx context.Context, req contract.DebtRequest) (*domain.Debt, error) {
		return debts.Get(ctx, req.DebtID)
	})

	addTool(s, mcp.NewTool("add_debt",
		mcp.WithDescription("Add a debt."),
		mcp.WithString("name", mcp.Required()),
		mcp.WithString("type"),
		mcp.WithNumber("amount"),
		mcp.WithNumber("interestRate"),
		mcp.WithNumber("monthlyPayment"),
	), debts.Add)

	addTool(s, mcp.NewTool("update_debt",
		mcp.WithDescription("Update the supplied fields of a debt."),
		mcp.WithString("debtId", mcp.Required()),
		mcp.WithString("name"),
		mcp.WithString("type"),
		mcp.WithNumber("amount"),
		mcp.WithNumber("interestRate"),
		mcp.WithNumber("monthlyPayment"),
	), debts.Update)

	addTool(s, mcp.NewTool("delete_debt",
		mcp.WithDescription("Delete a debt."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("debtId", mcp.Required()),
	), func(ctx context.Context, req contract.DebtRequest) (*contract.DeleteResult, error) {
		return debts.Delete(ctx, req.DebtID)
	})

	addTool(s, mcp.NewTool("list_assets",
		mcp.WithDescription("List assets."),
		mcp.WithReadOnlyHintAnnotation(true),
	), func(ctx context.Context, _ struct{}) ([]*domain.Asset, error) {
		return assets.List(ctx)
	})

	addTool(s, mcp.NewTool("get_asset",
		mcp.WithDescription("Get an asset by id."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("assetId", mcp.Required()),
	), func(ctx context.Context, req contract.AssetRequest) (*domain.Asset, error) {
		return assets.Get(ctx, req.AssetID)
	})

	addTool(s, mcp.NewTool("add_asset",
		mcp.WithDescription("Add an asset."),
		mcp.WithString("name", mcp.Required()),
		mcp.WithString("type"),
		mcp.WithNumber("amount"),
	), assets.Add)

	addTool(s, mcp.NewTool("update_asset",
		mcp.WithDescription("Update the supplied fields of an asset."),
		mcp.WithString("assetId", mcp.Required()),
		mcp.WithString("name"),
		mcp.WithString("type"),
		mcp.WithNumber("amount"),
	), assets.Update)

	addTool(s, mcp.NewTool("delete_asset",
		mcp.WithDescription("Delete an asset."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("assetId", mcp.Required()),
	), func(ctx context.Context, req contract.AssetRequest) (*contract.DeleteResult, error) {
		return assets.Delete(ctx, req.AssetID)
	})
}
