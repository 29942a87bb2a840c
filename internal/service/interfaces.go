package service

import (
	"context"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
)

type DocumentService interface {
	Load(ctx context.Context, req contract.LoadDocumentRequest) (*contract.DocumentStatus, error)
	Current(ctx context.Context) (*contract.DocumentStatus, error)
	Summary(ctx context.Context) (*contract.DocumentSummary, error)
	Validate(ctx context.Context) (*contract.ValidationReport, error)
	CheckDateReference(ctx context.Context, req contract.CheckDateReferenceRequest) (*domain.DateReference, error)
	CheckCriteria(ctx context.Context, req contract.CheckCriteriaRequest) ([]domain.Criterion, error)
}

type AccountService interface {
	List(ctx context.Context, req contract.ListAccountsRequest) ([]contract.AccountView, error)
	Get(ctx context.Context, id string) (contract.AccountView, error)
	Add(ctx context.Context, req contract.AddAccountRequest) (contract.AccountView, error)
	Update(ctx context.Context, req contract.UpdateAccountRequest) (contract.AccountView, error)
	Delete(ctx context.Context, id string) (*contract.DeleteResult, error)
}

type DebtService interface {
	List(ctx context.Context) ([]*domain.Debt, error)
	Get(ctx context.Context, id string) (*domain.Debt, error)
	Add(ctx context.Context, req contract.AddDebtRequest) (*domain.Debt, error)
	Update(ctx context.Context, req contract.UpdateDebtRequest) (*domain.Debt, error)
	Delete(ctx context.Context, id string) (*contract.DeleteResult, error)
}

type AssetService interface {
	List(ctx context.Context) ([]*domain.Asset, error)
	Get(ctx context.Context, id string) (*domain.Asset, error)
	Add(ctx context.Context, req contract.AddAssetRequest) (*domain.Asset, error)
	Update(ctx context.Context, req contract.UpdateAssetRequest) (*domain.Asset, error)
	Delete(ctx context.Context, id string) (*contract.DeleteResult, error)
}

type PlanService interface {
	List(ctx context.Context) ([]contract.PlanSummary, error)
	Get(ctx context.Context, planID string) (*domain.Plan, error)
	Update(ctx context.Context, req contract.UpdatePlanRequest) (*domain.Plan, error)
	Duplicate(ctx context.Context, req contract.DuplicatePlanRequest) (*domain.Plan, error)
	Delete(ctx context.Context, planID string) (*contract.DeleteResult, error)
}

// EventService manages the income, expense and priority lists of a plan.
// Every method takes the event kind it operates on.
type EventService interface {
	List(ctx context.Context, kind domain.EventKind, planID string) ([]*domain.Event, error)
	Get(ctx context.Context, kind domain.EventKind, planID, eventID string) (*domain.Event, error)
	Add(ctx context.Context, kind domain.EventKind, req contract.AddEventRequest) (*domain.Event, error)
	Update(ctx context.Context, kind domain.EventKind, req contract.UpdateEventRequest) (*domain.Event, error)
	Delete(ctx context.Context, kind domain.EventKind, planID, eventID string) (*contract.DeleteResult, error)
}

type MilestoneService interface {
	List(ctx context.Context, planID string) ([]*domain.Milestone, error)
	ListComputed(ctx context.Context, planID string) ([]*domain.Milestone, error)
	Get(ctx context.Context, planID, milestoneID string) (*domain.Milestone, error)
	Add(ctx context.Context, req contract.AddMilestoneRequest) (*domain.Milestone, error)
	Update(ctx context.Context, req contract.UpdateMilestoneRequest) (*domain.Milestone, error)
	Delete(ctx context.Context, planID, milestoneID string) (*contract.DeleteResult, error)
}

// PlanConfigService reads and key-merges a plan's configuration blocks.
type PlanConfigService interface {
	Get(ctx context.Context, block domain.ConfigBlock, planID string) (domain.Record, error)
	Update(ctx context.Context, block domain.ConfigBlock, req contract.UpdateConfigRequest) (domain.Record, error)
}

type ProgressService interface {
	Get(ctx context.Context) (*domain.Progress, error)
	Record(ctx context.Context) (*domain.ProgressPoint, error)
}

type JournalService interface {
	Recent(ctx context.Context, req contract.RecentChangesRequest) ([]*domain.ChangeRecord, error)
}
