package service

import "github.com/alexanderramin/projectionctl/internal/repository"

// Services bundles every service bound to one session.
type Services struct {
	Session    *Session
	Documents  DocumentService
	Accounts   AccountService
	Debts      DebtService
	Assets     AssetService
	Plans      PlanService
	Events     EventService
	Milestones MilestoneService
	Config     PlanConfigService
	Progress   ProgressService
	Journal    JournalService
}

func NewServices(session *Session, journal repository.JournalRepo) *Services {
	return &Services{
		Session:    session,
		Documents:  NewDocumentService(session),
		Accounts:   NewAccountService(session),
		Debts:      NewDebtService(session),
		Assets:     NewAssetService(session),
		Plans:      NewPlanService(session),
		Events:     NewEventService(session),
		Milestones: NewMilestoneService(session),
		Config:     NewPlanConfigService(session),
		Progress:   NewProgressService(session),
		Journal:    NewJournalService(journal),
	}
}
