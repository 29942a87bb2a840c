package service

import (
	"context"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/validate"
)

type documentService struct {
	session *Session
}

func NewDocumentService(session *Session) DocumentService {
	return &documentService{session: session}
}

func (s *documentService) Load(ctx context.Context, req contract.LoadDocumentRequest) (*contract.DocumentStatus, error) {
	doc, err := s.session.Load(ctx, req.Path)
	if err != nil {
		return nil, err
	}
	return &contract.DocumentStatus{Path: req.Path, LastUpdated: doc.Meta.LastUpdated, Plans: len(doc.Plans)}, nil
}

func (s *documentService) Current(_ context.Context) (*contract.DocumentStatus, error) {
	var status *contract.DocumentStatus
	err := s.session.View(func(doc *domain.Document, path string) error {
		status = &contract.DocumentStatus{Path: path, LastUpdated: doc.Meta.LastUpdated, Plans: len(doc.Plans)}
		return nil
	})
	return status, err
}

func (s *documentService) Summary(_ context.Context) (*contract.DocumentSummary, error) {
	var summary *contract.DocumentSummary
	err := s.session.View(func(doc *domain.Document, path string) error {
		summary = Summarize(path, doc)
		return nil
	})
	return summary, err
}

// Summarize aggregates counts and decimal totals of doc.
func Summarize(path string, doc *domain.Document) *contract.DocumentSummary {
	totals := doc.Today.Totals()
	summary := &contract.DocumentSummary{
		Path:               path,
		SavingsAccounts:    len(doc.Today.SavingsAccounts),
		InvestmentAccounts: len(doc.Today.InvestmentAccounts),
		Debts:              len(doc.Today.Debts),
		Assets:             len(doc.Today.Assets),
		Savings:            totals.Savings.StringFixed(2),
		Investment:         totals.Investment.StringFixed(2),
		AssetTotal:         totals.Assets.StringFixed(2),
		DebtTotal:          totals.Debt.StringFixed(2),
		NetWorth:           totals.NetWorth().StringFixed(2),
		Plans:              make([]contract.PlanSummary, 0, len(doc.Plans)),
	}
	for _, p := range doc.Plans {
		summary.Plans = append(summary.Plans, summarizePlan(p))
	}
	return summary
}

func (s *documentService) Validate(_ context.Context) (*contract.ValidationReport, error) {
	var report *contract.ValidationReport
	err := s.session.View(func(doc *domain.Document, _ string) error {
		report = Audit(doc)
		return nil
	})
	return report, err
}

// Audit runs the whole-document checks and collects every problem.
func Audit(doc *domain.Document) *contract.ValidationReport {
	problems := []string{}
	for _, err := range validate.Document(doc) {
		problems = append(problems, err.Error())
	}
	return &contract.ValidationReport{Valid: len(problems) == 0, Problems: problems}
}

// CheckDateReference validates a reference without touching the document.
func (s *documentService) CheckDateReference(_ context.Context, req contract.CheckDateReferenceRequest) (*domain.DateReference, error) {
	return validate.ParseDateReference(domain.CoalesceStr(req.Field, "reference"), req.Reference)
}

// CheckCriteria validates criteria against the loaded document. Milestone
// references are only resolved when a plan is named.
func (s *documentService) CheckCriteria(_ context.Context, req contract.CheckCriteriaRequest) ([]domain.Criterion, error) {
	var criteria []domain.Criterion
	err := s.session.View(func(doc *domain.Document, _ string) error {
		var plan *domain.Plan
		if req.PlanID != "" {
			p, err := doc.FindPlan(req.PlanID)
			if err != nil {
				return err
			}
			plan = p
		}
		var err error
		criteria, err = checkedCriteria(req.Criteria, doc, plan)
		return err
	})
	return criteria, err
}
