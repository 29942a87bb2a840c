package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
)

type debtService struct {
	session *Session
}

func NewDebtService(session *Session) DebtService {
	return &debtService{session: session}
}

func (s *debtService) List(_ context.Context) ([]*domain.Debt, error) {
	debts := []*domain.Debt{}
	err := s.session.View(func(doc *domain.Document, _ string) error {
		debts = append(debts, doc.Today.Debts...)
		return nil
	})
	return debts, err
}

func (s *debtService) Get(_ context.Context, id string) (*domain.Debt, error) {
	var debt *domain.Debt
	err := s.session.View(func(doc *domain.Document, _ string) error {
		var err error
		debt, err = doc.Today.FindDebt(id)
		return err
	})
	return debt, err
}

func (s *debtService) Add(ctx context.Context, req contract.AddDebtRequest) (*domain.Debt, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := requireName("name", req.Name); err != nil {
		return nil, err
	}

	var debt *domain.Debt
	err := s.session.Mutate(ctx, "add_debt", "debt", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		debt = &domain.Debt{
			ID:     s.session.newID(),
			Name:   req.Name,
			Type:   domain.StrFromPtr(req.Type),
			Amount: domain.Float64Ptr(domain.Float64FromPtrWithDefault(0, req.Amount)),
		}
		setPtrIfPresent(&debt.InterestRate, req.InterestRate)
		setPtrIfPresent(&debt.MonthlyPayment, req.MonthlyPayment)
		doc.Today.Debts = append(doc.Today.Debts, debt)

		rec.TargetID = debt.ID
		rec.Summary = fmt.Sprintf("added debt %q", debt.Name)
		return nil
	})
	return debt, err
}

func (s *debtService) Update(ctx context.Context, req contract.UpdateDebtRequest) (*domain.Debt, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := requireNameIfPresent("name", req.Name); err != nil {
		return nil, err
	}

	var debt *domain.Debt
	err := s.session.Mutate(ctx, "update_debt", "debt", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		d, err := doc.Today.FindDebt(req.DebtID)
		if err != nil {
			return err
		}
		setIfPresent(&d.Name, req.Name)
		setIfPresent(&d.Type, req.Type)
		setPtrIfPresent(&d.Amount, req.Amount)
		setPtrIfPresent(&d.InterestRate, req.InterestRate)
		setPtrIfPresent(&d.MonthlyPayment, req.MonthlyPayment)

		rec.TargetID = d.ID
		rec.Summary = fmt.Sprintf("updated debt %q", d.Name)
		debt = d
		return nil
	})
	return debt, err
}

func (s *debtService) Delete(ctx context.Context, id string) (*contract.DeleteResult, error) {
	var result *contract.DeleteResult
	err := s.session.Mutate(ctx, "delete_debt", "debt", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		d, i, ok := domain.FindByID(doc.Today.Debts, id)
		if !ok {
			return domain.NewNotFound("debt", id)
		}
		doc.Today.Debts = domain.RemoveAt(doc.Today.Debts, i)

		rec.TargetID = d.ID
		rec.Summary = fmt.Sprintf("deleted debt %q", d.Name)
		result = deleted(d.ID, d.Name)
		return nil
	})
	return result, err
}
