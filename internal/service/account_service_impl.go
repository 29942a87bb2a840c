package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
)

type accountService struct {
	session *Session
}

func NewAccountService(session *Session) AccountService {
	return &accountService{session: session}
}

func (s *accountService) List(_ context.Context, req contract.ListAccountsRequest) ([]contract.AccountView, error) {
	var views []contract.AccountView
	err := s.session.View(func(doc *domain.Document, _ string) error {
		if req.Kind == "" {
			for _, ref := range doc.Today.Accounts() {
				views = append(views, contract.NewAccountView(ref))
			}
			return nil
		}
		kind, err := accountKind(req.Kind)
		if err != nil {
			return err
		}
		for _, a := range doc.Today.AccountsOf(kind) {
			views = append(views, contract.AccountView{Kind: kind, Account: a})
		}
		return nil
	})
	if views == nil && err == nil {
		views = []contract.AccountView{}
	}
	return views, err
}

func (s *accountService) Get(_ context.Context, id string) (contract.AccountView, error) {
	var view contract.AccountView
	err := s.session.View(func(doc *domain.Document, _ string) error {
		ref, err := doc.Today.FindAccount(id)
		if err != nil {
			return err
		}
		view = contract.NewAccountView(ref)
		return nil
	})
	return view, err
}

func (s *accountService) Add(ctx context.Context, req contract.AddAccountRequest) (contract.AccountView, error) {
	if err := s.session.requireLoaded(); err != nil {
		return contract.AccountView{}, err
	}
	kind, err := accountKind(req.Kind)
	if err != nil {
		return contract.AccountView{}, err
	}
	if err := requireName("name", req.Name); err != nil {
		return contract.AccountView{}, err
	}

	var view contract.AccountView
	err = s.session.Mutate(ctx, "add_account", "account", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		a := &domain.Account{
			ID:      s.session.newID(),
			Name:    req.Name,
			Type:    domain.StrFromPtr(req.Type),
			Balance: domain.Float64Ptr(domain.Float64FromPtrWithDefault(0, req.Balance)),
		}
		if err := doc.Today.AddAccount(kind, a); err != nil {
			return err
		}
		rec.TargetID = a.ID
		rec.Summary = fmt.Sprintf("added %s account %q", kind, a.Name)
		view = contract.AccountView{Kind: kind, Account: a}
		return nil
	})
	return view, err
}

func (s *accountService) Update(ctx context.Context, req contract.UpdateAccountRequest) (contract.AccountView, error) {
	if err := s.session.requireLoaded(); err != nil {
		return contract.AccountView{}, err
	}
	if err := requireNameIfPresent("name", req.Name); err != nil {
		return contract.AccountView{}, err
	}

	var view contract.AccountView
	err := s.session.Mutate(ctx, "update_account", "account", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		ref, err := doc.Today.FindAccount(req.AccountID)
		if err != nil {
			return err
		}
		setIfPresent(&ref.Name, req.Name)
		setIfPresent(&ref.Type, req.Type)
		setPtrIfPresent(&ref.Balance, req.Balance)

		rec.TargetID = ref.ID
		rec.Summary = fmt.Sprintf("updated %s account %q", ref.Kind, ref.Name)
		view = contract.NewAccountView(ref)
		return nil
	})
	return view, err
}

func (s *accountService) Delete(ctx context.Context, id string) (*contract.DeleteResult, error) {
	var result *contract.DeleteResult
	err := s.session.Mutate(ctx, "delete_account", "account", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		ref, err := doc.Today.RemoveAccount(id)
		if err != nil {
			return err
		}
		rec.TargetID = ref.ID
		rec.Summary = fmt.Sprintf("deleted %s account %q", ref.Kind, ref.Name)
		result = deleted(ref.ID, ref.Name)
		return nil
	})
	return result, err
}

func accountKind(s string) (domain.AccountKind, error) {
	for _, k := range domain.AccountKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", &domain.ValidationError{
		Field:    "kind",
		Problem:  "unknown account kind",
		Expected: "savings or investment",
		Received: s,
	}
}
