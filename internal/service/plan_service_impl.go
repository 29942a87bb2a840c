package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
)

type planService struct {
	session *Session
}

func NewPlanService(session *Session) PlanService {
	return &planService{session: session}
}

func (s *planService) List(_ context.Context) ([]contract.PlanSummary, error) {
	summaries := []contract.PlanSummary{}
	err := s.session.View(func(doc *domain.Document, _ string) error {
		for _, p := range doc.Plans {
			summaries = append(summaries, summarizePlan(p))
		}
		return nil
	})
	return summaries, err
}

func (s *planService) Get(_ context.Context, planID string) (*domain.Plan, error) {
	var plan *domain.Plan
	err := s.session.View(func(doc *domain.Document, _ string) error {
		var err error
		plan, err = doc.FindPlan(planID)
		return err
	})
	return plan, err
}

func (s *planService) Update(ctx context.Context, req contract.UpdatePlanRequest) (*domain.Plan, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := requireNameIfPresent("name", req.Name); err != nil {
		return nil, err
	}

	var plan *domain.Plan
	err := s.session.Mutate(ctx, "update_plan", "plan", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		p, err := doc.FindPlan(req.PlanID)
		if err != nil {
			return err
		}
		setIfPresent(&p.Name, req.Name)
		setPtrIfPresent(&p.Active, req.Active)

		rec.TargetID, rec.PlanID = p.ID, p.ID
		rec.Summary = fmt.Sprintf("updated plan %q", p.Name)
		plan = p
		return nil
	})
	return plan, err
}

// Duplicate appends a deep copy of a plan under a new id and name. Ids of
// nested events and milestones are kept as they are.
func (s *planService) Duplicate(ctx context.Context, req contract.DuplicatePlanRequest) (*domain.Plan, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := requireName("name", req.Name); err != nil {
		return nil, err
	}

	var plan *domain.Plan
	err := s.session.Mutate(ctx, "duplicate_plan", "plan", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		src, err := doc.FindPlan(req.PlanID)
		if err != nil {
			return err
		}
		cp, err := src.Clone()
		if err != nil {
			return err
		}
		cp.ID = s.session.newID()
		cp.Name = req.Name
		cp.LastUpdated = s.session.nowMillis()
		doc.Plans = append(doc.Plans, cp)

		rec.TargetID, rec.PlanID = cp.ID, cp.ID
		rec.Summary = fmt.Sprintf("duplicated plan %q as %q", src.Name, cp.Name)
		plan = cp
		return nil
	})
	return plan, err
}

func (s *planService) Delete(ctx context.Context, planID string) (*contract.DeleteResult, error) {
	var result *contract.DeleteResult
	err := s.session.Mutate(ctx, "delete_plan", "plan", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		p, i, ok := domain.FindByID(doc.Plans, planID)
		if !ok {
			return domain.NewNotFound("plan", planID)
		}
		if len(doc.Plans) == 1 {
			return &domain.InvariantViolation{Rule: "cannot delete the last plan; a document must keep at least one plan"}
		}
		doc.Plans = domain.RemoveAt(doc.Plans, i)

		rec.TargetID, rec.PlanID = p.ID, p.ID
		rec.Summary = fmt.Sprintf("deleted plan %q", p.Name)
		result = deleted(p.ID, p.Name)
		return nil
	})
	return result, err
}
