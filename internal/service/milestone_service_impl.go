package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/validate"
)

type milestoneService struct {
	session *Session
}

func NewMilestoneService(session *Session) MilestoneService {
	return &milestoneService{session: session}
}

func (s *milestoneService) List(_ context.Context, planID string) ([]*domain.Milestone, error) {
	milestones := []*domain.Milestone{}
	err := s.session.View(func(doc *domain.Document, _ string) error {
		p, err := doc.FindPlan(planID)
		if err != nil {
			return err
		}
		milestones = append(milestones, p.Milestones...)
		return nil
	})
	return milestones, err
}

// ListComputed returns the milestones the projection engine derived for
// the plan. They are read-only here.
func (s *milestoneService) ListComputed(_ context.Context, planID string) ([]*domain.Milestone, error) {
	milestones := []*domain.Milestone{}
	err := s.session.View(func(doc *domain.Document, _ string) error {
		p, err := doc.FindPlan(planID)
		if err != nil {
			return err
		}
		milestones = append(milestones, p.ComputedMilestones...)
		return nil
	})
	return milestones, err
}

func (s *milestoneService) Get(_ context.Context, planID, milestoneID string) (*domain.Milestone, error) {
	var milestone *domain.Milestone
	err := s.session.View(func(doc *domain.Document, _ string) error {
		p, err := doc.FindPlan(planID)
		if err != nil {
			return err
		}
		milestone, err = p.FindMilestone(milestoneID)
		return err
	})
	return milestone, err
}

func (s *milestoneService) Add(ctx context.Context, req contract.AddMilestoneRequest) (*domain.Milestone, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := requireName("name", req.Name); err != nil {
		return nil, err
	}

	var milestone *domain.Milestone
	err := s.session.Mutate(ctx, "add_milestone", "milestone", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		p, err := doc.FindPlan(req.PlanID)
		if err != nil {
			return err
		}
		criteria := []domain.Criterion{}
		if contract.PresentNonNull(req.Criteria) {
			if criteria, err = checkedCriteria(req.Criteria, doc, p); err != nil {
				return err
			}
		}

		milestone = &domain.Milestone{
			ID:       s.session.newID(),
			Name:     req.Name,
			Icon:     domain.StrFromPtr(req.Icon),
			Color:    domain.StrFromPtr(req.Color),
			Criteria: criteria,
		}
		p.Milestones = append(p.Milestones, milestone)

		rec.TargetID, rec.PlanID = milestone.ID, p.ID
		rec.Summary = fmt.Sprintf("added milestone %q with %d criteria", milestone.Name, len(criteria))
		return nil
	})
	return milestone, err
}

// Update applies the supplied fields. Supplied criteria replace the whole
// list after validation.
func (s *milestoneService) Update(ctx context.Context, req contract.UpdateMilestoneRequest) (*domain.Milestone, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := requireNameIfPresent("name", req.Name); err != nil {
		return nil, err
	}

	var milestone *domain.Milestone
	err := s.session.Mutate(ctx, "update_milestone", "milestone", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		p, err := doc.FindPlan(req.PlanID)
		if err != nil {
			return err
		}
		m, err := p.FindMilestone(req.MilestoneID)
		if err != nil {
			return err
		}

		var criteria []domain.Criterion
		if contract.Present(req.Criteria) {
			if criteria, err = checkedCriteria(req.Criteria, doc, p); err != nil {
				return err
			}
		}

		setIfPresent(&m.Name, req.Name)
		setIfPresent(&m.Icon, req.Icon)
		setIfPresent(&m.Color, req.Color)
		if criteria != nil {
			m.Criteria = criteria
		}

		rec.TargetID, rec.PlanID = m.ID, p.ID
		rec.Summary = fmt.Sprintf("updated milestone %q", m.Name)
		milestone = m
		return nil
	})
	return milestone, err
}

func (s *milestoneService) Delete(ctx context.Context, planID, milestoneID string) (*contract.DeleteResult, error) {
	var result *contract.DeleteResult
	err := s.session.Mutate(ctx, "delete_milestone", "milestone", func(doc *domain.Document, rec *domain.ChangeRecord) error {
		p, err := doc.FindPlan(planID)
		if err != nil {
			return err
		}
		m, i, ok := domain.FindByID(p.Milestones, milestoneID)
		if !ok {
			return domain.NewNotFound("milestone", milestoneID)
		}
		p.Milestones = domain.RemoveAt(p.Milestones, i)

		rec.TargetID, rec.PlanID = m.ID, p.ID
		rec.Summary = fmt.Sprintf("deleted milestone %q", m.Name)
		result = deleted(m.ID, m.Name)
		return nil
	})
	return result, err
}

func checkedCriteria(raw json.RawMessage, doc *domain.Document, plan *domain.Plan) ([]domain.Criterion, error) {
	criteria, err := validate.ParseCriteria("criteria", raw)
	if err != nil {
		return nil, err
	}
	if err := validate.Criteria("criteria", criteria, doc, plan); err != nil {
		return nil, err
	}
	return criteria, nil
}
