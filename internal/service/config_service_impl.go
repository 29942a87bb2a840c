package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/validate"
)

// configOperations names the journal operation for each block update.
var configOperations = map[domain.ConfigBlock]string{
	domain.BlockVariables:          "update_plan_variables",
	domain.BlockWithdrawalStrategy: "update_withdrawal_strategy",
	domain.BlockMonteCarlo:         "update_montecarlo_settings",
}

type planConfigService struct {
	session *Session
}

func NewPlanConfigService(session *Session) PlanConfigService {
	return &planConfigService{session: session}
}

// Get returns the block's record, or an empty record when the plan has
// never set it.
func (s *planConfigService) Get(_ context.Context, block domain.ConfigBlock, planID string) (domain.Record, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := configBlock(block); err != nil {
		return nil, err
	}
	var rec domain.Record
	err := s.session.View(func(doc *domain.Document, _ string) error {
		p, err := doc.FindPlan(planID)
		if err != nil {
			return err
		}
		rec = maps.Clone(p.Block(block))
		return nil
	})
	if rec == nil && err == nil {
		rec = domain.Record{}
	}
	return rec, err
}

// Update sets the supplied keys and leaves every other key untouched. The
// block is created on first use.
func (s *planConfigService) Update(ctx context.Context, block domain.ConfigBlock, req contract.UpdateConfigRequest) (domain.Record, error) {
	if err := s.session.requireLoaded(); err != nil {
		return nil, err
	}
	if err := configBlock(block); err != nil {
		return nil, err
	}
	if len(req.Values) == 0 {
		return nil, &domain.ValidationError{
			Field:    "values",
			Problem:  "no keys supplied",
			Expected: "an object with at least one key",
		}
	}
	if err := validate.ConfigRecord(block, req.Values); err != nil {
		return nil, err
	}

	var merged domain.Record
	err := s.session.Mutate(ctx, configOperations[block], "plan "+string(block), func(doc *domain.Document, rec *domain.ChangeRecord) error {
		p, err := doc.FindPlan(req.PlanID)
		if err != nil {
			return err
		}
		merged = p.Block(block).Merge(req.Values)
		if err := p.SetBlock(block, merged); err != nil {
			return err
		}

		keys := slices.Sorted(maps.Keys(req.Values))
		rec.TargetID, rec.PlanID = p.ID, p.ID
		rec.Summary = fmt.Sprintf("set %s keys %s", block, strings.Join(keys, ", "))
		return nil
	})
	return merged, err
}
