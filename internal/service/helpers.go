package service

import (
	"strings"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
)

// setIfPresent overwrites *dst with *src when src was supplied. Zero values
// overwrite too.
func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// setPtrIfPresent stores a copy of *src in *dst when src was supplied.
func setPtrIfPresent[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func requireName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: field, Problem: "is required", Expected: "non-empty string"}
	}
	return nil
}

// requireNameIfPresent rejects a supplied blank name.
func requireNameIfPresent(field string, name *string) error {
	if name == nil {
		return nil
	}
	return requireName(field, *name)
}

func deleted(id, name string) *contract.DeleteResult {
	return &contract.DeleteResult{Deleted: domain.CoalesceStr(name, id), ID: id}
}

func eventKind(kind domain.EventKind) error {
	for _, k := range domain.EventKinds {
		if k == kind {
			return nil
		}
	}
	return &domain.ValidationError{
		Field:    "kind",
		Problem:  "unknown event kind",
		Expected: "income, expense or priority",
		Received: string(kind),
	}
}

func configBlock(block domain.ConfigBlock) error {
	switch block {
	case domain.BlockVariables, domain.BlockWithdrawalStrategy, domain.BlockMonteCarlo:
		return nil
	}
	return &domain.ValidationError{
		Field:    "block",
		Problem:  "unknown configuration block",
		Expected: "variables, withdrawalStrategy or montecarlo",
		Received: string(block),
	}
}

func summarizePlan(p *domain.Plan) contract.PlanSummary {
	return contract.PlanSummary{
		ID:         p.ID,
		Name:       p.Name,
		Active:     p.Active != nil && *p.Active,
		Income:     len(p.Events(domain.EventIncome)),
		Expenses:   len(p.Events(domain.EventExpense)),
		Priorities: len(p.Events(domain.EventPriority)),
		Milestones: len(p.Milestones),
	}
}
