package validate

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/projectionctl/internal/domain"
)

// temporalKeys lists configuration keys that hold a DateReference.
var temporalKeys = map[domain.ConfigBlock][]string{
	domain.BlockVariables:          {"partTimeStart", "partTimeEnd"},
	domain.BlockWithdrawalStrategy: {"start", "end"},
}

// ConfigRecord validates the temporal keys present in a configuration record.
func ConfigRecord(block domain.ConfigBlock, rec domain.Record) error {
	keys := temporalKeys[block]
	for _, k := range keys {
		raw, ok := rec[k]
		if !ok {
			continue
		}
		if _, err := ParseDateReference(fmt.Sprintf("%s.%s", block, k), raw); err != nil {
			return err
		}
	}
	return nil
}

// Document audits a whole document and returns every problem found, in
// document order.
func Document(doc *domain.Document) []error {
	var errs []error

	errs = append(errs, duplicateIDs("plans", doc.Plans)...)
	errs = append(errs, duplicateAccountIDs(doc.Today.Accounts())...)
	errs = append(errs, duplicateIDs("today.debts", doc.Today.Debts)...)
	errs = append(errs, duplicateIDs("today.assets", doc.Today.Assets)...)

	for i, plan := range doc.Plans {
		errs = append(errs, validatePlan(fmt.Sprintf("plans[%d]", i), doc, plan)...)
	}
	return errs
}

func validatePlan(prefix string, doc *domain.Document, plan *domain.Plan) []error {
	var errs []error

	for _, kind := range domain.EventKinds {
		events := plan.Events(kind)
		listField := fmt.Sprintf("%s.%s", prefix, kind)
		errs = append(errs, duplicateIDs(listField, events)...)
		for j, e := range events {
			f := fmt.Sprintf("%s[%d]", listField, j)
			if e.Start != nil {
				if err := DateReference(f+".start", e.Start); err != nil {
					errs = append(errs, err)
				}
			}
			if e.End != nil {
				if err := DateReference(f+".end", e.End); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}

	errs = append(errs, duplicateIDs(prefix+".milestones", plan.Milestones)...)
	for j, m := range plan.Milestones {
		f := fmt.Sprintf("%s.milestones[%d].criteria", prefix, j)
		if err := Criteria(f, m.Criteria, doc, plan); err != nil {
			errs = append(errs, err)
		}
	}

	for _, block := range []domain.ConfigBlock{domain.BlockVariables, domain.BlockWithdrawalStrategy} {
		if err := ConfigRecord(block, plan.Block(block)); err != nil {
			errs = append(errs, fmt.Errorf("%s.%w", prefix, err))
		}
	}
	return errs
}

func duplicateIDs[T domain.Identified](field string, items []T) []error {
	seen := make(map[string]int, len(items))
	var errs []error
	for i, item := range items {
		id := item.EntityID()
		if first, ok := seen[id]; ok {
			errs = append(errs, &domain.ValidationError{
				Field:   fmt.Sprintf("%s[%d].id", field, i),
				Problem: fmt.Sprintf("duplicate id %q (first used at index %d)", id, first),
			})
			continue
		}
		seen[id] = i
	}
	return errs
}

func duplicateAccountIDs(refs []domain.AccountRef) []error {
	kinds := make(map[string][]domain.AccountKind)
	var order []string
	for _, ref := range refs {
		if _, ok := kinds[ref.ID]; !ok {
			order = append(order, ref.ID)
		}
		kinds[ref.ID] = append(kinds[ref.ID], ref.Kind)
	}
	var errs []error
	for _, id := range order {
		if len(kinds[id]) < 2 {
			continue
		}
		where := make([]string, len(kinds[id]))
		for i, k := range kinds[id] {
			where[i] = string(k)
		}
		sort.Strings(where)
		errs = append(errs, &domain.ValidationError{
			Field:   "today.accounts",
			Problem: fmt.Sprintf("account id %q is used %d times (%v); lookups resolve to the first match, savings before investment", id, len(where), where),
		})
	}
	return errs
}
