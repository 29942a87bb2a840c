package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/projectionctl/internal/domain"
)

var (
	accountCollections   = []string{"savingsAccounts", "investmentAccounts"}
	debtCollections      = []string{"debts"}
	milestoneCollections = []string{"milestones", "computedMilestones",
		"built-in milestones (" + strings.Join(domain.BuiltinMilestones, ", ") + ")"}
)

// ParseCriteria decodes a criteria array supplied for field. Each element is
// decoded on its own so a malformed clause is reported by index.
func ParseCriteria(field string, raw json.RawMessage) ([]domain.Criterion, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &domain.ValidationError{
			Field:    field,
			Problem:  "criteria must be an array",
			Expected: `a list like [{"type":"netWorth","value":1000000}]`,
			Received: string(trimmed),
		}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &domain.ValidationError{
			Field:   field,
			Problem: fmt.Sprintf("malformed criteria: %v", err),
		}
	}
	criteria := make([]domain.Criterion, len(items))
	for i, item := range items {
		f := fmt.Sprintf("%s[%d]", field, i)
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, &domain.ValidationError{
				Field:    f,
				Problem:  "criterion must be an object",
				Received: string(item),
			}
		}
		if err := json.Unmarshal(item, &criteria[i]); err != nil {
			return nil, &domain.ValidationError{
				Field:    f,
				Problem:  fmt.Sprintf("malformed criterion: %v", err),
				Received: string(item),
			}
		}
	}
	return criteria, nil
}

// Criteria validates every clause in order and returns the first failure.
// Account and debt refIds are resolved against doc; milestone refIds are
// resolved against plan and skipped when plan is nil.
func Criteria(field string, criteria []domain.Criterion, doc *domain.Document, plan *domain.Plan) error {
	for i := range criteria {
		if err := criterion(fmt.Sprintf("%s[%d]", field, i), &criteria[i], doc, plan); err != nil {
			return err
		}
	}
	return nil
}

func criterion(field string, c *domain.Criterion, doc *domain.Document, plan *domain.Plan) error {
	if err := criterionShape(field, c); err != nil {
		return err
	}
	if c.RefID == "" {
		return nil
	}

	refErr := func(refType string, searched []string) error {
		return &domain.ReferentialIntegrityError{
			Field:    field + ".refId",
			RefType:  refType,
			RefID:    c.RefID,
			Searched: searched,
		}
	}

	switch domain.CriterionType(c.Type) {
	case domain.CriterionAccount:
		if doc == nil {
			return nil
		}
		if _, err := doc.Today.FindAccount(c.RefID); err != nil {
			return refErr("account", accountCollections)
		}
	case domain.CriterionDebt, domain.CriterionTotalDebt:
		if doc == nil {
			return nil
		}
		if _, err := doc.Today.FindDebt(c.RefID); err != nil {
			return refErr("debt", debtCollections)
		}
	case domain.CriterionMilestone:
		if plan != nil && !plan.ResolvesMilestone(c.RefID) {
			return refErr("milestone", milestoneCollections)
		}
	}
	return nil
}

// criterionShape enforces the modifier of every clause and the value type
// of the constrained criterion kinds. Values of unrecognized kinds pass
// unchecked.
func criterionShape(field string, c *domain.Criterion) error {
	if err := boundaryModifier(field+".modifier", c.Modifier); err != nil {
		return err
	}

	var want, expected string
	switch domain.CriterionType(c.Type) {
	case domain.CriterionYear, domain.CriterionDate:
		want, expected = "string", `a date string such as "2040" or "2040-06-01"`
	case domain.CriterionMilestone:
		want, expected = "string", "a milestone id string"
	case domain.CriterionNetWorth, domain.CriterionAccount, domain.CriterionTotalDebt:
		want, expected = "number", "a number (dollar amount or threshold)"
	default:
		return nil
	}

	var ok bool
	if want == "string" {
		_, ok = c.Value.AsString()
	} else {
		_, ok = c.Value.AsNumber()
	}
	if ok {
		return nil
	}
	return &domain.ValidationError{
		Field:    field + ".value",
		Problem:  fmt.Sprintf("type mismatch for %s criterion (value %s)", c.Type, c.Value.Describe()),
		Expected: expected,
		Received: c.Value.Kind().String(),
	}
}

// boundaryModifier accepts an absent modifier or one of "include"/"exclude".
func boundaryModifier(field string, m domain.Value) error {
	if m.Kind() == domain.ValueAbsent {
		return nil
	}
	if s, ok := m.AsString(); ok && (s == domain.ModifierInclude || s == domain.ModifierExclude) {
		return nil
	}
	return &domain.ValidationError{
		Field:    field,
		Problem:  "invalid modifier",
		Expected: `"include" or "exclude"`,
		Received: m.Describe(),
	}
}
