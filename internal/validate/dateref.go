// Package validate checks the two expression languages embedded in a
// projection document: DateReference boundaries and milestone criteria.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/projectionctl/internal/domain"
)

var (
	yearPattern = regexp.MustCompile(`^\d{4}$`)
	// Partial ISO dates are accepted; anything after the day is ignored.
	datePattern = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?`)
)

const referenceExample = `an object like {"type":"keyword","value":"now"}`

// ParseDateReference decodes raw JSON supplied for field and validates it.
func ParseDateReference(field string, raw json.RawMessage) (*domain.DateReference, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, requiredReference(field)
	}
	if trimmed[0] != '{' {
		return nil, &domain.ValidationError{
			Field:    field,
			Problem:  "date reference must be an object",
			Expected: referenceExample,
			Received: string(trimmed),
		}
	}
	var ref domain.DateReference
	if err := json.Unmarshal(trimmed, &ref); err != nil {
		return nil, &domain.ValidationError{
			Field:    field,
			Problem:  fmt.Sprintf("malformed date reference: %v", err),
			Expected: referenceExample,
			Received: string(trimmed),
		}
	}
	if err := DateReference(field, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// DateReference checks ref against the shape its type requires. field names
// the embedding field so errors can be located.
func DateReference(field string, ref *domain.DateReference) error {
	if ref == nil {
		return requiredReference(field)
	}
	if ref.Type == "" {
		return &domain.ValidationError{
			Field:    field + ".type",
			Problem:  "date reference type is required",
			Expected: "one of " + joinTypes(),
		}
	}
	if !knownReferenceType(ref.Type) {
		return &domain.ValidationError{
			Field:    field + ".type",
			Problem:  "unknown date reference type",
			Expected: "one of " + joinTypes(),
			Received: fmt.Sprintf("%q", ref.Type),
		}
	}
	if ref.Value.IsZero() {
		return &domain.ValidationError{
			Field:   field + ".value",
			Problem: fmt.Sprintf("value is required for a %s reference", ref.Type),
		}
	}
	if err := referenceValue(field+".value", ref); err != nil {
		return err
	}
	return modifier(field+".modifier", ref.Modifier)
}

func referenceValue(field string, ref *domain.DateReference) error {
	s, isString := ref.Value.AsString()

	switch domain.ReferenceType(ref.Type) {
	case domain.RefKeyword:
		if !isString || !isKeyword(s) {
			return &domain.ValidationError{
				Field:    field,
				Problem:  "unknown keyword",
				Expected: "one of " + strings.Join(domain.Keywords, ", "),
				Received: ref.Value.Describe(),
			}
		}
	case domain.RefYear:
		if !isString || !yearPattern.MatchString(s) {
			return &domain.ValidationError{
				Field:    field,
				Problem:  "year reference must be a 4-digit year string",
				Expected: `a string like "2059"`,
				Received: ref.Value.Describe(),
			}
		}
	case domain.RefDate:
		if !isString || !datePattern.MatchString(s) {
			return &domain.ValidationError{
				Field:    field,
				Problem:  "date reference must be a YYYY, YYYY-MM or YYYY-MM-DD string",
				Expected: `a string like "2027-06-01"`,
				Received: ref.Value.Describe(),
			}
		}
	case domain.RefMilestone:
		if !isString || strings.TrimSpace(s) == "" {
			return &domain.ValidationError{
				Field:    field,
				Problem:  "milestone reference must name a milestone",
				Expected: "a milestone id or one of " + strings.Join(domain.BuiltinMilestones, ", "),
				Received: ref.Value.Describe(),
			}
		}
	}
	return nil
}

func modifier(field string, m domain.Value) error {
	switch m.Kind() {
	case domain.ValueAbsent, domain.ValueNumber:
		return nil
	case domain.ValueString:
		s, _ := m.AsString()
		if s == domain.ModifierInclude || s == domain.ModifierExclude {
			return nil
		}
	}
	return &domain.ValidationError{
		Field:    field,
		Problem:  "invalid modifier",
		Expected: `a year offset number or "include"/"exclude"`,
		Received: m.Describe(),
	}
}

func requiredReference(field string) error {
	return &domain.ValidationError{
		Field:    field,
		Problem:  "date reference is required",
		Expected: referenceExample,
	}
}

func knownReferenceType(t string) bool {
	for _, rt := range domain.ReferenceTypes {
		if string(rt) == t {
			return true
		}
	}
	return false
}

func isKeyword(s string) bool {
	for _, k := range domain.Keywords {
		if k == s {
			return true
		}
	}
	return false
}

func joinTypes() string {
	names := make([]string, len(domain.ReferenceTypes))
	for i, rt := range domain.ReferenceTypes {
		names[i] = string(rt)
	}
	return strings.Join(names, ", ")
}
