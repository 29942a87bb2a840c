// Package contract defines the argument and result shapes of every
// operation. Optional fields are pointers or raw JSON so that presence can
// be told apart from zero values: a supplied 0 or "" must overwrite.
package contract

import (
	"bytes"
	"encoding/json"

	"github.com/alexanderramin/projectionctl/internal/domain"
)

// Present reports whether raw was supplied at all. An explicit null counts
// as supplied.
func Present(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) > 0
}

// PresentNonNull reports whether raw was supplied with a non-null value.
func PresentNonNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && !bytes.Equal(t, []byte("null"))
}

type LoadDocumentRequest struct {
	Path string `json:"path"`
}

type CheckDateReferenceRequest struct {
	Field     string          `json:"field,omitempty"`
	Reference json.RawMessage `json:"reference"`
}

type CheckCriteriaRequest struct {
	PlanID   string          `json:"planId,omitempty"`
	Criteria json.RawMessage `json:"criteria"`
}

type ListAccountsRequest struct {
	Kind string `json:"kind,omitempty"`
}

type AddAccountRequest struct {
	Kind    string   `json:"kind"`
	Name    string   `json:"name"`
	Type    *string  `json:"type,omitempty"`
	Balance *float64 `json:"balance,omitempty"`
}

type UpdateAccountRequest struct {
	AccountID string   `json:"accountId"`
	Name      *string  `json:"name,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Balance   *float64 `json:"balance,omitempty"`
}

type AddDebtRequest struct {
	Name           string   `json:"name"`
	Type           *string  `json:"type,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	InterestRate   *float64 `json:"interestRate,omitempty"`
	MonthlyPayment *float64 `json:"monthlyPayment,omitempty"`
}

type UpdateDebtRequest struct {
	DebtID         string   `json:"debtId"`
	Name           *string  `json:"name,omitempty"`
	Type           *string  `json:"type,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	InterestRate   *float64 `json:"interestRate,omitempty"`
	MonthlyPayment *float64 `json:"monthlyPayment,omitempty"`
}

type AddAssetRequest struct {
	Name   string   `json:"name"`
	Type   *string  `json:"type,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
}

type UpdateAssetRequest struct {
	AssetID string   `json:"assetId"`
	Name    *string  `json:"name,omitempty"`
	Type    *string  `json:"type,omitempty"`
	Amount  *float64 `json:"amount,omitempty"`
}

type UpdatePlanRequest struct {
	PlanID string  `json:"planId"`
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type DuplicatePlanRequest struct {
	PlanID string `json:"planId"`
	Name   string `json:"name"`
}

// AddEventRequest creates an income, expense or priority event. Missing
// Start/End default to keyword now / endOfPlan.
type AddEventRequest struct {
	PlanID     string          `json:"planId"`
	Name       string          `json:"name"`
	Type       *string         `json:"type,omitempty"`
	Amount     *float64        `json:"amount,omitempty"`
	AmountType *string         `json:"amountType,omitempty"`
	Frequency  *string         `json:"frequency,omitempty"`
	Start      json.RawMessage `json:"start,omitempty"`
	End        json.RawMessage `json:"end,omitempty"`
}

type UpdateEventRequest struct {
	PlanID     string          `json:"planId"`
	EventID    string          `json:"eventId"`
	Name       *string         `json:"name,omitempty"`
	Type       *string         `json:"type,omitempty"`
	Amount     *float64        `json:"amount,omitempty"`
	AmountType *string         `json:"amountType,omitempty"`
	Frequency  *string         `json:"frequency,omitempty"`
	Start      json.RawMessage `json:"start,omitempty"`
	End        json.RawMessage `json:"end,omitempty"`
}

type AddMilestoneRequest struct {
	PlanID   string          `json:"planId"`
	Name     string          `json:"name"`
	Icon     *string         `json:"icon,omitempty"`
	Color    *string         `json:"color,omitempty"`
	Criteria json.RawMessage `json:"criteria,omitempty"`
}

type UpdateMilestoneRequest struct {
	PlanID      string          `json:"planId"`
	MilestoneID string          `json:"milestoneId"`
	Name        *string         `json:"name,omitempty"`
	Icon        *string         `json:"icon,omitempty"`
	Color       *string         `json:"color,omitempty"`
	Criteria    json.RawMessage `json:"criteria,omitempty"`
}

// UpdateConfigRequest merges Values into one of a plan's configuration
// blocks.
type UpdateConfigRequest struct {
	PlanID string        `json:"planId"`
	Values domain.Record `json:"values"`
}

type RecentChangesRequest struct {
	Limit int `json:"limit,omitempty"`
}

type PlanRequest struct {
	PlanID string `json:"planId"`
}

type EventRequest struct {
	PlanID  string `json:"planId"`
	EventID string `json:"eventId"`
}

type MilestoneRequest struct {
	PlanID      string `json:"planId"`
	MilestoneID string `json:"milestoneId"`
}

type AccountRequest struct {
	AccountID string `json:"accountId"`
}

type DebtRequest struct {
	DebtID string `json:"debtId"`
}

type AssetRequest struct {
	AssetID string `json:"assetId"`
}
