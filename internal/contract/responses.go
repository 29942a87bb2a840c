package contract

import (
	"encoding/json"

	"github.com/alexanderramin/projectionctl/internal/domain"
)

// DeleteResult confirms a removal by echoing the entity's display name.
type DeleteResult struct {
	Deleted string `json:"deleted"`
	ID      string `json:"id"`
}

// AccountView is an account annotated with the collection it lives in.
type AccountView struct {
	Kind    domain.AccountKind
	Account *domain.Account
}

// MarshalJSON flattens the kind into the account object.
func (v AccountView) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(v.Account)
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	kind, _ := json.Marshal(v.Kind)
	obj["kind"] = kind
	return json.Marshal(obj)
}

// NewAccountView converts a located account into its wire shape.
func NewAccountView(ref domain.AccountRef) AccountView {
	return AccountView{Kind: ref.Kind, Account: ref.Account}
}

// PlanSummary is the list_plans row for one plan.
type PlanSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Active     bool   `json:"active"`
	Income     int    `json:"incomeEvents"`
	Expenses   int    `json:"expenseEvents"`
	Priorities int    `json:"priorityEvents"`
	Milestones int    `json:"milestones"`
}

// DocumentStatus describes the loaded document.
type DocumentStatus struct {
	Path        string `json:"path"`
	LastUpdated int64  `json:"lastUpdated"`
	Plans       int    `json:"plans"`
}

// DocumentSummary aggregates the today snapshot.
type DocumentSummary struct {
	Path               string        `json:"path"`
	SavingsAccounts    int           `json:"savingsAccounts"`
	InvestmentAccounts int           `json:"investmentAccounts"`
	Debts              int           `json:"debts"`
	Assets             int           `json:"assets"`
	Savings            string        `json:"savingsTotal"`
	Investment         string        `json:"investmentTotal"`
	AssetTotal         string        `json:"assetTotal"`
	DebtTotal          string        `json:"debtTotal"`
	NetWorth           string        `json:"netWorth"`
	Plans              []PlanSummary `json:"plans"`
}

// ValidationReport lists every problem found by a document audit.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems"`
}
