package domain

import (
	"encoding/json"
	"fmt"
)

// Document is the root of a projection export: the "today" snapshot, the
// plans built on it, the progress log and application settings.
type Document struct {
	Meta     Meta      `json:"meta"`
	Today    Today     `json:"today"`
	Plans    []*Plan   `json:"plans"`
	Progress *Progress `json:"progress,omitzero"`
	Settings Record    `json:"settings,omitzero"`

	state objectState
}

type Meta struct {
	// LastUpdated is the unix time in milliseconds of the last write.
	LastUpdated int64 `json:"lastUpdated,omitzero"`

	state objectState
}

// Today is the current financial snapshot shared by every plan.
type Today struct {
	SavingsAccounts    []*Account `json:"savingsAccounts,omitzero"`
	InvestmentAccounts []*Account `json:"investmentAccounts,omitzero"`
	Debts              []*Debt    `json:"debts,omitzero"`
	Assets             []*Asset   `json:"assets,omitzero"`

	state objectState
}

type Account struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type,omitzero"`
	Balance *float64 `json:"balance,omitzero"`

	state objectState
}

type Debt struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type,omitzero"`
	Amount         *float64 `json:"amount,omitzero"`
	InterestRate   *float64 `json:"interestRate,omitzero"`
	MonthlyPayment *float64 `json:"monthlyPayment,omitzero"`

	state objectState
}

type Asset struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Type   string   `json:"type,omitzero"`
	Amount *float64 `json:"amount,omitzero"`

	state objectState
}

// Plan is one projection scenario. Ids of nested entities are unique within
// their list inside the plan only.
type Plan struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Active             *bool        `json:"active,omitzero"`
	LastUpdated        int64        `json:"lastUpdated,omitzero"`
	Income             *EventList   `json:"income,omitzero"`
	Expenses           *EventList   `json:"expenses,omitzero"`
	Priorities         *EventList   `json:"priorities,omitzero"`
	Milestones         []*Milestone `json:"milestones,omitzero"`
	ComputedMilestones []*Milestone `json:"computedMilestones,omitzero"`
	Variables          Record       `json:"variables,omitzero"`
	WithdrawalStrategy Record       `json:"withdrawalStrategy,omitzero"`
	MonteCarlo         Record       `json:"montecarlo,omitzero"`

	state objectState
}

type EventList struct {
	Events []*Event `json:"events"`

	state objectState
}

// Event is an income, expense or priority entry of a plan.
type Event struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type,omitzero"`
	Amount     *float64       `json:"amount,omitzero"`
	AmountType string         `json:"amountType,omitzero"`
	Frequency  string         `json:"frequency,omitzero"`
	Start      *DateReference `json:"start,omitzero"`
	End        *DateReference `json:"end,omitzero"`

	state objectState
}

type Milestone struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Icon     string      `json:"icon,omitzero"`
	Color    string      `json:"color,omitzero"`
	Criteria []Criterion `json:"criteria,omitzero"`

	state objectState
}

// DateReference expresses a point in time: a keyword, a year, a (partial)
// date or a milestone. Modifier is either a signed year offset or an
// include/exclude boundary tag.
type DateReference struct {
	Type     string `json:"type"`
	Value    Value  `json:"value,omitzero"`
	Modifier Value  `json:"modifier,omitzero"`

	state objectState
}

// KeywordRef returns a keyword reference such as {type: keyword, value: now}.
func KeywordRef(keyword string) *DateReference {
	return &DateReference{Type: string(RefKeyword), Value: StringValue(keyword)}
}

// Criterion is one clause of a milestone trigger. Logic combines it with the
// previous clause; it is unused on the first.
type Criterion struct {
	Type      string `json:"type,omitzero"`
	Value     Value  `json:"value,omitzero"`
	ValueType string `json:"valueType,omitzero"`
	Operator  string `json:"operator,omitzero"`
	Modifier  Value  `json:"modifier,omitzero"`
	Logic     string `json:"logic,omitzero"`
	RefID     string `json:"refId,omitzero"`

	state objectState
}

type Progress struct {
	Data []*ProgressPoint `json:"data"`

	state objectState
}

// ProgressPoint is one tracked snapshot of the document's totals.
type ProgressPoint struct {
	Date       int64   `json:"date"`
	NetWorth   float64 `json:"netWorth"`
	Savings    float64 `json:"savings"`
	Investment float64 `json:"investment"`
	Assets     float64 `json:"assets"`
	Debt       float64 `json:"debt"`

	state objectState
}

// Clone returns a fully independent copy of the document.
func (d *Document) Clone() (*Document, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("cloning document: %w", err)
	}
	var c Document
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cloning document: %w", err)
	}
	return &c, nil
}

// Clone returns a fully independent copy of the plan, nested ids included.
func (p *Plan) Clone() (*Plan, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("cloning plan: %w", err)
	}
	var c Plan
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cloning plan: %w", err)
	}
	return &c, nil
}

// Events returns the plan's list for kind, or nil when the plan has none.
func (p *Plan) Events(kind EventKind) []*Event {
	if l := p.eventList(kind, false); l != nil {
		return l.Events
	}
	return nil
}

// eventList returns the owning list for kind, creating it when create is set.
func (p *Plan) eventList(kind EventKind, create bool) *EventList {
	var slot **EventList
	switch kind {
	case EventIncome:
		slot = &p.Income
	case EventExpense:
		slot = &p.Expenses
	case EventPriority:
		slot = &p.Priorities
	default:
		return nil
	}
	if *slot == nil && create {
		*slot = &EventList{Events: []*Event{}}
	}
	return *slot
}

// AppendEvent adds e to the plan's list for kind.
func (p *Plan) AppendEvent(kind EventKind, e *Event) error {
	l := p.eventList(kind, true)
	if l == nil {
		return fmt.Errorf("unknown event kind %q", kind)
	}
	l.Events = append(l.Events, e)
	return nil
}

// Block returns the configuration record named by b.
func (p *Plan) Block(b ConfigBlock) Record {
	switch b {
	case BlockVariables:
		return p.Variables
	case BlockWithdrawalStrategy:
		return p.WithdrawalStrategy
	case BlockMonteCarlo:
		return p.MonteCarlo
	}
	return nil
}

// SetBlock replaces the configuration record named by b.
func (p *Plan) SetBlock(b ConfigBlock, r Record) error {
	switch b {
	case BlockVariables:
		p.Variables = r
	case BlockWithdrawalStrategy:
		p.WithdrawalStrategy = r
	case BlockMonteCarlo:
		p.MonteCarlo = r
	default:
		return fmt.Errorf("unknown configuration block %q", b)
	}
	return nil
}
