package testutil

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/alexanderramin/projectionctl/internal/repository"
)

// SampleDocumentPath is the key SampleRepo stores the sample document under.
const SampleDocumentPath = "sample.json"

// SampleDocumentJSON is a realistic document. It carries keys the model
// does not know about (uiTheme, color, note, seed) so round trips can be
// checked for fidelity.
const SampleDocumentJSON = `{
  "meta": {"lastUpdated": 1700000000000, "schemaVersion": 3},
  "uiTheme": "dark",
  "today": {
    "savingsAccounts": [
      {"id": "sav-1", "name": "Emergency fund", "type": "hisa", "balance": 15000},
      {"id": "shared", "name": "Joint savings", "balance": 2500.5}
    ],
    "investmentAccounts": [
      {"id": "inv-1", "name": "Brokerage", "type": "taxable", "balance": 85000},
      {"id": "shared", "name": "Shadowed investment", "balance": 1}
    ],
    "debts": [
      {"id": "debt-1", "name": "Mortgage", "type": "mortgage", "amount": 240000, "interestRate": 3.1, "monthlyPayment": 1450}
    ],
    "assets": [
      {"id": "asset-1", "name": "House", "type": "realEstate", "amount": 410000}
    ]
  },
  "plans": [
    {
      "id": "plan-1",
      "name": "Base case",
      "active": true,
      "lastUpdated": 1700000000000,
      "income": {"events": [
        {"id": "inc-1", "name": "Salary", "amount": 95000, "frequency": "annual",
         "start": {"type": "keyword", "value": "now"},
         "end": {"type": "milestone", "value": "retirement"},
         "color": "#8ec07c"}
      ]},
      "expenses": {"events": [
        {"id": "exp-1", "name": "Living", "amount": 4200, "frequency": "monthly",
         "start": {"type": "keyword", "value": "now"},
         "end": {"type": "keyword", "value": "endOfPlan"}}
      ]},
      "milestones": [
        {"id": "ms-1", "name": "Debt free", "icon": "flag",
         "criteria": [{"type": "debt", "value": 0, "refId": "debt-1", "operator": "<="}],
         "note": "user authored"}
      ],
      "computedMilestones": [
        {"id": "cm-1", "name": "Coast FIRE", "criteria": []}
      ],
      "variables": {"inflation": 2.5, "partTimeStart": {"type": "year", "value": "2040"}},
      "withdrawalStrategy": {"rate": 4},
      "montecarlo": {"runs": 1000, "seed": 42}
    },
    {
      "id": "plan-2",
      "name": "Early retirement",
      "active": false
    }
  ]
}
`

// SampleDocument decodes SampleDocumentJSON.
func SampleDocument(t *testing.T) *domain.Document {
	t.Helper()
	var doc domain.Document
	if err := json.Unmarshal([]byte(SampleDocumentJSON), &doc); err != nil {
		t.Fatalf("decoding sample document: %v", err)
	}
	return &doc
}

// SampleRepo returns an in-memory repo holding the sample document at
// SampleDocumentPath.
func SampleRepo(t *testing.T, opts ...DocumentOption) *repository.MemoryDocumentRepo {
	t.Helper()
	doc := SampleDocument(t)
	for _, opt := range opts {
		opt(doc)
	}
	repo := repository.NewMemoryDocumentRepo(FixedClock)
	if err := repo.Put(SampleDocumentPath, doc); err != nil {
		t.Fatalf("storing sample document: %v", err)
	}
	return repo
}

// DocumentOption adjusts a fixture document before it is stored.
type DocumentOption func(*domain.Document)

// WithOnlyPlan drops every plan except the one with id.
func WithOnlyPlan(id string) DocumentOption {
	return func(d *domain.Document) {
		if p, _, ok := domain.FindByID(d.Plans, id); ok {
			d.Plans = []*domain.Plan{p}
		}
	}
}

func WithPlan(p *domain.Plan) DocumentOption {
	return func(d *domain.Document) {
		d.Plans = append(d.Plans, p)
	}
}

// NewTestPlan builds a minimal active plan.
func NewTestPlan(id, name string) *domain.Plan {
	active := true
	return &domain.Plan{ID: id, Name: name, Active: &active}
}

// NewTestEvent builds an event spanning now to endOfPlan.
func NewTestEvent(id, name string, amount float64) *domain.Event {
	return &domain.Event{
		ID:     id,
		Name:   name,
		Amount: domain.Float64Ptr(amount),
		Start:  domain.KeywordRef(domain.KeywordNow),
		End:    domain.KeywordRef(domain.KeywordEndOfPlan),
	}
}
