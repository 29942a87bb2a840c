package domain

// Identified is implemented by every addressable entity.
type Identified interface {
	EntityID() string
}

func (a *Account) EntityID() string   { return a.ID }
func (d *Debt) EntityID() string      { return d.ID }
func (a *Asset) EntityID() string     { return a.ID }
func (p *Plan) EntityID() string      { return p.ID }
func (e *Event) EntityID() string     { return e.ID }
func (m *Milestone) EntityID() string { return m.ID }

// FindByID scans items for id. A miss is not an error; callers decide.
func FindByID[T Identified](items []T, id string) (T, int, bool) {
	for i, item := range items {
		if item.EntityID() == id {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// RemoveAt returns items without the element at i.
func RemoveAt[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}

// FindPlan returns the plan with the given id.
func (d *Document) FindPlan(id string) (*Plan, error) {
	p, _, ok := FindByID(d.Plans, id)
	if !ok {
		return nil, NewNotFound("plan", id)
	}
	return p, nil
}

// AccountRef is a savings or investment account together with the
// collection it lives in. Both collections form one account namespace.
type AccountRef struct {
	Kind AccountKind
	*Account
}

// accountList returns the physical collection backing kind.
func (t *Today) accountList(kind AccountKind) *[]*Account {
	switch kind {
	case AccountSavings:
		return &t.SavingsAccounts
	case AccountInvestment:
		return &t.InvestmentAccounts
	}
	return nil
}

// FindAccount looks in savings accounts, then investment accounts; the
// first match wins.
func (t *Today) FindAccount(id string) (AccountRef, error) {
	for _, kind := range AccountKinds {
		if a, _, ok := FindByID(*t.accountList(kind), id); ok {
			return AccountRef{Kind: kind, Account: a}, nil
		}
	}
	return AccountRef{}, NewNotFound("account", id)
}

// Accounts returns every account, savings first.
func (t *Today) Accounts() []AccountRef {
	refs := make([]AccountRef, 0, len(t.SavingsAccounts)+len(t.InvestmentAccounts))
	for _, kind := range AccountKinds {
		for _, a := range *t.accountList(kind) {
			refs = append(refs, AccountRef{Kind: kind, Account: a})
		}
	}
	return refs
}

// AccountsOf returns the accounts of a single kind.
func (t *Today) AccountsOf(kind AccountKind) []*Account {
	if l := t.accountList(kind); l != nil {
		return *l
	}
	return nil
}

// AddAccount appends a to the collection for kind.
func (t *Today) AddAccount(kind AccountKind, a *Account) error {
	l := t.accountList(kind)
	if l == nil {
		return &ValidationError{
			Field:    "kind",
			Problem:  "unknown account kind",
			Expected: "savings or investment",
			Received: string(kind),
		}
	}
	*l = append(*l, a)
	return nil
}

// RemoveAccount deletes the account with id using the same lookup order
// as FindAccount.
func (t *Today) RemoveAccount(id string) (AccountRef, error) {
	for _, kind := range AccountKinds {
		l := t.accountList(kind)
		if a, i, ok := FindByID(*l, id); ok {
			*l = RemoveAt(*l, i)
			return AccountRef{Kind: kind, Account: a}, nil
		}
	}
	return AccountRef{}, NewNotFound("account", id)
}

func (t *Today) FindDebt(id string) (*Debt, error) {
	d, _, ok := FindByID(t.Debts, id)
	if !ok {
		return nil, NewNotFound("debt", id)
	}
	return d, nil
}

func (t *Today) FindAsset(id string) (*Asset, error) {
	a, _, ok := FindByID(t.Assets, id)
	if !ok {
		return nil, NewNotFound("asset", id)
	}
	return a, nil
}

// FindEvent returns the event of the given kind with id.
func (p *Plan) FindEvent(kind EventKind, id string) (*Event, error) {
	e, _, ok := FindByID(p.Events(kind), id)
	if !ok {
		return nil, NewNotFound(string(kind)+" event", id)
	}
	return e, nil
}

// RemoveEvent deletes the event of the given kind with id.
func (p *Plan) RemoveEvent(kind EventKind, id string) (*Event, error) {
	l := p.eventList(kind, false)
	if l == nil {
		return nil, NewNotFound(string(kind)+" event", id)
	}
	e, i, ok := FindByID(l.Events, id)
	if !ok {
		return nil, NewNotFound(string(kind)+" event", id)
	}
	l.Events = RemoveAt(l.Events, i)
	return e, nil
}

func (p *Plan) FindMilestone(id string) (*Milestone, error) {
	m, _, ok := FindByID(p.Milestones, id)
	if !ok {
		return nil, NewNotFound("milestone", id)
	}
	return m, nil
}

func (p *Plan) FindComputedMilestone(id string) (*Milestone, error) {
	m, _, ok := FindByID(p.ComputedMilestones, id)
	if !ok {
		return nil, NewNotFound("computed milestone", id)
	}
	return m, nil
}

// ResolvesMilestone reports whether id names a user-defined milestone, a
// computed milestone or a built-in milestone of this plan.
func (p *Plan) ResolvesMilestone(id string) bool {
	if IsBuiltinMilestone(id) {
		return true
	}
	if _, _, ok := FindByID(p.Milestones, id); ok {
		return true
	}
	_, _, ok := FindByID(p.ComputedMilestones, id)
	return ok
}

// IDs lists the id of every entity in the document: accounts, debts,
// assets, plans and everything nested in each plan.
func (d *Document) IDs() []string {
	var ids []string
	for _, ref := range d.Today.Accounts() {
		ids = append(ids, ref.ID)
	}
	for _, x := range d.Today.Debts {
		ids = append(ids, x.ID)
	}
	for _, x := range d.Today.Assets {
		ids = append(ids, x.ID)
	}
	for _, p := range d.Plans {
		ids = append(ids, p.ID)
		for _, kind := range EventKinds {
			for _, e := range p.Events(kind) {
				ids = append(ids, e.ID)
			}
		}
		for _, m := range p.Milestones {
			ids = append(ids, m.ID)
		}
		for _, m := range p.ComputedMilestones {
			ids = append(ids, m.ID)
		}
	}
	return ids
}
