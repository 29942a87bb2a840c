package domain

import "github.com/shopspring/decimal"

// Totals sums the snapshot's balances. Amounts are added as decimals so
// cents do not drift across many accounts.
type Totals struct {
	Savings    decimal.Decimal
	Investment decimal.Decimal
	Assets     decimal.Decimal
	Debt       decimal.Decimal
}

// NetWorth is savings + investment + assets - debt.
func (t Totals) NetWorth() decimal.Decimal {
	return t.Savings.Add(t.Investment).Add(t.Assets).Sub(t.Debt)
}

func (t *Today) Totals() Totals {
	var out Totals
	for _, a := range t.SavingsAccounts {
		out.Savings = out.Savings.Add(amount(a.Balance))
	}
	for _, a := range t.InvestmentAccounts {
		out.Investment = out.Investment.Add(amount(a.Balance))
	}
	for _, a := range t.Assets {
		out.Assets = out.Assets.Add(amount(a.Amount))
	}
	for _, d := range t.Debts {
		out.Debt = out.Debt.Add(amount(d.Amount))
	}
	return out
}

// amount reads an optional money field; a missing amount counts as zero.
func amount(p *float64) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*p)
}

// ProgressPoint converts the totals into a progress entry dated at ms.
func (t Totals) ProgressPoint(ms int64) *ProgressPoint {
	return &ProgressPoint{
		Date:       ms,
		NetWorth:   t.NetWorth().InexactFloat64(),
		Savings:    t.Savings.InexactFloat64(),
		Investment: t.Investment.InexactFloat64(),
		Assets:     t.Assets.InexactFloat64(),
		Debt:       t.Debt.InexactFloat64(),
	}
}
