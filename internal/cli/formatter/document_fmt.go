package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/projectionctl/internal/contract"
	"github.com/alexanderramin/projectionctl/internal/domain"
	"github.com/shopspring/decimal"
)

const shareBarWidth = 20

// FormatSummary renders balances, each holding's share of gross assets and
// the plan tree.
func FormatSummary(s *contract.DocumentSummary) string {
	var b strings.Builder

	b.WriteString(Dim(s.Path) + "\n\n")

	gross := decimal.Zero
	for _, v := range []string{s.Savings, s.Investment, s.AssetTotal} {
		gross = gross.Add(parseAmount(v))
	}

	rows := [][]string{
		{"Savings", fmt.Sprintf("%d", s.SavingsAccounts), Money(s.Savings), share(s.Savings, gross)},
		{"Investment", fmt.Sprintf("%d", s.InvestmentAccounts), Money(s.Investment), share(s.Investment, gross)},
		{"Assets", fmt.Sprintf("%d", s.Assets), Money(s.AssetTotal), share(s.AssetTotal, gross)},
		{"Debt", fmt.Sprintf("%d", s.Debts), Money(negate(s.DebtTotal)), ""},
	}
	b.WriteString(Table{
		Headers:    []string{"HOLDING", "COUNT", "TOTAL", "SHARE"},
		Rows:       rows,
		RightAlign: map[int]bool{1: true, 2: true},
	}.String())
	b.WriteString("\n" + Bold("Net worth  ") + Money(s.NetWorth) + "\n\n")

	b.WriteString(Header("Plans") + "\n")
	b.WriteString(RenderTree(planTree(s.Plans)))

	return RenderBox("Summary", b.String())
}

func planTree(plans []contract.PlanSummary) []TreeNode {
	nodes := make([]TreeNode, 0, len(plans))
	for _, p := range plans {
		node := TreeNode{
			Title: Bold(domain.CoalesceStr(p.Name, p.ID)),
			Badge: "inactive",
			Muted: !p.Active,
		}
		if p.Active {
			node.Badge = "active"
		}
		for _, c := range []struct {
			label string
			n     int
		}{
			{"income events", p.Income},
			{"expense events", p.Expenses},
			{"priority events", p.Priorities},
			{"milestones", p.Milestones},
		} {
			node.Children = append(node.Children, TreeNode{
				Title: fmt.Sprintf("%d %s", c.n, c.label),
				Muted: c.n == 0,
			})
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func share(amount string, gross decimal.Decimal) string {
	return RenderShare(parseAmount(amount), gross, shareBarWidth)
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func negate(s string) string {
	return parseAmount(s).Neg().StringFixed(2)
}

// FormatValidation renders an audit report.
func FormatValidation(path string, r *contract.ValidationReport) string {
	var b strings.Builder
	b.WriteString(ValidityIndicator(len(r.Problems)) + "  " + Dim(path) + "\n")
	if len(r.Problems) > 0 {
		b.WriteString("\n")
		for _, p := range r.Problems {
			b.WriteString(StyleRed.Render("  ✖ ") + p + "\n")
		}
	}
	return RenderBox("Validation", b.String())
}

// FormatJournal renders change records newest first as a table.
func FormatJournal(records []*domain.ChangeRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("No changes journaled yet.") + "\n"
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			HumanTimestamp(r.CreatedAt, now),
			StylePurple.Render(r.Operation),
			TruncID(r.TargetID),
			r.Summary,
		})
	}
	return RenderBox("Recent changes", RenderTable([]string{"WHEN", "OPERATION", "TARGET", "SUMMARY"}, rows))
}
