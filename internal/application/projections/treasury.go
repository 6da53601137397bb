package projections

import (
	"context"

	"churchportal/internal/domain/treasury"
)

// TreasuryDeps holds dependencies for QueryTreasury.
type TreasuryDeps struct {
	TreasuryStore TreasuryStore
}

// BudgetView is a budget with its derived figures.
type BudgetView struct {
	treasury.Budget
	Remaining    int64 `json:"remaining"`
	UsagePercent int   `json:"usage_percent"`
}

// TreasuryResult is the finance overview. All amounts are in cents.
type TreasuryResult struct {
	Summary       treasury.Summary        `json:"summary"`
	Contributions []treasury.Contribution `json:"contributions"`
	Budgets       []BudgetView            `json:"budgets"`
	Reports       []treasury.Report       `json:"reports"`
}

// QueryTreasury totals contributions by type and derives remaining budget per department.
// PRE: caller may manage finance
// INVARIANT: Summary.Balance == tithes + offerings + missions - expenses
func QueryTreasury(ctx context.Context, deps TreasuryDeps) (TreasuryResult, error) {
	contributions, err := deps.TreasuryStore.ListContributions(ctx)
	if err != nil {
		return TreasuryResult{}, err
	}
	budgets, err := deps.TreasuryStore.ListBudgets(ctx)
	if err != nil {
		return TreasuryResult{}, err
	}
	reports, err := deps.TreasuryStore.ListReports(ctx)
	if err != nil {
		return TreasuryResult{}, err
	}

	views := make([]BudgetView, 0, len(budgets))
	for _, b := range budgets {
		views = append(views, BudgetView{Budget: b, Remaining: b.Remaining(), UsagePercent: b.UsagePercent()})
	}
	return TreasuryResult{
		Summary:       treasury.Summarize(contributions, budgets),
		Contributions: contributions,
		Budgets:       views,
		Reports:       reports,
	}, nil
}
