package treasury

import (
	"context"

	domain "churchportal/internal/domain/treasury"
)

// Store persists treasury records. Contributions and reports are newest first,
// budgets keep department order.
type Store interface {
	ListContributions(ctx context.Context) ([]domain.Contribution, error)
	AddContribution(ctx context.Context, c domain.Contribution) error
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
	SaveBudget(ctx context.Context, b domain.Budget) error
	ListReports(ctx context.Context) ([]domain.Report, error)
	AddReport(ctx context.Context, r domain.Report) error
}
