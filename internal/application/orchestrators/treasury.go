package orchestrators

import (
	"context"
	"log/slog"

	"churchportal/internal/domain/treasury"
)

// TreasuryStoreForOrchestrator defines the store interface needed by treasury orchestrators.
type TreasuryStoreForOrchestrator interface {
	AddContribution(ctx context.Context, c treasury.Contribution) error
}

// TreasuryDeps holds dependencies for the treasury orchestrators.
type TreasuryDeps struct {
	TreasuryStore TreasuryStoreForOrchestrator
	GenerateID    func() string
	Observer      MutationObserver
}

// RecordContributionInput carries input for recording a gift. Amount is in cents.
type RecordContributionInput struct {
	Member   string `json:"member"`
	Type     string `json:"type"`
	Amount   int64  `json:"amount"`
	Date     string `json:"date"`
	Envelope string `json:"envelope"`
}

// ExecuteRecordContribution records a tithe, offering or mission gift.
// PRE: caller may manage finance
// POST: contribution stored at the top of the ledger
func ExecuteRecordContribution(ctx context.Context, input RecordContributionInput, deps TreasuryDeps) (treasury.Contribution, error) {
	c := treasury.Contribution{
		ID:       deps.GenerateID(),
		Member:   input.Member,
		Type:     input.Type,
		Amount:   input.Amount,
		Date:     input.Date,
		Envelope: input.Envelope,
	}
	if err := c.Validate(); err != nil {
		return treasury.Contribution{}, err
	}
	if err := deps.TreasuryStore.AddContribution(ctx, c); err != nil {
		return treasury.Contribution{}, err
	}

	observe(deps.Observer, "contribution", "create")
	slog.Info("treasury_event", "event", "contribution_recorded", "contribution_id", c.ID, "type", c.Type, "amount", c.Amount)
	return c, nil
}
