package web

import (
	"net/http"

	"churchportal/internal/application/orchestrators"
	"churchportal/internal/application/projections"
)

func treasuryOverview(w http.ResponseWriter, r *http.Request) (projections.TreasuryResult, bool) {
	if _, ok := requireAdmin(w, r); !ok {
		return projections.TreasuryResult{}, false
	}
	res, err := projections.QueryTreasury(r.Context(), projections.TreasuryDeps{TreasuryStore: stores.Treasury})
	if err != nil {
		internalError(w, err)
		return projections.TreasuryResult{}, false
	}
	return res, true
}

// handleTreasurySummary handles GET /api/treasury/summary
func handleTreasurySummary(w http.ResponseWriter, r *http.Request) {
	if res, ok := treasuryOverview(w, r); ok {
		writeJSON(w, http.StatusOK, res)
	}
}

// handleContributions handles GET /api/treasury/contributions
func handleContributions(w http.ResponseWriter, r *http.Request) {
	if res, ok := treasuryOverview(w, r); ok {
		writeJSON(w, http.StatusOK, res.Contributions)
	}
}

// handleBudgets handles GET /api/treasury/budgets
func handleBudgets(w http.ResponseWriter, r *http.Request) {
	if res, ok := treasuryOverview(w, r); ok {
		writeJSON(w, http.StatusOK, res.Budgets)
	}
}

// handleRecordContribution handles POST /api/treasury/contributions
func handleRecordContribution(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	var input orchestrators.RecordContributionInput
	if err := strictDecode(r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := orchestrators.ExecuteRecordContribution(r.Context(), input, orchestrators.TreasuryDeps{
		TreasuryStore: stores.Treasury,
		GenerateID:    generateID,
		Observer:      recorder,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}
