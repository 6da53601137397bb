package treasury

import (
	"time"

	"churchportal/internal/domain/validation"
)

// DateLayout is the format of contribution and report dates.
const DateLayout = "2006-01-02"

// Contribution types
const (
	TypeTithe    = "tithe"
	TypeOffering = "offering"
	TypeMission  = "mission"
)

// ValidTypes contains all valid contribution types.
var ValidTypes = []string{TypeTithe, TypeOffering, TypeMission}

// Max length constants for user-editable fields.
const (
	MaxMemberLength   = 100
	MaxEnvelopeLength = 20
)

// Domain errors
var (
	ErrEmptyMember     = validation.New("member", "contribution member cannot be empty")
	ErrMemberTooLong   = validation.New("member", "contribution member cannot exceed 100 characters")
	ErrInvalidType     = validation.New("type", "contribution type must be one of: tithe, offering, mission")
	ErrNonPositive     = validation.New("amount", "contribution amount must be greater than zero")
	ErrInvalidDate     = validation.New("date", "contribution date must be formatted YYYY-MM-DD")
	ErrEnvelopeTooLong = validation.New("envelope", "contribution envelope cannot exceed 20 characters")
	ErrEmptyDepartment = validation.New("department", "budget department cannot be empty")
	ErrNegativeBudget  = validation.New("allocated", "budget amounts cannot be negative")
)

// Contribution is a recorded gift. Amount is in cents.
type Contribution struct {
	ID       string `json:"id"`
	Member   string `json:"member"`
	Type     string `json:"type"`
	Amount   int64  `json:"amount"`
	Date     string `json:"date"`
	Envelope string `json:"envelope"`
}

// Budget is a department's yearly allocation. Amounts are in cents.
type Budget struct {
	ID         string `json:"id"`
	Department string `json:"department"`
	Allocated  int64  `json:"allocated"`
	Spent      int64  `json:"spent"`
}

// Report is a published financial statement.
type Report struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"`
}

// Summary holds treasury totals in cents.
type Summary struct {
	TotalTithes    int64 `json:"total_tithes"`
	TotalOfferings int64 `json:"total_offerings"`
	TotalMissions  int64 `json:"total_missions"`
	TotalExpenses  int64 `json:"total_expenses"`
	Balance        int64 `json:"balance"`
}

// Validate checks if the Contribution has valid data.
// PRE: Contribution struct is populated
// POST: Returns nil if valid, a *validation.Error otherwise
func (c *Contribution) Validate() error {
	if validation.Blank(c.Member) {
		return ErrEmptyMember
	}
	if len(c.Member) > MaxMemberLength {
		return ErrMemberTooLong
	}
	if !validation.OneOf(c.Type, ValidTypes) {
		return ErrInvalidType
	}
	if c.Amount <= 0 {
		return ErrNonPositive
	}
	if _, err := time.Parse(DateLayout, c.Date); err != nil || len(c.Date) != len(DateLayout) {
		return ErrInvalidDate
	}
	if len(c.Envelope) > MaxEnvelopeLength {
		return ErrEnvelopeTooLong
	}
	return nil
}

// Validate checks if the Budget has valid data.
// PRE: Budget struct is populated
// POST: Returns nil if valid, a *validation.Error otherwise
func (b *Budget) Validate() error {
	if validation.Blank(b.Department) {
		return ErrEmptyDepartment
	}
	if b.Allocated < 0 || b.Spent < 0 {
		return ErrNegativeBudget
	}
	return nil
}

// Remaining is the unspent allocation; negative when overspent.
func (b *Budget) Remaining() int64 {
	return b.Allocated - b.Spent
}

// UsagePercent is the share of the allocation spent, rounded to the nearest percent.
func (b *Budget) UsagePercent() int {
	if b.Allocated <= 0 {
		return 0
	}
	return int((b.Spent*100 + b.Allocated/2) / b.Allocated)
}

// Summarize totals contributions by type and budget spending.
// INVARIANT: Balance == tithes + offerings + missions - expenses
func Summarize(contributions []Contribution, budgets []Budget) Summary {
	var s Summary
	for _, c := range contributions {
		switch c.Type {
		case TypeTithe:
			s.TotalTithes += c.Amount
		case TypeOffering:
			s.TotalOfferings += c.Amount
		case TypeMission:
			s.TotalMissions += c.Amount
		}
	}
	for _, b := range budgets {
		s.TotalExpenses += b.Spent
	}
	s.Balance = s.TotalTithes + s.TotalOfferings + s.TotalMissions - s.TotalExpenses
	return s
}
