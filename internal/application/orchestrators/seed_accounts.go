package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"churchportal/internal/domain/account"
)

// AccountSeedDeps holds stores needed for account seeding.
type AccountSeedDeps struct {
	AccountStore  seedAccountStore
	GenerateID    func() string
	Now           func() time.Time
	AdminEmail    string
	AdminPassword string
}

type seedAccountStore interface {
	Save(ctx context.Context, a account.Account) error
	GetByEmail(ctx context.Context, email string) (account.Account, error)
}

// accountDef defines a single login to seed.
type accountDef struct {
	Email      string
	Password   string
	Role       string
	FirstName  string
	LastName   string
	Department string
}

// DefaultAdminEmail and DefaultAdminPassword are the demo administrator credentials.
const (
	DefaultAdminEmail    = "admin@church.com"
	DefaultAdminPassword = "admin123"
)

func seedAccounts(adminEmail, adminPassword string) []accountDef {
	return []accountDef{
		{adminEmail, adminPassword, account.RoleAdmin, "Admin", "User", "Administration"},
		{"pastor@church.com", "leader123", account.RoleLeader, "John", "Johnson", "Pastoral"},
		{"member@church.com", "member123", account.RoleMember, "Mary", "Wilson", "Health Ministries"},
	}
}

// ExecuteSeedAccounts creates the admin, leader and member logins if they don't already exist.
// PRE: AdminEmail and AdminPassword are set (DefaultAdminEmail/DefaultAdminPassword in demo mode)
// POST: 3 accounts exist, one per role
func ExecuteSeedAccounts(ctx context.Context, deps AccountSeedDeps) error {
	created := 0
	for _, def := range seedAccounts(deps.AdminEmail, deps.AdminPassword) {
		if _, err := deps.AccountStore.GetByEmail(ctx, def.Email); err == nil {
			continue
		}

		acct := account.Account{
			ID:         deps.GenerateID(),
			Email:      def.Email,
			Role:       def.Role,
			FirstName:  def.FirstName,
			LastName:   def.LastName,
			Department: def.Department,
			CreatedAt:  deps.Now(),
		}
		if err := acct.SetPassword(def.Password); err != nil {
			return fmt.Errorf("seed account %s: set password: %w", def.Email, err)
		}
		if err := acct.Validate(); err != nil {
			return fmt.Errorf("seed account %s: %w", def.Email, err)
		}
		if err := deps.AccountStore.Save(ctx, acct); err != nil {
			return fmt.Errorf("seed account %s: save: %w", def.Email, err)
		}

		created++
		slog.Info("seed_event", "event", "account_created", "email", def.Email, "role", def.Role)
	}

	if created > 0 {
		slog.Info("seed_event", "event", "accounts_seeded", "created", created)
	}
	return nil
}
