package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"churchportal/internal/domain/account"
	"churchportal/internal/domain/validation"
)

// AccountStoreForChangePassword defines the store interface needed by ChangePassword.
type AccountStoreForChangePassword interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// ChangePasswordInput carries input for the change-password orchestrator.
type ChangePasswordInput struct {
	AccountID       string `json:"-"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePasswordDeps holds dependencies for ChangePassword.
type ChangePasswordDeps struct {
	AccountStore AccountStoreForChangePassword
}

var (
	ErrCurrentPasswordWrong = validation.New("current_password", "current password is incorrect")
	ErrNewPasswordSame      = validation.New("new_password", "new password must be different from current password")
	ErrNewPasswordShort     = validation.New("new_password", account.ErrPasswordTooShort.Error())
)

// ExecuteChangePassword replaces the signed-in account's password.
// PRE: AccountID names an existing account
// POST: PasswordHash is replaced and the lockout counter is cleared
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps ChangePasswordDeps) error {
	if input.CurrentPassword == "" {
		return validation.New("current_password", "current password is required")
	}
	if input.NewPassword == "" {
		return validation.New("new_password", "new password is required")
	}

	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		return err
	}
	if err := acct.CheckPassword(input.CurrentPassword); err != nil {
		slog.Info("auth_event", "event", "password_change_rejected", "account_id", acct.ID)
		return ErrCurrentPasswordWrong
	}
	if input.CurrentPassword == input.NewPassword {
		return ErrNewPasswordSame
	}
	if err := acct.SetPassword(input.NewPassword); err != nil {
		if errors.Is(err, account.ErrPasswordTooShort) {
			return ErrNewPasswordShort
		}
		return err
	}
	acct.ResetFailedLogins()

	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "password_changed", "account_id", acct.ID)
	return nil
}
