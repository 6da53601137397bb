package account_test

import (
	"errors"
	"testing"
	"time"

	"churchportal/internal/domain/account"
)

// TestAccount_Validate tests validation of Account.
func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account account.Account
		wantErr error
	}{
		{
			name:    "valid admin account",
			account: account.Account{ID: "1", Email: "admin@church.com", Role: account.RoleAdmin},
		},
		{
			name:    "valid leader account",
			account: account.Account{ID: "2", Email: "pastor@church.com", Role: account.RoleLeader},
		},
		{
			name:    "valid member account",
			account: account.Account{ID: "3", Email: "member@church.com", Role: account.RoleMember},
		},
		{
			name:    "empty email",
			account: account.Account{ID: "4", Email: "  ", Role: account.RoleMember},
			wantErr: account.ErrEmptyEmail,
		},
		{
			name:    "email without at sign",
			account: account.Account{ID: "5", Email: "church.com", Role: account.RoleMember},
			wantErr: account.ErrInvalidEmail,
		},
		{
			name:    "unknown role",
			account: account.Account{ID: "6", Email: "x@church.com", Role: "deacon"},
			wantErr: account.ErrInvalidRole,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.account.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestAccount_Password tests hashing and checking passwords.
func TestAccount_Password(t *testing.T) {
	a := account.Account{Email: "admin@church.com", Role: account.RoleAdmin}

	if err := a.SetPassword(""); !errors.Is(err, account.ErrEmptyPassword) {
		t.Errorf("SetPassword(\"\") = %v, want ErrEmptyPassword", err)
	}
	if err := a.SetPassword("short"); !errors.Is(err, account.ErrPasswordTooShort) {
		t.Errorf("SetPassword(short) = %v, want ErrPasswordTooShort", err)
	}
	if err := a.SetPassword("admin123"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if a.PasswordHash == "admin123" {
		t.Fatal("password stored in plaintext")
	}
	if err := a.CheckPassword("admin123"); err != nil {
		t.Errorf("CheckPassword(correct) = %v", err)
	}
	if err := a.CheckPassword("admin124"); !errors.Is(err, account.ErrWrongPassword) {
		t.Errorf("CheckPassword(wrong) = %v, want ErrWrongPassword", err)
	}
}

// TestAccount_Lockout locks after repeated failures and unlocks after the window.
func TestAccount_Lockout(t *testing.T) {
	now := time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)
	a := account.Account{}
	for i := 0; i < account.MaxFailedLogins-1; i++ {
		a.RecordFailedLogin(now)
	}
	if a.IsLocked(now) {
		t.Fatal("locked before reaching the limit")
	}
	a.RecordFailedLogin(now)
	if !a.IsLocked(now) {
		t.Fatal("expected lock after reaching the limit")
	}
	if a.IsLocked(now.Add(account.LockoutDuration + time.Second)) {
		t.Error("expected lock to expire")
	}
	a.ResetFailedLogins()
	if a.FailedLogins != 0 || !a.LockedUntil.IsZero() {
		t.Errorf("reset left state: %+v", a)
	}
}

// TestRoleGates checks the display helpers per role.
func TestRoleGates(t *testing.T) {
	tests := []struct {
		role        string
		wantContent bool
		wantFinance bool
	}{
		{account.RoleAdmin, true, true},
		{account.RoleLeader, true, false},
		{account.RoleMember, false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := account.CanManageContent(tt.role); got != tt.wantContent {
				t.Errorf("CanManageContent(%q) = %v, want %v", tt.role, got, tt.wantContent)
			}
			if got := account.CanManageFinance(tt.role); got != tt.wantFinance {
				t.Errorf("CanManageFinance(%q) = %v, want %v", tt.role, got, tt.wantFinance)
			}
		})
	}
}

// TestAccount_User exposes the public fields only.
func TestAccount_User(t *testing.T) {
	a := account.Account{ID: "1", Email: "pastor@church.com", PasswordHash: "secret", Role: account.RoleLeader, FirstName: "John", LastName: "Johnson"}
	u := a.User()
	if u.Email != "pastor@church.com" || u.Role != account.RoleLeader || u.FirstName != "John" {
		t.Errorf("unexpected user %+v", u)
	}
	if a.FullName() != "John Johnson" {
		t.Errorf("FullName = %q", a.FullName())
	}
}
