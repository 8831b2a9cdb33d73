package domain

import "time"

// User is the domain model for registered accounts.
type User struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string
	Phone               string
	Address             string
	IsAdmin             bool
	IsBusiness          bool
	FailedLoginAttempts int
	LockUntil           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Identity builds the token identity for this account.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, IsAdmin: u.IsAdmin, IsBusiness: u.IsBusiness}
}

// Locked reports whether the account is inside its lockout window.
// Once now passes LockUntil the lock lapses implicitly; the failure
// counter is only cleared by a successful login.
func (u *User) Locked(now time.Time, threshold int) bool {
	return u.FailedLoginAttempts >= threshold && u.LockUntil != nil && now.Before(*u.LockUntil)
}

// RecordLoginFailure increments the failure counter and, on reaching the
// threshold, opens a lockout window ending at now + window.
func (u *User) RecordLoginFailure(now time.Time, threshold int, window time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= threshold {
		until := now.Add(window)
		u.LockUntil = &until
	}
}

// RecordLoginSuccess resets the failure counter and clears any lock.
func (u *User) RecordLoginSuccess() {
	u.FailedLoginAttempts = 0
	u.LockUntil = nil
}
