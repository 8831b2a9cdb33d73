package domain_test

import (
	"testing"
	"time"

	"github.com/spec-kit/bizcard-service/internal/domain"
)

const (
	lockThreshold = 3
	lockWindow    = 24 * time.Hour
)

func TestLockout_ThresholdOpensWindow(t *testing.T) {
	now := time.Now()
	user := &domain.User{}

	user.RecordLoginFailure(now, lockThreshold, lockWindow)
	user.RecordLoginFailure(now, lockThreshold, lockWindow)
	if user.Locked(now, lockThreshold) {
		t.Fatal("account locked before reaching the threshold")
	}
	if user.LockUntil != nil {
		t.Fatal("lock window opened before reaching the threshold")
	}

	user.RecordLoginFailure(now, lockThreshold, lockWindow)
	if !user.Locked(now, lockThreshold) {
		t.Fatal("account not locked after three failures")
	}
	if user.LockUntil == nil || !user.LockUntil.Equal(now.Add(lockWindow)) {
		t.Errorf("LockUntil = %v, want %v", user.LockUntil, now.Add(lockWindow))
	}
}

func TestLockout_ExpiresImplicitly(t *testing.T) {
	now := time.Now()
	user := &domain.User{}
	for i := 0; i < lockThreshold; i++ {
		user.RecordLoginFailure(now, lockThreshold, lockWindow)
	}

	if !user.Locked(now.Add(lockWindow-time.Minute), lockThreshold) {
		t.Error("account should still be locked inside the window")
	}
	if user.Locked(now.Add(lockWindow), lockThreshold) {
		t.Error("lock should lapse once the window passes")
	}
	// The counter survives expiry: one more failure relocks immediately.
	later := now.Add(lockWindow + time.Minute)
	user.RecordLoginFailure(later, lockThreshold, lockWindow)
	if !user.Locked(later, lockThreshold) {
		t.Error("a failure after expiry should relock the account")
	}
}

func TestLockout_SuccessResets(t *testing.T) {
	now := time.Now()
	user := &domain.User{}
	for i := 0; i < lockThreshold; i++ {
		user.RecordLoginFailure(now, lockThreshold, lockWindow)
	}

	user.RecordLoginSuccess()
	if user.FailedLoginAttempts != 0 {
		t.Errorf("FailedLoginAttempts = %d, want 0", user.FailedLoginAttempts)
	}
	if user.LockUntil != nil {
		t.Errorf("LockUntil = %v, want nil", user.LockUntil)
	}
	if user.Locked(now, lockThreshold) {
		t.Error("account must not be locked after a successful login")
	}
}
