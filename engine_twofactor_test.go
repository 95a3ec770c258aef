package authgate

import (
	"context"
	"errors"
	"testing"
)

func twoFactorPrincipal() Principal {
	p := viewerPrincipal()
	p.TwoFactorEnabled = true
	return p
}

func TestLoginWithTwoFactorParksPendingWithoutToken(t *testing.T) {
	gw := &fakeGateway{principal: twoFactorPrincipal()}
	engine, rdb, done := bootedEngine(t, gw)
	defer done()

	snap, err := engine.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if snap.Status != StatusTwoFactorPending {
		t.Fatalf("expected TWO_FACTOR_PENDING, got %s", snap.Status)
	}
	if snap.User == nil {
		t.Fatal("expected principal during pending two-factor")
	}
	if tokenExists(t, rdb) {
		t.Fatal("expected no persisted token before two-factor clears")
	}
}

func TestVerifyTwoFactorSuccessAuthenticatesAndPersists(t *testing.T) {
	gw := &fakeGateway{principal: twoFactorPrincipal()}
	engine, rdb, done := bootedEngine(t, gw)
	defer done()

	if _, err := engine.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	snap, err := engine.VerifyTwoFactor(context.Background(), "123456")
	if err != nil {
		t.Fatalf("VerifyTwoFactor failed: %v", err)
	}
	if snap.Status != StatusAuthenticated {
		t.Fatalf("expected AUTHENTICATED, got %s", snap.Status)
	}
	if snap.User == nil || snap.User.ID != "u1" {
		t.Fatalf("expected principal carried over, got %+v", snap.User)
	}
	if !tokenExists(t, rdb) {
		t.Fatal("expected persisted token after two-factor success")
	}
}

func TestVerifyTwoFactorFailureStaysPending(t *testing.T) {
	gw := &fakeGateway{principal: twoFactorPrincipal(), verifyErr: ErrInvalidTwoFactorCode}
	engine, rdb, done := bootedEngine(t, gw)
	defer done()

	if _, err := engine.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	snap, err := engine.VerifyTwoFactor(context.Background(), "000000")
	if !errors.Is(err, ErrInvalidTwoFactorCode) {
		t.Fatalf("expected ErrInvalidTwoFactorCode, got %v", err)
	}
	if snap.Status != StatusTwoFactorPending {
		t.Fatalf("expected TWO_FACTOR_PENDING after failure, got %s", snap.Status)
	}
	if snap.User == nil {
		t.Fatal("expected principal retained after failed verify")
	}
	if snap.Err != ErrInvalidTwoFactorCode.Error() {
		t.Fatalf("expected verbatim failure reason, got %q", snap.Err)
	}
	if tokenExists(t, rdb) {
		t.Fatal("expected no persisted token after failed verify")
	}

	// a later successful verify clears the recorded error
	gw.mu.Lock()
	gw.verifyErr = nil
	gw.mu.Unlock()

	snap, err = engine.VerifyTwoFactor(context.Background(), "123456")
	if err != nil {
		t.Fatalf("VerifyTwoFactor failed: %v", err)
	}
	if snap.Err != "" {
		t.Fatalf("expected error cleared on accepted transition, got %q", snap.Err)
	}
}

func TestVerifyTwoFactorOutsidePendingRejected(t *testing.T) {
	gw := &fakeGateway{principal: viewerPrincipal()}
	engine, _, done := bootedEngine(t, gw)
	defer done()

	if _, err := engine.VerifyTwoFactor(context.Background(), "123456"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from ANONYMOUS, got %v", err)
	}

	if _, err := engine.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := engine.VerifyTwoFactor(context.Background(), "123456"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from AUTHENTICATED, got %v", err)
	}
	if gw.verifyCalls != 0 {
		t.Fatalf("expected no gateway verify calls, got %d", gw.verifyCalls)
	}
}
