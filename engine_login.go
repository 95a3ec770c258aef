package authgate

import (
	"context"
	"fmt"
	"time"
)

// Login verifies the email/password pair through the credential
// gateway. On success with two-factor disabled the session becomes
// AUTHENTICATED and a token is persisted; with two-factor enabled it
// parks in TWO_FACTOR_PENDING with no token written. On gateway
// failure the session returns to ANONYMOUS with the failure reason
// recorded verbatim.
//
// Login is rejected with [ErrConcurrentOperation] while another Login
// or VerifyTwoFactor is in flight, and with [ErrInvalidTransition]
// from any status other than ANONYMOUS; rejected calls leave the
// session unchanged.
func (e *Engine) Login(ctx context.Context, email, password string) (Session, error) {
	if e == nil || e.gateway == nil || e.tokens == nil || e.bridge == nil {
		return Session{}, ErrEngineNotReady
	}

	e.mu.Lock()
	if e.inFlight || e.session.Status == StatusAuthenticating {
		e.metricInc(MetricConcurrentRejected)
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrConcurrentOperation
	}
	if e.session.Status != StatusAnonymous {
		e.metricInc(MetricInvalidTransition)
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, fmt.Errorf("%w: login from %s", ErrInvalidTransition, snap.Status)
	}
	e.session = Session{Status: StatusAuthenticating}
	e.inFlight = true
	e.mu.Unlock()

	principal, gerr := e.gateway.Login(ctx, email, password)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false

	if gerr != nil {
		e.session = Session{Status: StatusAnonymous, Err: gerr.Error()}
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, "", gerr, nil)
		return e.snapshotLocked(), gerr
	}

	principal.LastLoginAt = time.Now()
	if ip := clientIPFromContext(ctx); ip != "" {
		principal.LastLoginIP = ip
	}

	if principal.TwoFactorEnabled {
		p := principal
		e.session = Session{Status: StatusTwoFactorPending, User: &p}
		e.metricInc(MetricTwoFactorChallenge)
		e.emitAudit(ctx, auditEventTwoFactorPending, true, p.ID, nil, nil)
		return e.snapshotLocked(), nil
	}

	p := principal
	e.persistToken(ctx, &p)
	e.session = Session{Status: StatusAuthenticated, User: &p}
	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, p.ID, nil, nil)
	return e.snapshotLocked(), nil
}
