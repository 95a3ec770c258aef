package authgate

import (
	"context"
	"fmt"
)

// VerifyTwoFactor checks the second-factor code through the credential
// gateway for the principal of the pending login. On success the
// session becomes AUTHENTICATED and a token is persisted; on failure
// it stays in TWO_FACTOR_PENDING with the reason recorded. Lockout
// counting is the gateway's responsibility, not this engine's.
func (e *Engine) VerifyTwoFactor(ctx context.Context, code string) (Session, error) {
	if e == nil || e.gateway == nil || e.tokens == nil || e.bridge == nil {
		return Session{}, ErrEngineNotReady
	}

	e.mu.Lock()
	if e.inFlight {
		e.metricInc(MetricConcurrentRejected)
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrConcurrentOperation
	}
	if e.session.Status != StatusTwoFactorPending {
		e.metricInc(MetricInvalidTransition)
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, fmt.Errorf("%w: two-factor verify from %s", ErrInvalidTransition, snap.Status)
	}
	e.session.Err = ""
	e.inFlight = true
	e.mu.Unlock()

	verr := e.gateway.VerifyTwoFactor(ctx, code)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false

	user := e.session.User

	if verr != nil {
		e.session.Err = verr.Error()
		e.metricInc(MetricTwoFactorFailure)
		userID := ""
		if user != nil {
			userID = user.ID
		}
		e.emitAudit(ctx, auditEventTwoFactorFailure, false, userID, verr, nil)
		return e.snapshotLocked(), verr
	}

	e.persistToken(ctx, user)
	e.session = Session{Status: StatusAuthenticated, User: user}
	e.metricInc(MetricTwoFactorSuccess)
	e.emitAudit(ctx, auditEventTwoFactorSuccess, true, user.ID, nil, nil)
	return e.snapshotLocked(), nil
}
