package authgate

import (
	"context"
	"fmt"
)

// Logout moves the session through LOGGING_OUT to ANONYMOUS, deletes
// the persisted token, and clears the principal and any recorded
// error. It always succeeds locally: a storage delete failure is
// audited, never returned, and never blocks the transition.
func (e *Engine) Logout(ctx context.Context) (Session, error) {
	if e == nil || e.bridge == nil {
		return Session{}, ErrEngineNotReady
	}

	e.mu.Lock()
	if e.inFlight {
		e.metricInc(MetricConcurrentRejected)
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrConcurrentOperation
	}
	if e.session.Status != StatusAuthenticated && e.session.Status != StatusTwoFactorPending {
		e.metricInc(MetricInvalidTransition)
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, fmt.Errorf("%w: logout from %s", ErrInvalidTransition, snap.Status)
	}

	userID := ""
	if e.session.User != nil {
		userID = e.session.User.ID
	}
	e.session = Session{Status: StatusLoggingOut}
	e.inFlight = true
	e.mu.Unlock()

	cerr := e.bridge.Clear(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false
	e.session = Session{Status: StatusAnonymous}
	e.metricInc(MetricLogout)
	if cerr != nil {
		e.emitAudit(ctx, auditEventLogout, true, userID, cerr, func() map[string]string {
			return map[string]string{
				"reason": "clear_failed",
			}
		})
	} else {
		e.emitAudit(ctx, auditEventLogout, true, userID, nil, nil)
	}
	return e.snapshotLocked(), nil
}
