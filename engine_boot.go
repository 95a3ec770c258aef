package authgate

import (
	"context"
	"errors"
	"fmt"

	"github.com/finledger/authgate/permission"
	"github.com/finledger/authgate/session"
)

// Boot performs the one-time restore attempt. It moves the session
// from UNINITIALIZED to AUTHENTICATED when a valid persisted token
// exists, or to ANONYMOUS otherwise. Every restore failure is soft:
// a missing, unreadable, or malformed token means "no session", never
// an error surfaced to the caller.
//
// A persisted token implies prior full verification, so restore never
// re-enters TWO_FACTOR_PENDING even when the restored principal has
// two-factor enabled (see the package doc for the trade-off).
func (e *Engine) Boot(ctx context.Context) (Session, error) {
	if e == nil || e.bridge == nil || e.tokens == nil {
		return Session{}, ErrEngineNotReady
	}

	e.mu.Lock()
	if e.inFlight {
		e.metricInc(MetricConcurrentRejected)
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrConcurrentOperation
	}
	if e.session.Status != StatusUninitialized {
		e.metricInc(MetricInvalidTransition)
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, fmt.Errorf("%w: boot from %s", ErrInvalidTransition, snap.Status)
	}
	e.inFlight = true
	e.mu.Unlock()

	principal, reason := e.restorePrincipal(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false

	if principal != nil {
		e.session = Session{Status: StatusAuthenticated, User: principal}
		e.metricInc(MetricBootRestore)
		e.emitAudit(ctx, auditEventBootRestore, true, principal.ID, nil, nil)
		return e.snapshotLocked(), nil
	}

	e.session = Session{Status: StatusAnonymous}
	e.metricInc(MetricBootAnonymous)
	e.emitAudit(ctx, auditEventBootAnonymous, true, "", nil, func() map[string]string {
		return map[string]string{
			"reason": reason,
		}
	})
	return e.snapshotLocked(), nil
}

// restorePrincipal loads and verifies the persisted token and rebuilds
// the principal it describes. The returned reason names why restore
// produced nothing; it feeds audit metadata only.
func (e *Engine) restorePrincipal(ctx context.Context) (*Principal, string) {
	tok, err := e.bridge.Load(ctx)
	if err != nil {
		if errors.Is(err, session.ErrTokenNotFound) {
			return nil, "no_token"
		}
		return nil, "storage_unavailable"
	}

	claims, err := e.tokens.Parse(tok)
	if err != nil {
		return nil, "token_invalid"
	}

	role, err := permission.ParseRole(claims.Role)
	if err != nil {
		return nil, "role_invalid"
	}

	p := &Principal{
		ID:               claims.UID,
		Email:            claims.Email,
		DisplayName:      claims.Name,
		Role:             role,
		Permissions:      permission.FromRaw(claims.Mask),
		TwoFactorEnabled: claims.TwoFactor,
		LastLoginIP:      claims.LoginIP,
	}
	if claims.IssuedAt != nil {
		p.LastLoginAt = claims.IssuedAt.Time
	}
	return p, ""
}
