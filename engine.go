package authgate

import (
	"context"
	"sync"
	"time"

	"github.com/finledger/authgate/session"
	"github.com/finledger/authgate/token"
)

// Engine is the single-session authentication state machine. It owns
// the session, applies transitions, and is the only caller of the
// credential gateway and the persistence bridge.
//
// Engine instances are intended to be configured through
// [Builder.Build] and then treated as immutable apart from the session
// they guard.
type Engine struct {
	config  Config
	gateway CredentialGateway
	bridge  *session.Store
	tokens  *token.Manager
	audit   *auditDispatcher
	metrics *Metrics

	mu       sync.Mutex
	session  Session
	inFlight bool
}

// Snapshot returns a read-only copy of the current session. It is
// always callable, including while a gateway call is suspended, and
// never observes a torn state.
func (e *Engine) Snapshot() Session {
	if e == nil {
		return Session{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// snapshotLocked copies the session under e.mu. The principal is
// copied so callers can never reach the engine's own pointer.
func (e *Engine) snapshotLocked() Session {
	snap := e.session
	if e.session.User != nil {
		u := *e.session.User
		snap.User = &u
	}
	return snap
}

// Close shuts down the audit dispatcher after draining buffered events.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports audit events discarded under backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot copies the engine counter table.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters: map[MetricID]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	userID string,
	cause error,
	metadata func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		IP:        clientIPFromContext(ctx),
		Success:   success,
	}
	if cause != nil {
		event.Error = cause.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	e.audit.Emit(ctx, event)
}

// persistToken issues and stores the persisted token for a fully
// verified principal. A write failure does not undo the in-memory
// transition: the gateway has vouched for the user this cycle and the
// next boot simply restores nothing. The failure is counted and
// audited instead.
func (e *Engine) persistToken(ctx context.Context, p *Principal) {
	tok, err := e.tokens.Issue(token.Claims{
		UID:       p.ID,
		Email:     p.Email,
		Name:      p.DisplayName,
		Role:      p.Role.String(),
		Mask:      p.Permissions.Raw(),
		TwoFactor: p.TwoFactorEnabled,
		LoginIP:   p.LastLoginIP,
	})
	if err == nil {
		err = e.bridge.Persist(ctx, tok, e.config.Token.TTL)
	}
	if err != nil {
		e.metricInc(MetricPersistFailure)
		e.emitAudit(ctx, auditEventLoginSuccess, false, p.ID, err, func() map[string]string {
			return map[string]string{
				"reason": "persist_failed",
			}
		})
	}
}
