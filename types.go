package authgate

import (
	"context"
	"time"

	"github.com/finledger/authgate/permission"
)

// Status represents the lifecycle state of the client session.
type Status uint8

const (
	// StatusUninitialized is an exported constant or variable used by the session engine.
	StatusUninitialized Status = iota
	// StatusAnonymous is an exported constant or variable used by the session engine.
	StatusAnonymous
	// StatusAuthenticating is an exported constant or variable used by the session engine.
	StatusAuthenticating
	// StatusTwoFactorPending is an exported constant or variable used by the session engine.
	StatusTwoFactorPending
	// StatusAuthenticated is an exported constant or variable used by the session engine.
	StatusAuthenticated
	// StatusLoggingOut is an exported constant or variable used by the session engine.
	StatusLoggingOut
)

var statusNames = map[Status]string{
	StatusUninitialized:    "UNINITIALIZED",
	StatusAnonymous:        "ANONYMOUS",
	StatusAuthenticating:   "AUTHENTICATING",
	StatusTwoFactorPending: "TWO_FACTOR_PENDING",
	StatusAuthenticated:    "AUTHENTICATED",
	StatusLoggingOut:       "LOGGING_OUT",
}

// String returns the stable wire name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Principal is the authenticated identity and its authorization
// attributes. It is immutable after construction: role and permissions
// are resolved at authentication time and never modified, so a
// snapshot can be shared with the UI layer without locking.
type Principal struct {
	ID               string
	Email            string
	DisplayName      string
	Role             permission.Role
	Permissions      permission.Set
	TwoFactorEnabled bool
	LastLoginAt      time.Time
	LastLoginIP      string
}

// Session is a read-only snapshot of the engine's session state.
// User is non-nil exactly when Status is StatusTwoFactorPending or
// StatusAuthenticated. Err carries the last transition failure reason
// verbatim and is cleared when the next transition is accepted.
type Session struct {
	Status Status
	User   *Principal
	Err    string
}

// CredentialGateway is the external identity-provider boundary.
// Login verifies the email/password pair and returns the resolved
// principal; the principal's TwoFactorEnabled flag decides whether the
// engine parks the session in StatusTwoFactorPending. VerifyTwoFactor
// checks a second-factor code for the principal of the pending login.
//
// Gateway error text is surfaced verbatim on [Session.Err]; lockout
// counting and throttling are the gateway's responsibility.
type CredentialGateway interface {
	Login(ctx context.Context, email, password string) (Principal, error)
	VerifyTwoFactor(ctx context.Context, code string) error
}
