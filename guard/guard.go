package guard

import (
	authgate "github.com/finledger/authgate"
	"github.com/finledger/authgate/permission"
)

// Decision is the guard's verdict for one navigation attempt.
type Decision uint8

const (
	// DecisionPending is an exported constant or variable used by the session engine.
	DecisionPending Decision = iota
	// DecisionAllow is an exported constant or variable used by the session engine.
	DecisionAllow
	// DecisionRedirectLogin is an exported constant or variable used by the session engine.
	DecisionRedirectLogin
	// DecisionRedirectTwoFactor is an exported constant or variable used by the session engine.
	DecisionRedirectTwoFactor
	// DecisionRedirectUnauthorized is an exported constant or variable used by the session engine.
	DecisionRedirectUnauthorized
)

var decisionNames = map[Decision]string{
	DecisionPending:              "PENDING",
	DecisionAllow:                "ALLOW",
	DecisionRedirectLogin:        "REDIRECT_LOGIN",
	DecisionRedirectTwoFactor:    "REDIRECT_TWO_FACTOR",
	DecisionRedirectUnauthorized: "REDIRECT_UNAUTHORIZED",
}

// String returns the stable wire name of the decision.
func (d Decision) String() string {
	if name, ok := decisionNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

// Requirement is the declared access policy of a navigable route. The
// zero value is the strictest sensible default: two-factor clearance
// required, not public, no role or capability restriction.
type Requirement struct {
	// Roles allows access when the principal holds any listed role.
	// Empty means no role restriction.
	Roles []permission.Role

	// Capabilities must all be granted to the principal. Empty means
	// no capability restriction.
	Capabilities []permission.Capability

	// SkipTwoFactorCheck admits sessions still pending two-factor
	// verification. The 2FA entry route itself sets this.
	SkipTwoFactorCheck bool

	// Public admits unauthenticated sessions, provided the route also
	// declares no role or capability restriction.
	Public bool
}

// Decide evaluates the requirement against the session snapshot.
// Rules apply in order; the first match wins.
func Decide(s authgate.Session, req Requirement) Decision {
	if s.Status == authgate.StatusUninitialized {
		return DecisionPending
	}

	if s.Status == authgate.StatusTwoFactorPending && !req.SkipTwoFactorCheck {
		return DecisionRedirectTwoFactor
	}

	if s.Status != authgate.StatusAuthenticated {
		if req.Public && len(req.Roles) == 0 && len(req.Capabilities) == 0 {
			return DecisionAllow
		}
		return DecisionRedirectLogin
	}

	if len(req.Roles) > 0 {
		matched := false
		for _, r := range req.Roles {
			if authgate.HasRole(s.User, r) {
				matched = true
				break
			}
		}
		if !matched {
			return DecisionRedirectUnauthorized
		}
	}

	for _, c := range req.Capabilities {
		if !authgate.HasPermission(s.User, c) {
			return DecisionRedirectUnauthorized
		}
	}

	return DecisionAllow
}
