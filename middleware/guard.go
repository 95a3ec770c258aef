package middleware

import (
	"context"
	"net/http"

	authgate "github.com/finledger/authgate"
	"github.com/finledger/authgate/guard"
)

type principalContextKey struct{}

// PrincipalFromContext returns the principal injected by [Guard] for
// an allowed request.
func PrincipalFromContext(ctx context.Context) (*authgate.Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(*authgate.Principal)
	return p, ok
}

// Routes names the navigation targets used when a decision redirects.
type Routes struct {
	Login        string
	TwoFactor    string
	Unauthorized string
}

// DefaultRoutes matches the client application's path layout.
func DefaultRoutes() Routes {
	return Routes{
		Login:        "/login",
		TwoFactor:    "/login/2fa",
		Unauthorized: "/unauthorized",
	}
}

// Guard wraps a handler with a route requirement. Each request reads a
// fresh session snapshot, asks guard.Decide, and either serves the
// handler (with the principal in context) or performs the redirect the
// decision names. A PENDING decision answers 503 with Retry-After so
// clients retry once boot restore completes.
func Guard(engine *authgate.Engine, req guard.Requirement, routes Routes) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}

			snap := engine.Snapshot()
			switch guard.Decide(snap, req) {
			case guard.DecisionAllow:
				ctx := r.Context()
				if snap.User != nil {
					ctx = context.WithValue(ctx, principalContextKey{}, snap.User)
				}
				next.ServeHTTP(w, r.WithContext(ctx))
			case guard.DecisionPending:
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session initializing", http.StatusServiceUnavailable)
			case guard.DecisionRedirectLogin:
				http.Redirect(w, r, routes.Login, http.StatusFound)
			case guard.DecisionRedirectTwoFactor:
				http.Redirect(w, r, routes.TwoFactor, http.StatusFound)
			case guard.DecisionRedirectUnauthorized:
				http.Redirect(w, r, routes.Unauthorized, http.StatusFound)
			default:
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			}
		})
	}
}
