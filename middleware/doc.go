// Package middleware translates route-guard decisions into HTTP
// navigation. It is the UI-layer observer the engine design requires:
// the state machine only reports a [guard.Decision]; this package owns
// the redirect.
//
// # What this package must NOT do
//
//   - Trigger session transitions (Login/Logout stay with the caller).
//   - Access durable storage or the credential gateway.
//   - Make authorization decisions beyond what guard.Decide returns.
package middleware
