// Package authgate provides the authentication and authorization session
// engine behind the finledger client: a single-session state machine
// with two-factor login, Redis-backed session restore, bitmask RBAC,
// and a pure route-guarding decision surface.
//
// The package is the public surface. It exposes [Engine], [Builder],
// [Config], and value types (Session, Principal, AuditEvent). Route
// decisions live in the guard subpackage; the persisted-token codec in
// token; durable storage access in session.
//
// # Architecture boundaries
//
//   - Credential verification (password, 2FA code) is delegated to a
//     caller-supplied [CredentialGateway]; authgate never sees or
//     stores password material.
//   - Navigation is never performed here. Engine methods only move the
//     session between statuses; a UI-layer observer reads
//     [Engine.Snapshot] and guard.Decide and performs redirects itself.
//   - session.Store is the only component permitted to touch durable
//     storage.
//
// # Restore semantics
//
// A persisted token is written only after full verification, so boot
// restore never re-enters the two-factor-pending status even when the
// restored principal has two-factor enabled. Two-factor is enforced at
// initial login, not on every restore.
//
// # Concurrency contract
//
// The engine owns exactly one logical session. At most one Login or
// VerifyTwoFactor call is in flight at a time; a second call observed
// while one is pending fails fast with [ErrConcurrentOperation].
// Snapshot is always callable, including while a gateway call is
// suspended, and never observes a torn state.
package authgate
