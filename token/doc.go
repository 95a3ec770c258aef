// Package token issues and parses the opaque persisted session token.
//
// The token is a signed JWT carrying the principal attributes needed to
// reconstruct a session on boot (identity, role, permission mask,
// two-factor flag, login IP). It is created once after a fully
// verified login, stored as a single opaque string by the session
// persistence bridge, and never mutated.
//
// Signature verification failure, expiry, or malformed claims all
// surface as parse errors; callers performing boot restore treat every
// parse error as "no session".
package token
