// Package session is the persistence bridge between the engine and
// durable client storage. It reads and writes exactly one key holding
// the opaque persisted session token.
//
// No other authgate component is permitted to touch durable storage;
// everything above this package exchanges in-memory values only.
package session
