// Package permission defines the closed capability and role enumerations
// used by the authgate engine, and the bitmask-backed capability [Set].
//
// Both enumerations are fixed at compile time. Constructors and parsers
// reject unknown values; the read predicates ([Set.Has], [Role.Valid])
// degrade to false so that a corrupted value can never widen access.
//
// # What this package must NOT do
//
//   - Perform I/O or depend on any other authgate package.
//   - Accept dynamically registered capabilities — the set is closed
//     so an unrecognized name is a construction-time error, not a
//     silent false.
package permission
