// Package guard computes route-access decisions from a session
// snapshot and a route's declared requirement.
//
// [Decide] is pure: it never mutates session state and calling it
// twice with identical arguments yields identical results. The caller
// (a navigation layer) owns the actual redirect; this package only
// names the outcome.
package guard
