package authgate

import "github.com/finledger/authgate/permission"

// HasPermission reports whether the principal holds the capability.
// Pure and total: an absent principal or an unknown capability reads
// as false, never as a probe of undefined state.
func HasPermission(p *Principal, c permission.Capability) bool {
	if p == nil {
		return false
	}
	return p.Permissions.Has(c)
}

// HasRole reports whether the principal holds exactly the given role.
// Absent principal or unknown role reads as false.
func HasRole(p *Principal, r permission.Role) bool {
	if p == nil || !r.Valid() {
		return false
	}
	return p.Role == r
}
