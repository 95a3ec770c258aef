package permission

import "fmt"

// Role is the closed role enumeration assigned to a principal.
type Role uint8

const (
	// RoleSuperAdmin is an exported constant or variable used by the session engine.
	RoleSuperAdmin Role = iota
	// RoleAdmin is an exported constant or variable used by the session engine.
	RoleAdmin
	// RoleAccountant is an exported constant or variable used by the session engine.
	RoleAccountant
	// RoleManager is an exported constant or variable used by the session engine.
	RoleManager
	// RoleViewer is an exported constant or variable used by the session engine.
	RoleViewer
	// RoleCustomer is an exported constant or variable used by the session engine.
	RoleCustomer

	roleCount
)

var roleNames = [roleCount]string{
	RoleSuperAdmin: "SUPER_ADMIN",
	RoleAdmin:      "ADMIN",
	RoleAccountant: "ACCOUNTANT",
	RoleManager:    "MANAGER",
	RoleViewer:     "VIEWER",
	RoleCustomer:   "CUSTOMER",
}

// Valid reports whether r is a declared role.
func (r Role) Valid() bool {
	return r < roleCount
}

// String returns the stable wire name of the role.
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("role(%d)", uint8(r))
	}
	return roleNames[r]
}

// Roles returns every declared role.
func Roles() []Role {
	out := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		out = append(out, r)
	}
	return out
}

// ParseRole maps a wire name back to its [Role].
func ParseRole(name string) (Role, error) {
	for r := Role(0); r < roleCount; r++ {
		if roleNames[r] == name {
			return r, nil
		}
	}
	return roleCount, fmt.Errorf("unknown role %q", name)
}

// roleGrants is the default capability table per role. It is built at
// init and covers every declared role; an incomplete table is a
// programming error caught by the package tests.
var roleGrants = buildRoleGrants()

func buildRoleGrants() [roleCount]Set {
	mustSet := func(caps ...Capability) Set {
		s, err := NewSetFromList(caps...)
		if err != nil {
			panic(err)
		}
		return s
	}

	all := mustSet(Capabilities()...)

	var table [roleCount]Set
	table[RoleSuperAdmin] = all
	table[RoleAdmin] = all
	table[RoleAccountant] = mustSet(
		CapViewInvoices, CapCreateInvoices, CapEditInvoices,
		CapViewReports, CapProcessPayments,
	)
	table[RoleManager] = mustSet(
		CapViewInvoices, CapCreateInvoices, CapEditInvoices,
		CapViewReports,
	)
	table[RoleViewer] = mustSet(CapViewInvoices, CapViewReports)
	table[RoleCustomer] = mustSet(CapViewInvoices)
	return table
}

// Grants returns the default capability set for the role. Unknown
// roles grant nothing.
func Grants(r Role) Set {
	if !r.Valid() {
		return 0
	}
	return roleGrants[r]
}
