package permission

import "fmt"

// Capability is a single named permission flag. The enumeration is
// closed: capCount marks the end and every exported constant below it
// is a declared capability.
type Capability uint8

const (
	// CapViewInvoices is an exported constant or variable used by the session engine.
	CapViewInvoices Capability = iota
	// CapCreateInvoices is an exported constant or variable used by the session engine.
	CapCreateInvoices
	// CapEditInvoices is an exported constant or variable used by the session engine.
	CapEditInvoices
	// CapDeleteInvoices is an exported constant or variable used by the session engine.
	CapDeleteInvoices
	// CapManageUsers is an exported constant or variable used by the session engine.
	CapManageUsers
	// CapViewReports is an exported constant or variable used by the session engine.
	CapViewReports
	// CapManageSettings is an exported constant or variable used by the session engine.
	CapManageSettings
	// CapProcessPayments is an exported constant or variable used by the session engine.
	CapProcessPayments
	// CapViewAuditLogs is an exported constant or variable used by the session engine.
	CapViewAuditLogs

	capCount
)

var capabilityNames = [capCount]string{
	CapViewInvoices:    "view-invoices",
	CapCreateInvoices:  "create-invoices",
	CapEditInvoices:    "edit-invoices",
	CapDeleteInvoices:  "delete-invoices",
	CapManageUsers:     "manage-users",
	CapViewReports:     "view-reports",
	CapManageSettings:  "manage-settings",
	CapProcessPayments: "process-payments",
	CapViewAuditLogs:   "view-audit-logs",
}

// Valid reports whether c is a declared capability.
func (c Capability) Valid() bool {
	return c < capCount
}

// String returns the stable wire name of the capability.
func (c Capability) String() string {
	if !c.Valid() {
		return fmt.Sprintf("capability(%d)", uint8(c))
	}
	return capabilityNames[c]
}

// Capabilities returns every declared capability in bit order.
func Capabilities() []Capability {
	out := make([]Capability, 0, capCount)
	for c := Capability(0); c < capCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCapability maps a wire name back to its [Capability]. Unknown
// names are a construction-time error, never a silent zero value.
func ParseCapability(name string) (Capability, error) {
	for c := Capability(0); c < capCount; c++ {
		if capabilityNames[c] == name {
			return c, nil
		}
	}
	return capCount, fmt.Errorf("unknown capability %q", name)
}
