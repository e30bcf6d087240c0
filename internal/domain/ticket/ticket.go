// Package ticket defines the case-record contracts. This layer only creates
// tickets; reading and updating them beyond the creation workflow happens
// elsewhere.
package ticket

// StatusUnassigned is the status every IP-created ticket starts in,
// regardless of any client-submitted value.
const StatusUnassigned = "unassigned"

// Field names the creation workflow assigns on the server side.
const (
	FieldStatus       = "status"
	FieldIPAssignedID = "ip_assigned_id"
	FieldIPContact    = "ticket_ip_contact"
)
