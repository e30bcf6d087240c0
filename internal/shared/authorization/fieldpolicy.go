package authorization

import "caseline/internal/domain/records"

// Static per-role field allow-lists. Read lists control which stored profile
// fields a matching-role viewer sees; the ticket create list controls which
// fields an IP may submit. There is deliberately no write list for SP ticket
// submission: only IP submissions are restricted. Admin viewers have no read
// list because handlers never filter for them.

var ipProfileReadFields = []string{
	"id",
	"name",
	"contact",
	"location",
	"notification_prefs",
	"notification_languages",
	"types_of_work",
	"pgp_key",
	"secure_channels",
	"languages",
	"internal_level",
	"email_notification",
}

var spProfileReadFields = []string{
	"id",
	"name",
	"services",
	"description",
	"contact",
	"secure_channels",
	"fees",
	"languages",
	"pgp_key",
	"start_time",
	"per_week_availability",
	"email_notification",
}

var ipTicketCreateFields = []string{
	"ticket_ip_contact",
	"ticket_ip_name",
	"date_of_incident",
	"incident_type",
	"description",
	"steps_taken",
}

var profileReadAllowLists = map[Role][]string{
	RoleIP: ipProfileReadFields,
	RoleSP: spProfileReadFields,
}

var ticketCreateAllowLists = map[Role][]string{
	RoleIP: ipTicketCreateFields,
}

// ProfileReadFields returns the read allow-list for a role; ok is false when
// the role has no list (admin).
func ProfileReadFields(role Role) ([]string, bool) {
	fields, ok := profileReadAllowLists[role]
	return fields, ok
}

// TicketCreateFields returns the ticket-create allow-list for a role; ok is
// false when the role's submission is unrestricted.
func TicketCreateFields(role Role) ([]string, bool) {
	fields, ok := ticketCreateAllowLists[role]
	return fields, ok
}

// FilterProfileFields returns a new record restricted to the role's read
// allow-list. A role with no list yields an empty record; callers that want
// the unfiltered view (admin) must not filter at all.
func FilterProfileFields(role Role, rec records.Record) records.Record {
	return records.Pick(profileReadAllowLists[role], rec)
}

// FilterTicketCreateFields returns a new record restricted to the role's
// ticket-create allow-list, or the record unchanged when the role's
// submission is unrestricted.
func FilterTicketCreateFields(role Role, rec records.Record) records.Record {
	fields, ok := ticketCreateAllowLists[role]
	if !ok {
		return rec
	}
	return records.Pick(fields, rec)
}
