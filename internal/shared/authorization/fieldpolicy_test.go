package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"caseline/internal/domain/records"
)

func fullIPProfileRecord() records.Record {
	return records.Record{
		"id":                     uint(1),
		"openid":                 "u1",
		"name":                   "Reporter",
		"contact":                "reporter@example.org",
		"location":               "somewhere",
		"notification_prefs":     "email",
		"notification_languages": `["en"]`,
		"types_of_work":          `["research"]`,
		"pgp_key":                "key",
		"secure_channels":        `["signal"]`,
		"languages":              `["en","es"]`,
		"internal_level":         2,
		"email_notification":     true,
	}
}

func TestFilterProfileFields_OnlyAllowListedKeys(t *testing.T) {
	rec := fullIPProfileRecord()

	filtered := FilterProfileFields(RoleIP, rec)

	_, hasOpenID := filtered["openid"]
	assert.False(t, hasOpenID, "openid must never be visible")

	allowed := map[string]bool{}
	for _, f := range ipProfileReadFields {
		allowed[f] = true
	}
	for k := range filtered {
		assert.True(t, allowed[k], "unexpected key %q in filtered output", k)
	}
}

func TestFilterProfileFields_MissingFieldsAbsentNotNil(t *testing.T) {
	rec := records.Record{"name": "Org", "rating": 5}

	filtered := FilterProfileFields(RoleSP, rec)

	assert.Equal(t, records.Record{"name": "Org"}, filtered)
	_, hasFees := filtered["fees"]
	assert.False(t, hasFees, "fields absent from the record must be absent from the result")
}

func TestFilterProfileFields_NeverSupersetOfAllowList(t *testing.T) {
	roles := []Role{RoleIP, RoleSP}
	for _, role := range roles {
		list, ok := ProfileReadFields(role)
		assert.True(t, ok)
		filtered := FilterProfileFields(role, fullIPProfileRecord())
		assert.LessOrEqual(t, len(filtered), len(list))
	}
}

func TestFilterProfileFields_AdminHasNoReadList(t *testing.T) {
	_, ok := ProfileReadFields(RoleAdmin)
	assert.False(t, ok)

	// Filtering with a role that has no list yields nothing; callers must
	// skip the filter for admins instead.
	assert.Empty(t, FilterProfileFields(RoleAdmin, fullIPProfileRecord()))
}

func TestFilterTicketCreateFields_IPRestricted(t *testing.T) {
	submitted := records.Record{
		"ticket_ip_contact": "reporter@example.org",
		"ticket_ip_name":    "Reporter",
		"date_of_incident":  "2023-01-01",
		"incident_type":     "phishing",
		"description":       "details",
		"steps_taken":       "none",
		"status":            "closed",
		"ip_assigned_id":    99,
	}

	filtered := FilterTicketCreateFields(RoleIP, submitted)

	_, hasStatus := filtered["status"]
	_, hasAssigned := filtered["ip_assigned_id"]
	assert.False(t, hasStatus)
	assert.False(t, hasAssigned)
	assert.Len(t, filtered, 6)
}

func TestFilterTicketCreateFields_SPUnrestricted(t *testing.T) {
	// There is no write allow-list for SP submissions; only IP submissions
	// are restricted.
	submitted := records.Record{"anything": "goes", "status": "open"}

	filtered := FilterTicketCreateFields(RoleSP, submitted)

	assert.Equal(t, submitted, filtered)

	_, ok := TicketCreateFields(RoleSP)
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"ip", "sp", "admin"} {
		role, ok := ParseRole(s)
		assert.True(t, ok)
		assert.True(t, role.IsValid())
	}
	_, ok := ParseRole("user")
	assert.False(t, ok)
}
