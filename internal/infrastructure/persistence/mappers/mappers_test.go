package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseline/internal/domain/records"
)

func TestIPProfileMapper_AbsentKeysBecomeNil(t *testing.T) {
	m := NewIPProfileMapper().ToModel(records.Record{
		"openid": "auth0|abc",
		"name":   "Ada",
	})

	require.NotNil(t, m.OpenID)
	require.NotNil(t, m.Name)
	assert.Equal(t, "auth0|abc", *m.OpenID)
	assert.Equal(t, "Ada", *m.Name)
	assert.Nil(t, m.Contact)
	assert.Nil(t, m.Location)
	assert.Nil(t, m.Languages)
	assert.Nil(t, m.EmailNotification)
}

func TestIPProfileMapper_RoundTrip(t *testing.T) {
	rec := records.Record{
		"openid":             "auth0|abc",
		"name":               "Ada",
		"contact":            "ada@example.org",
		"languages":          []any{"en", "fr"},
		"internal_level":     float64(3),
		"email_notification": true,
	}

	m := NewIPProfileMapper().ToModel(rec)
	m.ID = 7
	out := NewIPProfileMapper().ToRecord(m)

	assert.Equal(t, uint(7), out["id"])
	assert.Equal(t, "Ada", out["name"])
	assert.Equal(t, "ada@example.org", out["contact"])
	assert.Equal(t, []any{"en", "fr"}, out["languages"])
	assert.Equal(t, 3, out["internal_level"])
	assert.Equal(t, true, out["email_notification"])
	assert.NotContains(t, out, "location")
}

func TestIPProfileMapper_UpdateMapOmitsIdentity(t *testing.T) {
	out := NewIPProfileMapper().ToUpdateMap(records.Record{
		"id":      uint(7),
		"openid":  "auth0|abc",
		"name":    "Ada",
		"contact": "new@example.org",
	})

	assert.NotContains(t, out, "id")
	assert.NotContains(t, out, "openid")
	assert.Equal(t, "Ada", out["name"])
	assert.Equal(t, "new@example.org", out["contact"])
}

func TestSPProfileMapper_RoundTrip(t *testing.T) {
	rec := records.Record{
		"openid":   "auth0|sp",
		"name":     "Helpline",
		"contact":  "help@example.org",
		"services": []any{"legal", "tech"},
		"rating":   float64(4),
	}

	m := NewSPProfileMapper().ToModel(rec)
	m.ID = 12
	out := NewSPProfileMapper().ToRecord(m)

	assert.Equal(t, uint(12), out["id"])
	assert.Equal(t, []any{"legal", "tech"}, out["services"])
	assert.Equal(t, 4, out["rating"])
	assert.NotContains(t, out, "fees")
}

func TestTicketMapper_CreatorAndAssignment(t *testing.T) {
	rec := records.Record{
		"incident_type":  "phishing",
		"description":    "suspicious mail",
		"status":         "unassigned",
		"ip_assigned_id": uint(5),
	}

	m := NewTicketMapper().ToModel(rec, "Ada")
	require.NotNil(t, m.CreatedBy)
	assert.Equal(t, "Ada", *m.CreatedBy)
	require.NotNil(t, m.IPAssignedID)
	assert.Equal(t, uint(5), *m.IPAssignedID)
	assert.Nil(t, m.StepsTaken)

	m.ID = 42
	out := NewTicketMapper().ToRecord(m)
	assert.Equal(t, uint(42), out["id"])
	assert.Equal(t, "Ada", out["created_by"])
	assert.Equal(t, "unassigned", out["status"])
	assert.Equal(t, uint(5), out["ip_assigned_id"])
}

func TestTicketMapper_EmptyCreatorStoredAsNull(t *testing.T) {
	m := NewTicketMapper().ToModel(records.Record{"description": "x"}, "")
	assert.Nil(t, m.CreatedBy)
}
