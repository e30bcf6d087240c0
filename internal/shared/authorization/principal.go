package authorization

import (
	"github.com/gin-gonic/gin"

	"caseline/internal/domain/records"
)

// ContextKeyPrincipal is the gin context key the auth middleware stores the
// resolved principal under.
const ContextKeyPrincipal = "principal"

// Principal is the authenticated caller: role, stable external identifier,
// and the caller's own profile record, resolved before handlers run.
// Profile is nil when the principal has not created one yet.
type Principal struct {
	Role    Role
	OpenID  string
	Profile records.Record
}

// ProfileID returns the id of the principal's own profile, or zero when none
// is resolved.
func (p *Principal) ProfileID() uint {
	if p.Profile == nil {
		return 0
	}
	return records.AsUint(p.Profile["id"])
}

// ProfileName returns the display name of the principal's own profile.
func (p *Principal) ProfileName() string {
	if p.Profile == nil {
		return ""
	}
	return records.AsString(p.Profile["name"])
}

// SetPrincipal attaches the principal to the request context.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(ContextKeyPrincipal, p)
}

// PrincipalFromContext returns the principal attached by the auth middleware.
func PrincipalFromContext(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(ContextKeyPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}
