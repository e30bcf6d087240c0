package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"caseline/internal/domain/profile"
	"caseline/internal/infrastructure/auth"
	"caseline/internal/shared/authorization"
	"caseline/internal/shared/logger"
	"caseline/internal/shared/utils"
)

// AuthMiddleware authenticates the bearer token and resolves the caller into
// a principal: role, openid, and the caller's own profile record. Handlers
// downstream read the principal instead of re-resolving identity.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	ipProfiles profile.Repository
	spProfiles profile.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(
	jwtService *auth.JWTService,
	ipProfiles profile.Repository,
	spProfiles profile.Repository,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		ipProfiles: ipProfiles,
		spProfiles: spProfiles,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		role, ok := authorization.ParseRole(claims.Role)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unknown role")
			c.Abort()
			return
		}

		principal := &authorization.Principal{
			Role:   role,
			OpenID: claims.Subject,
		}

		// Admins have no profile of their own. A missing profile is not an
		// error here; the create-profile flow runs before one exists.
		if repo := m.profileRepoFor(role); repo != nil {
			rec, err := repo.FindByOpenID(c.Request.Context(), claims.Subject)
			if err != nil {
				m.logger.Errorw("failed to resolve principal profile", "error", err, "role", role)
				utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
				c.Abort()
				return
			}
			principal.Profile = rec
		}

		authorization.SetPrincipal(c, principal)
		c.Next()
	}
}

func (m *AuthMiddleware) profileRepoFor(role authorization.Role) profile.Repository {
	switch role {
	case authorization.RoleIP:
		return m.ipProfiles
	case authorization.RoleSP:
		return m.spProfiles
	default:
		return nil
	}
}
