package middleware

import (
	"strings"

	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/internal/errors"
	"github.com/findingbd/findingbd-backend/pkg/util"
	"github.com/gin-gonic/gin"
)

// Context keys for actor information
const (
	ActorIDKey    = "actor_id"
	ActorEmailKey = "actor_email"
	ActorRoleKey  = "actor_role"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates the bearer token and stores the actor identity
// in the request context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Warn("Invalid authorization header format", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, 401, errors.AuthTokenInvalid, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(parts[1], m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, 401, errors.AuthTokenExpired, "session has expired")
			} else {
				errors.RespondWithError(c, 401, errors.AuthTokenInvalid, "invalid authentication token")
			}
			c.Abort()
			return
		}

		c.Set(ActorIDKey, claims.ActorID)
		c.Set(ActorEmailKey, claims.Email)
		c.Set(ActorRoleKey, claims.Role)

		c.Next()
	}
}

// RequireAdmin allows only admin tokens through
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ActorRoleKey) != util.RoleAdmin {
			errors.RespondWithError(c, 403, errors.AuthzAdminOnly, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireVendor allows only vendor tokens (either kind) through
func (m *AuthMiddleware) RequireVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ActorRoleKey)
		if role != util.RoleCompanyVendor && role != util.RoleRetailVendor {
			errors.RespondWithError(c, 403, errors.AuthzVendorOnly, "vendor access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// VendorTypeFromRole maps a vendor role claim to the vendor kind; ok is
// false for non-vendor roles.
func VendorTypeFromRole(role string) (model.VendorType, bool) {
	switch role {
	case util.RoleCompanyVendor:
		return model.VendorTypeCompany, true
	case util.RoleRetailVendor:
		return model.VendorTypeRetail, true
	default:
		return "", false
	}
}
