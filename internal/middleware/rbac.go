package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-api/internal/models"
	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
	"github.com/noah-isme/sma-adp-api/pkg/response"
)

// selfRole is a pseudo-role accepted by RBAC meaning "the caller acting on
// their own resource", checked against the route's :id param.
const selfRole = "SELF"

// RBAC enforces role-based access control for a route, additionally
// allowing a caller through when "SELF" is listed and the route's :id
// param matches the caller's own user id.
func RBAC(allowed ...string) gin.HandlerFunc {
	allowedRoles, allowSelf := splitRoleList(allowed)

	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		if _, ok := allowedRoles[claims.Role]; ok {
			c.Next()
			return
		}

		if allowSelf {
			if targetID := c.Param("id"); targetID != "" && targetID == claims.UserID {
				c.Next()
				return
			}
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}

// RequireRoles is a typed convenience wrapper over RBAC for call sites that
// already hold models.UserRole values instead of raw strings.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make([]string, len(roles))
	for i, r := range roles {
		allowed[i] = string(r)
	}
	return RBAC(allowed...)
}

func splitRoleList(allowed []string) (roles map[models.UserRole]struct{}, allowSelf bool) {
	roles = make(map[models.UserRole]struct{}, len(allowed))
	for _, a := range allowed {
		if a == selfRole {
			allowSelf = true
			continue
		}
		roles[models.UserRole(a)] = struct{}{}
	}
	return roles, allowSelf
}
