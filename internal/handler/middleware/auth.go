package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"table-reserve/internal/domain/member"
	"table-reserve/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxActorEmailKey = "actor_email"
	ctxActorRolesKey = "actor_roles"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorEmailKey, claims.Email)
		c.Set(ctxActorRolesKey, claims.Roles)
		c.Set("jwt_claims", map[string]any{
			"email": claims.Email,
			"roles": strings.Join(claims.Roles, ","),
		})
		c.Next()
	}
}

// RequireRole gates a route on a capability tag. Partners carry both
// ROLE_USER and ROLE_PARTNER, so partner accounts pass user-gated
// routes too.
func (m *AuthMiddleware) RequireRole(role member.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, ok := GetActorRoles(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !roles.Has(role) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetActorEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxActorEmailKey)
	if !exists {
		return "", false
	}

	email, ok := v.(string)
	return email, ok
}

func GetActorRoles(c *gin.Context) (member.Roles, bool) {
	v, exists := c.Get(ctxActorRolesKey)
	if !exists {
		return nil, false
	}

	tags, ok := v.([]string)
	if !ok {
		return nil, false
	}

	roles, err := member.NewRoles(tags)
	if err != nil {
		return nil, false
	}
	return roles, true
}
