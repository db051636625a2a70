package middleware

import (
	"strings"

	"cordonnier/internal/delivery/api/response"
	"cordonnier/internal/domain/entity"
	"cordonnier/internal/domain/service"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID  = "userID"
	ContextKeyRoles   = "roles"
	ContextKeyIsAdmin = "isAdmin"
)

// AuthMiddleware provides JWT authentication and role-based authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header with Bearer token is required")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		roles := entity.RolesFromStrings(claims.Roles)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, roles)
		c.Set(ContextKeyIsAdmin, roles.Contains(entity.RoleAdmin))

		return next(c)
	}
}

// OptionalAuthenticate resolves the caller's identity when a bearer token is
// present but lets anonymous requests through. Used on routes that serve both
// guests and logged-in clients.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			// A presented but invalid token is rejected rather than ignored.
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		roles := entity.RolesFromStrings(claims.Roles)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, roles)
		c.Set(ContextKeyIsAdmin, roles.Contains(entity.RoleAdmin))

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds the given role.
// Administrators pass every role check. Must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ContextKeyRoles).(entity.Roles)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Role information missing")
			}

			if roles.Contains(entity.RoleAdmin) || roles.Contains(requiredRole) {
				return next(c)
			}

			return response.Forbidden(c, "PERMISSION_DENIED", "Requires '"+requiredRole.String()+"' role")
		}
	}
}

// GetUserID returns the authenticated caller's user ID from the echo context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the authenticated caller's roles from the echo context.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(ContextKeyRoles).(entity.Roles)

	return roles, ok
}

// GetActor assembles the usecase actor of the current request. The zero
// actor stands for an anonymous caller.
func GetActor(c echo.Context) usecase.Actor {
	actor := usecase.Actor{}
	if userID, ok := GetUserID(c); ok {
		actor.UserID = userID
	}
	if roles, ok := GetRoles(c); ok {
		actor.Roles = roles
		actor.IsAdmin = roles.Contains(entity.RoleAdmin)
	}

	return actor
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
