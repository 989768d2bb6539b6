package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"moshaverino_backend/internals/constants"
)

// Locals keys hydrated from JWT claims.
const (
	LocUserID    = "user_id"
	LocUsername  = "username"
	LocRole      = "role"
	LocStudentID = "student_id"
	LocAdvisorID = "advisor_id"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // fall back to the access_token cookie when no Bearer header
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		if v := strClaim(claims, "sub"); v != "" {
			c.Locals(LocUserID, v)
		} else if v := strClaim(claims, "user_id"); v != "" {
			c.Locals(LocUserID, v)
		}
		if v := strClaim(claims, "username"); v != "" {
			c.Locals(LocUsername, v)
		}
		if v := strClaim(claims, "role"); v != "" {
			c.Locals(LocRole, v)
		} else {
			c.Locals(LocRole, constants.RoleStudent)
		}
		if v := strClaim(claims, "student_id"); v != "" {
			c.Locals(LocStudentID, v)
		}
		if v := strClaim(claims, "advisor_id"); v != "" {
			c.Locals(LocAdvisorID, v)
		}

		return c.Next()
	}
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

/* =========================
   Locals readers & guards
   ========================= */

func RoleFromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return v
	}
	return ""
}

func UserIDFromCtx(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

func localUUID(c *fiber.Ctx, key string) *uuid.UUID {
	s, _ := c.Locals(key).(string)
	if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
		return &id
	}
	return nil
}

func StudentIDFromCtx(c *fiber.Ctx) *uuid.UUID { return localUUID(c, LocStudentID) }
func AdvisorIDFromCtx(c *fiber.Ctx) *uuid.UUID { return localUUID(c, LocAdvisorID) }

func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if RoleFromCtx(c) != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyAdminsCanAccess)
		}
		return c.Next()
	}
}

func IsAdvisorOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch RoleFromCtx(c) {
		case constants.RoleAdvisor, constants.RoleAdmin:
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyAdvisorsCanAccess)
	}
}
