package middleware

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Yash-231-hue/clinic-booking/db"
	"github.com/Yash-231-hue/clinic-booking/models"
	"github.com/Yash-231-hue/clinic-booking/redis"
)

// JWTSecret returns the signing secret shared by login and the auth
// middleware.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}

// Protected authenticates the request and resolves its principal. The
// resolved models.Principal lands in c.Locals("principal") so every
// downstream check matches on the principal kind.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(JWTSecret()),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			userToken := c.Locals("user")
			token, ok := userToken.(*jwt.Token)
			if !ok {
				return jwtError(c, fmt.Errorf("no token in context"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return jwtError(c, fmt.Errorf("invalid token claims"))
			}

			// A logged-out token is dead even before its expiry.
			if jti, _ := claims["jti"].(string); redis.IsRevoked(jti) {
				return jwtError(c, fmt.Errorf("token revoked"))
			}

			userID, err := extractUserID(claims)
			if err != nil {
				return jwtError(c, err)
			}

			var user models.User
			if err := db.DB.First(&user, userID).Error; err != nil {
				return jwtError(c, fmt.Errorf("unknown user %d", userID))
			}

			c.Locals("principal", models.PrincipalFor(&user))
			return c.Next()
		},
	})
}

// CurrentPrincipal returns the principal resolved by Protected, or the
// anonymous principal when the route carries no auth.
func CurrentPrincipal(c *fiber.Ctx) models.Principal {
	if p, ok := c.Locals("principal").(models.Principal); ok {
		return p
	}
	return models.Anonymous
}

// extractUserID handles multiple potential formats of user ID in token
func extractUserID(claims jwt.MapClaims) (uint, error) {
	idVal := claims["id"]
	if idVal == nil {
		return 0, fmt.Errorf("no ID found in claims")
	}

	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse ID string: %v", err)
		}
		return uint(parsed), nil
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unsupported ID type: %T", v)
	}
}

// jwtError rejects the request and tells the client where to log in,
// carrying the original destination (query string included) so it can
// resume afterwards.
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":    "Unauthorized",
		"message":  "Invalid or expired token",
		"redirect": "/auth/login?next=" + url.QueryEscape(c.OriginalURL()),
	})
}
