// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"absenku_backend/internals/configs"
)

const (
	RoleAdmin    = "admin"
	RoleKaryawan = "karyawan"
)

// AuthMiddleware memverifikasi access token HS256 dan menyimpan klaim ke Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token invalid atau kadaluarsa")
		}

		if err := validateTokenExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

// IsAdmin membatasi route khusus administrator (dipasang setelah AuthMiddleware).
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus admin")
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Unauthorized - Token tidak ditemukan")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Unauthorized - Format token salah")
	}
	return parts[1], nil
}

func validateTokenExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("exp claim missing")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Locals("user_id", sub)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}
	if code, ok := claims["code"].(string); ok {
		c.Locals("user_code", code)
	}
	if name, ok := claims["name"].(string); ok {
		c.Locals("user_name", name)
	}
}
