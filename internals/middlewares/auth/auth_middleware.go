// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"absenku_backend/internals/configs"
	helper "absenku_backend/internals/helpers"
)

// Kunci locals yang di-set middleware ini.
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocRole     = "role"
)

// AuthMiddleware memverifikasi token JWT yang diterbitkan identity provider
// eksternal, lalu menaruh identitas (user_id, user_name, role) di locals.
// Backend ini tidak pernah menerbitkan token sendiri.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.ErrorWithKind(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.Error(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return helper.ErrorWithKind(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid token")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.ErrorWithKind(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helper.ErrorWithKind(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid or missing user ID")
		}
		c.Locals(LocUserID, userID.String())

		if name, ok := claims["name"].(string); ok {
			c.Locals(LocUserName, name)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals(LocRole, role)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("malformed Authorization header")
	}
	// fallback cookie (web client)
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("missing Authorization header")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"sub", "user_id", "id"} {
		if raw, ok := claims[key].(string); ok && raw != "" {
			return uuid.Parse(raw)
		}
	}
	return uuid.Nil, errors.New("user id claim not found")
}
