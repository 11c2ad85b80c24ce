// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"mosque_backend/internals/configs"
	"mosque_backend/internals/constants"
	authModel "mosque_backend/internals/features/users/auth/model"
	helper "mosque_backend/internals/helpers"
)

// AuthMiddleware requires a valid, non-blacklisted access token.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}
		claims, err := verifyToken(db, tokenString)
		if err != nil {
			return err
		}
		setSessionLocals(c, tokenString, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware parses the token when one is presented; guests pass through.
// Used by the donation wizard routes, which accept anonymous donors.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return c.Next()
		}
		claims, err := verifyToken(db, tokenString)
		if err != nil {
			// a bad token on a guest-capable route still fails loudly
			return err
		}
		setSessionLocals(c, tokenString, claims)
		return c.Next()
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if !constants.IsAdminRole(role) {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

func verifyToken(db *gorm.DB, tokenString string) (jwt.MapClaims, error) {
	// 1) Blacklist check
	var existing authModel.TokenBlacklist
	if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
		log.Println("[WARNING] Token found in blacklist")
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] DB error on blacklist check:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	// 2) Parse & verify JWT
	secretKey := configs.JWTSecret
	if secretKey == "" {
		log.Println("[ERROR] JWT_SECRET is empty")
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}); err != nil {
		log.Println("[ERROR] Token parse failed:", err)
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
	}

	// 3) Expiry (small leeway for clock skew)
	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
	}

	return claims, nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func setSessionLocals(c *fiber.Ctx, raw string, claims jwt.MapClaims) {
	helper.SetRawAccessToken(c, raw)
	if sub, ok := claims["sub"].(string); ok {
		c.Locals("user_id", sub)
	} else if id, ok := claims["id"].(string); ok {
		c.Locals("user_id", id)
	}
	if name, ok := claims["name"].(string); ok {
		c.Locals("user_name", name)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("user_email", email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("user_role", role)
	}
}
