package auth

import (
	"net/http"
	"strings"

	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Error registry
var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeMissingToken = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Missing authorization header")
	CodeInvalidToken = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeForbidden    = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
)

func ErrMissingToken() *errx.Error { return ErrRegistry.New(CodeMissingToken) }
func ErrInvalidToken() *errx.Error { return ErrRegistry.New(CodeInvalidToken) }
func ErrForbidden() *errx.Error    { return ErrRegistry.New(CodeForbidden) }

const contextKey = "auth_context"

// AuthContext is the authenticated caller identity attached to a request.
type AuthContext struct {
	UserID   kernel.UserID
	UserType kernel.UserType
	Email    kernel.Email
}

// Middleware validates the Bearer token and attaches an AuthContext.
func Middleware(tokenService *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("reason", "expected Bearer scheme")
		}

		claims, err := tokenService.ValidateAccessToken(parts[1])
		if err != nil {
			return ErrInvalidToken()
		}

		c.Locals(contextKey, &AuthContext{
			UserID:   claims.UserID,
			UserType: claims.UserType,
			Email:    claims.Email,
		})

		return c.Next()
	}
}

// RequireUserType rejects callers whose user_type is not one of the given
// roles. Must run after Middleware.
func RequireUserType(types ...kernel.UserType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		for _, t := range types {
			if authContext.UserType == t {
				return c.Next()
			}
		}
		return ErrForbidden().WithDetail("user_type", authContext.UserType)
	}
}

// GetAuthContext extracts the caller identity from the request context.
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authContext, ok := c.Locals(contextKey).(*AuthContext)
	return authContext, ok
}
