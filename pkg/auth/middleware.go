package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shishobooks/bottomnav/pkg/errcodes"
	"github.com/shishobooks/bottomnav/pkg/visibility"
)

// CookieName is the cookie a token may be sent in when there is no
// Authorization header.
const CookieName = "bottom_nav_token"

type contextKey string

const (
	ContextKeyUser   contextKey = "user"
	ContextKeyClaims contextKey = "claims"
)

// Middleware provides authentication middleware.
type Middleware struct {
	authService *Service
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(authService *Service) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// Authenticate validates the request's token and stores its claims. If
// there's no valid token, it returns 401.
func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return errcodes.Unauthorized("Authentication required")
		}

		claims, err := m.authService.ValidateToken(token)
		if err != nil {
			return errcodes.Unauthorized("Invalid or expired token")
		}

		setClaims(c, claims)
		return next(c)
	}
}

// AuthenticateOptional stores the token's claims if there is a valid one, and
// otherwise carries on as an anonymous viewer.
func (m *Middleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := extractToken(c); token != "" {
			if claims, err := m.authService.ValidateToken(token); err == nil {
				setClaims(c, claims)
			}
		}
		return next(c)
	}
}

// RequireCapability returns middleware that checks the token grants
// capability. Must be used after Authenticate.
func (m *Middleware) RequireCapability(capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(string(ContextKeyClaims)).(*JWTClaims)
			if !ok {
				return errcodes.Unauthorized("Authentication required")
			}

			if !claims.HasCapability(capability) {
				return errcodes.Forbidden("You don't have permission to " + strings.ReplaceAll(capability, "_", " "))
			}

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func setClaims(c echo.Context, claims *JWTClaims) {
	user := claims.User()
	c.Set(string(ContextKeyClaims), claims)
	c.Set(string(ContextKeyUser), user)
}

// GetUserFromContext retrieves the viewer from the Echo context. Requests
// without a valid token get the anonymous viewer.
func GetUserFromContext(c echo.Context) visibility.User {
	if user, ok := c.Get(string(ContextKeyUser)).(visibility.User); ok {
		return user
	}
	return visibility.User{Roles: []string{}}
}
